// ABOUTME: Request ID propagation through context.Context
// ABOUTME: Lets outbound upstream calls be correlated with the inbound request that caused them

package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the request ID
const Header = "X-Request-ID"

type contextKey struct{}

// New generates a fresh request ID
func New() string {
	return uuid.New().String()
}

// WithID returns a copy of ctx carrying id
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request ID stored in ctx, or "" if there is none
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}
