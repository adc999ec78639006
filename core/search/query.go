// ABOUTME: Ordered query string builder for upstream API paths
// ABOUTME: Makes the escaping applied to each value explicit instead of ad-hoc string formatting

package search

import (
	"net/url"
	"strings"
)

// Escaping selects how a value is written into a composed query string
type Escaping int

const (
	// Verbatim writes the value unchanged
	Verbatim Escaping = iota

	// SpacesAsPlus replaces spaces with '+' and leaves every other character alone
	SpacesAsPlus

	// QueryEscape applies full URL query escaping
	QueryEscape
)

// Query composes an upstream path and an ordered list of query pairs
type Query struct {
	path  string
	parts []string
}

// NewQuery starts a query for the given path
func NewQuery(path string) *Query {
	return &Query{path: path}
}

// Add appends key=value, escaping the value according to esc
func (q *Query) Add(key, value string, esc Escaping) *Query {
	q.parts = append(q.parts, key+"="+escapeValue(value, esc))
	return q
}

// AddRaw appends an already encoded query string unchanged.
// A leading '?' and empty input are ignored.
func (q *Query) AddRaw(raw string) *Query {
	raw = strings.TrimPrefix(raw, "?")
	if raw != "" {
		q.parts = append(q.parts, raw)
	}
	return q
}

// String returns the path followed by the query string, if any
func (q *Query) String() string {
	if len(q.parts) == 0 {
		return q.path
	}
	return q.path + "?" + strings.Join(q.parts, "&")
}

func escapeValue(value string, esc Escaping) string {
	switch esc {
	case SpacesAsPlus:
		return strings.ReplaceAll(value, " ", "+")
	case QueryEscape:
		return url.QueryEscape(value)
	default:
		return value
	}
}
