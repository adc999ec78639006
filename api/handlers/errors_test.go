package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"search-frontend-api/core/errors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"NotFoundError", &errors.NotFoundError{Resource: "subreddit", ID: "nope"}, 404},
		{"ValidationError", &errors.ValidationError{Field: "q", Message: "too long"}, 400},
		{"upstream 404", &errors.ExternalAPIError{API: "reddit", StatusCode: 404, Message: "Not Found"}, 404},
		{"upstream 429", &errors.ExternalAPIError{API: "reddit", StatusCode: 429}, 429},
		{"upstream 500", &errors.ExternalAPIError{API: "reddit", StatusCode: 500}, 503},
		{"upstream 503", &errors.ExternalAPIError{API: "reddit", StatusCode: 503}, 503},
		{"upstream 403", &errors.ExternalAPIError{API: "reddit", StatusCode: 403, Message: "Forbidden"}, 500},
		{"upstream parse failure", &errors.ExternalAPIError{API: "reddit", Message: "failed to parse page JSON data"}, 500},
		{"wrapped upstream 404", fmt.Errorf("search: %w", &errors.ExternalAPIError{StatusCode: 404}), 404},
		{"unknown error", fmt.Errorf("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFor(tt.input))
		})
	}
}

func TestToHumaError(t *testing.T) {
	assert.Nil(t, toHumaError(nil))

	err := &errors.ExternalAPIError{API: "reddit", StatusCode: 502, Message: "Bad Gateway"}
	result := toHumaError(err)

	humaErr, ok := result.(*huma.ErrorModel)
	require.True(t, ok, "Expected huma.ErrorModel")
	assert.Equal(t, 503, humaErr.Status)
	assert.Equal(t, "external API error from reddit: 502 - Bad Gateway", humaErr.Detail)
}
