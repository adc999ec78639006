// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP status codes for both the HTML and JSON surfaces

package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"search-frontend-api/core/errors"
)

// statusFor maps a search failure to the HTTP status returned to the caller
func statusFor(err error) int {
	switch {
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsValidation(err):
		return http.StatusBadRequest
	}

	if apiErr, ok := errors.AsExternalAPI(err); ok {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			return http.StatusNotFound
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return http.StatusTooManyRequests
		case apiErr.StatusCode >= 500:
			return http.StatusServiceUnavailable
		}
	}

	return http.StatusInternalServerError
}

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// The upstream message is kept as the error detail.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}
	return huma.NewError(statusFor(err), err.Error())
}
