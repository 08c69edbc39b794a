package dispatch

import (
	"errors"
	"net/http"
)

// Dispatch errors. Each failure mode maps to a distinct caller-facing status.
var (
	ErrMissingIdentifier = errors.New("caller has no employee identifier")
	ErrEmployeeNotFound  = errors.New("named employee not found")
	ErrInvalidScope      = errors.New("scope is not supported by this query")
	ErrStoreUnavailable  = errors.New("data store unavailable")
)

// MapHTTPStatus maps dispatch errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingIdentifier), errors.Is(err, ErrInvalidScope):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
