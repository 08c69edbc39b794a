package employees

import (
	"errors"
	"net/http"
)

// Domain errors for employee directory operations.
var (
	ErrNotFound  = errors.New("employee not found")
	ErrDuplicate = errors.New("employee already exists")
)

// MapHTTPStatus maps employee domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
