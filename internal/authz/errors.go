package authz

import (
	"errors"
	"net/http"
)

// Deny reasons. Each maps to a distinct caller-facing status so clients can
// tell "rephrase the question" apart from "you may not ask that".
var (
	ErrNotUnderstood   = errors.New("question not understood")
	ErrRoleDenied      = errors.New("role is not allowed to execute this query")
	ErrScopeDenied     = errors.New("role may only query its own records")
	ErrSubjectRequired = errors.New("caller identity could not be resolved to an employee")
)

// MapHTTPStatus maps deny reasons to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotUnderstood) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRoleDenied) || errors.Is(err, ErrScopeDenied) || errors.Is(err, ErrSubjectRequired) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
