package workflow

import (
	"errors"
	"net/http"

	"github.com/taskpoint/assist/internal/authz"
	"github.com/taskpoint/assist/internal/dispatch"
)

// ErrOracleUnavailable indicates a failed classify or respond oracle call.
// Oracle failures are terminal for the request and never retried.
var ErrOracleUnavailable = errors.New("language model oracle unavailable")

// MapHTTPStatus maps pipeline errors to appropriate HTTP status codes.
// Authorization and dispatch errors keep their own mappings; oracle
// failures are server faults.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, authz.ErrNotUnderstood),
		errors.Is(err, authz.ErrRoleDenied),
		errors.Is(err, authz.ErrScopeDenied),
		errors.Is(err, authz.ErrSubjectRequired):
		return authz.MapHTTPStatus(err)

	case errors.Is(err, dispatch.ErrMissingIdentifier),
		errors.Is(err, dispatch.ErrEmployeeNotFound),
		errors.Is(err, dispatch.ErrInvalidScope),
		errors.Is(err, dispatch.ErrStoreUnavailable):
		return dispatch.MapHTTPStatus(err)

	default:
		return http.StatusInternalServerError
	}
}
