package chat

import (
	"errors"
	"net/http"

	"github.com/taskpoint/assist/internal/identity"
	"github.com/taskpoint/assist/internal/workflow"
)

// ErrEmptyQuestion rejects requests with no question to classify.
var ErrEmptyQuestion = errors.New("question is required")

// MapHTTPStatus maps chat errors to appropriate HTTP status codes. Identity
// validation fails fast with 400; everything else defers to the pipeline's
// own taxonomy.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyQuestion) ||
		errors.Is(err, identity.ErrInvalidSubject) ||
		errors.Is(err, identity.ErrInvalidRole) {
		return http.StatusBadRequest
	}
	return workflow.MapHTTPStatus(err)
}
