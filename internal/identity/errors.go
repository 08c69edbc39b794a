package identity

import "errors"

// Validation errors for caller-supplied identity context.
var (
	ErrInvalidSubject = errors.New("subject id is not a well-formed identifier")
	ErrInvalidRole    = errors.New("role must be EMPLOYEE, HR_ADMIN, or MANAGER")
)
