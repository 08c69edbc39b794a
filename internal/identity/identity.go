// Package identity models the authenticated caller of the assist service.
// User context arrives with each request (resolved upstream by the identity
// provider); this package only validates and carries its output shape.
package identity

import (
	"github.com/google/uuid"
)

// User is the authenticated caller for the duration of one request.
// SubjectID is nil when the upstream context did not resolve an employee
// record for the caller.
type User struct {
	SubjectID   *uuid.UUID `json:"subject_id"`
	DisplayName string     `json:"display_name"`
	Role        Role       `json:"role"`
}

// New constructs a User from caller-supplied context. A non-empty subjectID
// must be a well-formed UUID; malformed identifiers are rejected before any
// query executes. An empty role defaults to RoleEmployee.
func New(subjectID, displayName, role string) (User, error) {
	u := User{DisplayName: displayName}

	if subjectID != "" {
		id, err := uuid.Parse(subjectID)
		if err != nil {
			return User{}, ErrInvalidSubject
		}
		u.SubjectID = &id
	}

	if role == "" {
		u.Role = RoleEmployee
		return u, nil
	}

	parsed, err := ParseRole(role)
	if err != nil {
		return User{}, err
	}
	u.Role = parsed

	return u, nil
}
