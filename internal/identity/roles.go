package identity

import (
	"encoding/json"
	"slices"
)

// Role is the caller's position in the time-tracking domain.
type Role string

// Valid roles.
const (
	RoleEmployee Role = "EMPLOYEE"
	RoleHRAdmin  Role = "HR_ADMIN"
	RoleManager  Role = "MANAGER"
)

var roles = []Role{
	RoleEmployee,
	RoleHRAdmin,
	RoleManager,
}

// Roles returns the list of valid roles.
func Roles() []Role {
	return roles
}

// Privileged reports whether the role may query employees other than the caller.
func (r Role) Privileged() bool {
	return r == RoleHRAdmin || r == RoleManager
}

// UnmarshalJSON validates that the decoded string is a known role value.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Role(raw)
	if !slices.Contains(roles, v) {
		return ErrInvalidRole
	}
	*r = v
	return nil
}

// ParseRole validates a string as a known role.
// Returns ErrInvalidRole if the value is not recognized.
func ParseRole(s string) (Role, error) {
	v := Role(s)
	if !slices.Contains(roles, v) {
		return "", ErrInvalidRole
	}
	return v, nil
}
