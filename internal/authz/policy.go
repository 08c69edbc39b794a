// Package authz implements the authorization policy for classified intents.
// The policy is a pure function over (role, intent case, scope): no I/O, no
// state, identical inputs always produce identical verdicts.
package authz

import (
	"github.com/taskpoint/assist/internal/identity"
	"github.com/taskpoint/assist/internal/intents"
)

// Authorize evaluates whether user may execute intent. A nil return is an
// allow verdict; a non-nil return is a deny verdict whose error maps to a
// distinct caller-facing status (see MapHTTPStatus). It never mutates its
// arguments.
func Authorize(user identity.User, intent intents.Intent) error {
	switch it := intent.(type) {
	case intents.BankHours:
		return authorizeScoped(user, it.Scope)

	case intents.NextVacation:
		return authorizeScoped(user, it.Scope)

	case intents.AbsentEmployees:
		if !user.Role.Privileged() {
			return ErrRoleDenied
		}
		return nil

	case intents.TodaySchedule:
		if user.SubjectID == nil {
			return ErrSubjectRequired
		}
		return nil

	default:
		return ErrNotUnderstood
	}
}

// authorizeScoped applies the shared rule for employee-targeted lookups:
// the EMPLOYEE role may only query itself; HR_ADMIN and MANAGER are
// unrestricted.
func authorizeScoped(user identity.User, scope intents.Scope) error {
	if user.Role.Privileged() {
		return nil
	}
	if scope != intents.ScopeSelf {
		return ErrScopeDenied
	}
	return nil
}
