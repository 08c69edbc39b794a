// Package dispatch executes the deterministic data-store query for a
// classified intent. Each intent case maps to exactly one handler; handlers
// never retry and share no mutable state between invocations. Rows come back
// as column-name maps so the renderer can hand them to the oracle verbatim.
package dispatch

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskpoint/assist/internal/employees"
	"github.com/taskpoint/assist/internal/identity"
	"github.com/taskpoint/assist/internal/intents"
)

// System executes the query for a classified, authorized intent.
type System interface {
	// Execute runs the handler for the intent's case. The today argument
	// anchors relative dates (current date, current weekday) so handlers
	// stay deterministic under test.
	Execute(
		ctx context.Context,
		user identity.User,
		intent intents.Intent,
		today time.Time,
	) ([]map[string]any, error)
}

type dispatcher struct {
	db        *sql.DB
	directory employees.System
	logger    *slog.Logger
}

// New creates a dispatcher backed by the given store and employee directory.
func New(db *sql.DB, directory employees.System, logger *slog.Logger) System {
	return &dispatcher{
		db:        db,
		directory: directory,
		logger:    logger.With("system", "dispatch"),
	}
}

func (d *dispatcher) Execute(
	ctx context.Context,
	user identity.User,
	intent intents.Intent,
	today time.Time,
) ([]map[string]any, error) {
	switch i := intent.(type) {
	case intents.BankHours:
		return d.bankHours(ctx, user, i)
	case intents.NextVacation:
		return d.nextVacation(ctx, user, i, today)
	case intents.AbsentEmployees:
		return d.absentEmployees(ctx, i, today)
	case intents.TodaySchedule:
		return d.todaySchedule(ctx, user, today)
	default:
		return nil, ErrInvalidScope
	}
}

// resolveSubject turns a scope into a concrete employee identifier.
// SELF uses the caller's own identifier; ONE resolves the target name
// through a single exact-match directory lookup; ALL has no subject.
func (d *dispatcher) resolveSubject(
	ctx context.Context,
	user identity.User,
	scope intents.Scope,
	targetName string,
) (uuid.UUID, error) {
	switch scope {
	case intents.ScopeSelf:
		if user.SubjectID == nil {
			return uuid.Nil, ErrMissingIdentifier
		}
		return *user.SubjectID, nil

	case intents.ScopeOne:
		e, err := d.directory.FindByName(ctx, targetName)
		if err != nil {
			return uuid.Nil, mapLookupError(err)
		}
		return e.ID, nil

	default:
		return uuid.Nil, ErrInvalidScope
	}
}
