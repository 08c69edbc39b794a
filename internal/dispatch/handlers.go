package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskpoint/assist/internal/employees"
	"github.com/taskpoint/assist/internal/identity"
	"github.com/taskpoint/assist/internal/intents"
	"github.com/taskpoint/assist/pkg/repository"
)

// bankHours returns an employee's bank-of-hours entries. The ordering is a
// hard contract: "most recent entry" semantics depend on it.
func (d *dispatcher) bankHours(
	ctx context.Context,
	user identity.User,
	intent intents.BankHours,
) ([]map[string]any, error) {
	subject, err := d.resolveSubject(ctx, user, intent.Scope, intent.TargetName)
	if err != nil {
		return nil, err
	}

	q := `
		SELECT e.full_name, b.reference_date, b.balance_minutes, b.updated_at, b.created_at
		FROM bank_hours_entries b
		JOIN employees e ON e.id = b.employee_id
		WHERE b.employee_id = $1`
	args := []any{subject}

	q, args = appendPeriod(q, args, intent.Period)
	q += `
		ORDER BY b.reference_date DESC, b.updated_at DESC, b.created_at DESC`

	rows, err := repository.QueryRows(ctx, d.db, q, args...)
	if err != nil {
		return nil, storeError("bank hours", err)
	}
	return rows, nil
}

func appendPeriod(q string, args []any, p *intents.Period) (string, []any) {
	if p == nil {
		return q, args
	}

	switch p.Kind {
	case intents.PeriodDay:
		if p.From != nil {
			args = append(args, *p.From)
			q += fmt.Sprintf(" AND b.reference_date = $%d", len(args))
		}
	case intents.PeriodMonth:
		if p.From != nil {
			args = append(args, *p.From)
			q += fmt.Sprintf(
				" AND date_trunc('month', b.reference_date) = date_trunc('month', $%d::date)",
				len(args),
			)
		}
	case intents.PeriodRange:
		if p.From != nil {
			args = append(args, *p.From)
			q += fmt.Sprintf(" AND b.reference_date >= $%d", len(args))
		}
		if p.To != nil {
			args = append(args, *p.To)
			q += fmt.Sprintf(" AND b.reference_date <= $%d", len(args))
		}
	}

	return q, args
}

// nextVacation returns at most one row: the nearest vacation period ending
// today or later. An empty result means no upcoming vacation, not an error.
func (d *dispatcher) nextVacation(
	ctx context.Context,
	user identity.User,
	intent intents.NextVacation,
	today time.Time,
) ([]map[string]any, error) {
	subject, err := d.resolveSubject(ctx, user, intent.Scope, intent.TargetName)
	if err != nil {
		return nil, err
	}

	q := `
		SELECT e.full_name, v.starts_on, v.ends_on
		FROM vacations v
		JOIN employees e ON e.id = v.employee_id
		WHERE v.employee_id = $1 AND v.ends_on >= $2
		ORDER BY v.starts_on ASC
		LIMIT 1`

	rows, err := repository.QueryRows(ctx, d.db, q, subject, dateOnly(today))
	if err != nil {
		return nil, storeError("next vacation", err)
	}
	return rows, nil
}

// absentEmployees is a set difference: active employment records minus those
// with an attendance record on the target date. Active means the explicit
// flag or no termination date, and any termination date must be on or after
// the target date.
func (d *dispatcher) absentEmployees(
	ctx context.Context,
	intent intents.AbsentEmployees,
	today time.Time,
) ([]map[string]any, error) {
	target := dateOnly(today)
	if intent.Date != nil {
		target = dateOnly(*intent.Date)
	}

	q := `
		SELECT e.id, e.full_name
		FROM employees e
		WHERE (e.active OR e.terminated_on IS NULL)
		  AND (e.terminated_on IS NULL OR e.terminated_on >= $1)
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.employee_id = e.id AND a.work_date = $1
		  )
		ORDER BY e.full_name ASC`

	rows, err := repository.QueryRows(ctx, d.db, q, target)
	if err != nil {
		return nil, storeError("absent employees", err)
	}
	return rows, nil
}

// todaySchedule joins the caller's assigned schedule template to the row for
// the current weekday (Monday=0..Sunday=6). Zero rows means no schedule is
// defined today, which is valid.
func (d *dispatcher) todaySchedule(
	ctx context.Context,
	user identity.User,
	today time.Time,
) ([]map[string]any, error) {
	if user.SubjectID == nil {
		return nil, ErrMissingIdentifier
	}

	q := `
		SELECT d.weekday, d.starts_at, d.ends_at, d.break_minutes
		FROM employees e
		JOIN schedule_templates t ON t.id = e.schedule_template_id
		JOIN schedule_template_days d ON d.schedule_template_id = t.id
		WHERE e.id = $1 AND d.weekday = $2
		ORDER BY d.starts_at ASC`

	rows, err := repository.QueryRows(ctx, d.db, q, *user.SubjectID, Weekday(today))
	if err != nil {
		return nil, storeError("today schedule", err)
	}
	return rows, nil
}

// Weekday converts Go's Sunday=0 convention to Monday=0..Sunday=6.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapLookupError(err error) error {
	if errors.Is(err, employees.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrEmployeeNotFound, err)
	}
	return storeError("employee lookup", err)
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
