// Package intents defines the typed vocabulary of questions the assist
// service understands. Each supported question is one case of a tagged
// variant with a case-specific payload; Unknown carries no payload and is
// the normalized outcome of every classification decode failure.
package intents

import "time"

// Case identifies which variant of the intent vocabulary is active.
type Case string

// Supported intent cases.
const (
	CaseBankHours       Case = "bank_hours"
	CaseNextVacation    Case = "next_vacation"
	CaseAbsentEmployees Case = "absent_employees"
	CaseTodaySchedule   Case = "today_schedule"
	CaseUnknown         Case = "unknown"
)

// Scope declares whose records a question targets.
type Scope string

// Valid scopes.
const (
	ScopeSelf Scope = "SELF"
	ScopeOne  Scope = "ONE"
	ScopeAll  Scope = "ALL"
)

// PeriodKind identifies the shape of a time period payload.
type PeriodKind string

// Valid period kinds.
const (
	PeriodDay   PeriodKind = "DAY"
	PeriodRange PeriodKind = "RANGE"
	PeriodMonth PeriodKind = "MONTH"
)

// Period is an optional time window attached to an intent payload.
type Period struct {
	Kind PeriodKind `json:"kind"`
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Intent is the classified category of a question. Exactly one case type
// implements it per classification outcome; payload fields exist only on
// the cases that declare them.
type Intent interface {
	// Case returns the active variant tag.
	Case() Case
	// Params returns the payload as a JSON-friendly map for the response
	// envelope. Unknown returns an empty map.
	Params() map[string]any
}

// BankHours asks for an employee's bank-of-hours balance.
type BankHours struct {
	Scope      Scope
	TargetName string
	Period     *Period
}

func (BankHours) Case() Case { return CaseBankHours }

func (i BankHours) Params() map[string]any {
	p := map[string]any{"employee_scope": i.Scope}
	if i.TargetName != "" {
		p["target_employee_name"] = i.TargetName
	}
	if i.Period != nil {
		period := map[string]any{"kind": i.Period.Kind}
		if i.Period.From != nil {
			period["from"] = i.Period.From.Format(DateLayout)
		}
		if i.Period.To != nil {
			period["to"] = i.Period.To.Format(DateLayout)
		}
		p["period"] = period
	}
	return p
}

// NextVacation asks for an employee's next upcoming vacation period.
type NextVacation struct {
	Scope      Scope
	TargetName string
}

func (NextVacation) Case() Case { return CaseNextVacation }

func (i NextVacation) Params() map[string]any {
	p := map[string]any{"employee_scope": i.Scope}
	if i.TargetName != "" {
		p["target_employee_name"] = i.TargetName
	}
	return p
}

// AbsentEmployees asks which active employees have no attendance record on
// a date. A nil Date means the current date downstream.
type AbsentEmployees struct {
	Date *time.Time
}

func (AbsentEmployees) Case() Case { return CaseAbsentEmployees }

func (i AbsentEmployees) Params() map[string]any {
	p := map[string]any{}
	if i.Date != nil {
		p["date"] = i.Date.Format(DateLayout)
	}
	return p
}

// TodaySchedule asks for the caller's own shift schedule for the current day.
type TodaySchedule struct{}

func (TodaySchedule) Case() Case { return CaseTodaySchedule }

func (TodaySchedule) Params() map[string]any { return map[string]any{} }

// Unknown is the out-of-domain (or undecodable) classification outcome.
type Unknown struct{}

func (Unknown) Case() Case { return CaseUnknown }

func (Unknown) Params() map[string]any { return map[string]any{} }
