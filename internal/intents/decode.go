package intents

import (
	"slices"
	"time"

	"github.com/taskpoint/assist/pkg/formatting"
)

// DateLayout is the ISO calendar date layout used on the wire.
const DateLayout = "2006-01-02"

// wire mirrors the flat JSON object the classification oracle is instructed
// to produce. Every field is optional; validation against the active case
// happens in Decode.
type wire struct {
	Intent       string      `json:"intent"`
	Scope        string      `json:"employee_scope"`
	EmployeeName string      `json:"target_employee_name"`
	Date         string      `json:"date"`
	Period       *wirePeriod `json:"period"`
}

type wirePeriod struct {
	Kind string `json:"kind"`
	From string `json:"from"`
	To   string `json:"to"`
}

var scopes = []Scope{ScopeSelf, ScopeOne, ScopeAll}

var periodKinds = []PeriodKind{PeriodDay, PeriodRange, PeriodMonth}

// Decode parses oracle output into a typed Intent. Any parse failure, schema
// violation, or unrecognized case tag yields Unknown; Decode never returns
// an error, so malformed oracle output cannot crash the pipeline.
func Decode(content string) Intent {
	w, err := formatting.Parse[wire](content)
	if err != nil {
		return Unknown{}
	}

	switch Case(w.Intent) {
	case CaseBankHours:
		scope, ok := decodeScope(w)
		if !ok {
			return Unknown{}
		}
		period, ok := decodePeriod(w.Period)
		if !ok {
			return Unknown{}
		}
		return BankHours{Scope: scope, TargetName: w.EmployeeName, Period: period}

	case CaseNextVacation:
		scope, ok := decodeScope(w)
		if !ok {
			return Unknown{}
		}
		return NextVacation{Scope: scope, TargetName: w.EmployeeName}

	case CaseAbsentEmployees:
		date, ok := decodeDate(w.Date)
		if !ok {
			return Unknown{}
		}
		return AbsentEmployees{Date: date}

	case CaseTodaySchedule:
		return TodaySchedule{}

	default:
		return Unknown{}
	}
}

// decodeScope validates the scope tag for cases that declare one. An absent
// scope defaults to SELF, matching the classifier's first-person bias; ONE
// requires a target employee name.
func decodeScope(w wire) (Scope, bool) {
	if w.Scope == "" {
		return ScopeSelf, true
	}

	scope := Scope(w.Scope)
	if !slices.Contains(scopes, scope) {
		return "", false
	}
	if scope == ScopeOne && w.EmployeeName == "" {
		return "", false
	}

	return scope, true
}

func decodeDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}

	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func decodePeriod(p *wirePeriod) (*Period, bool) {
	if p == nil {
		return nil, true
	}

	kind := PeriodKind(p.Kind)
	if !slices.Contains(periodKinds, kind) {
		return nil, false
	}

	from, ok := decodeDate(p.From)
	if !ok {
		return nil, false
	}
	to, ok := decodeDate(p.To)
	if !ok {
		return nil, false
	}

	return &Period{Kind: kind, From: from, To: to}, true
}
