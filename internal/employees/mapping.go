package employees

import (
	"net/url"
	"strconv"

	"github.com/taskpoint/assist/pkg/query"
	"github.com/taskpoint/assist/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "employees", "e").
	Project("id", "ID").
	Project("full_name", "FullName").
	Project("active", "Active").
	Project("hired_on", "HiredOn").
	Project("terminated_on", "TerminatedOn").
	Project("schedule_template_id", "ScheduleTemplateID").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "FullName",
	Descending: false,
}

// Filters contains optional filtering criteria for employee queries.
// Nil fields are ignored.
type Filters struct {
	Active *bool `json:"active,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Active", f.Active)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if a := values.Get("active"); a != "" {
		if active, err := strconv.ParseBool(a); err == nil {
			f.Active = &active
		}
	}

	return f
}

func scanEmployee(s repository.Scanner) (Employee, error) {
	var e Employee

	err := s.Scan(
		&e.ID,
		&e.FullName,
		&e.Active,
		&e.HiredOn,
		&e.TerminatedOn,
		&e.ScheduleTemplateID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)

	return e, err
}
