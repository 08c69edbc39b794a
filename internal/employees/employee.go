// Package employees implements the employee directory domain for Assist.
// It provides types, data access, and HTTP handlers for listing and finding
// employment records, and the exact-match name lookup the query dispatcher
// uses to resolve a named employee to a subject identifier.
package employees

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents an employment record. It mirrors the employees table
// with the schedule template reference flattened to an optional identifier.
type Employee struct {
	ID                 uuid.UUID  `json:"id"`
	FullName           string     `json:"full_name"`
	Active             bool       `json:"active"`
	HiredOn            *time.Time `json:"hired_on"`
	TerminatedOn       *time.Time `json:"terminated_on"`
	ScheduleTemplateID *uuid.UUID `json:"schedule_template_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
