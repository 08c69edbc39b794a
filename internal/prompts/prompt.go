// Package prompts implements the prompt override domain for Assist.
// It provides types, data access, and HTTP handlers for managing named
// instruction overrides per pipeline stage. The classifier and renderer
// compose their oracle prompts from the active override for their stage,
// falling back to hardcoded defaults.
package prompts

import "github.com/google/uuid"

// Prompt represents a named instruction override for a pipeline stage.
type Prompt struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Stage        Stage     `json:"stage"`
	Instructions string    `json:"instructions"`
	Description  *string   `json:"description"`
	Active       bool      `json:"active"`
}

// CreateCommand carries the data needed to create a new prompt override.
// Overrides are created inactive; Activate switches a stage over atomically.
type CreateCommand struct {
	Name         string  `json:"name"`
	Stage        Stage   `json:"stage"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}
