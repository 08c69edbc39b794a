// Package chat implements the question-answering surface for Assist. It
// accepts a natural-language question plus caller context, runs it through
// the classification pipeline, and returns a structured envelope with the
// classified intent, the raw query rows, and a rendered natural response.
package chat

// AskRequest is the inbound question envelope. Every field but the question
// is optional: an absent user_id means the caller has no resolved employee
// record, and an absent role defaults to EMPLOYEE.
type AskRequest struct {
	Question string `json:"question"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// AskResponse is the outbound answer envelope.
type AskResponse struct {
	Intent          string         `json:"intent"`
	Params          map[string]any `json:"params"`
	RawResult       any            `json:"raw_result"`
	NaturalResponse string         `json:"natural_response"`
}
