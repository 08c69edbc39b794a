package prompts

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "intent": "<bank_hours|next_vacation|absent_employees|today_schedule|unknown>",
  "employee_scope": "<SELF|ONE|ALL>",
  "target_employee_name": "<name>",
  "date": "<YYYY-MM-DD>",
  "period": {"kind": "<DAY|RANGE|MONTH>", "from": "<YYYY-MM-DD>", "to": "<YYYY-MM-DD>"}
}

Field constraints:
- intent: Required. Exactly one of the five supported tags.
- employee_scope: Only for bank_hours and next_vacation. Omit for other
  intents. SELF when the caller asks about themselves, ONE for a named
  third person, ALL for the whole staff.
- target_employee_name: Only when employee_scope is ONE. The name exactly
  as the caller wrote it, no normalization.
- date: Only for absent_employees, and only when the caller names an
  explicit calendar date. Omit for relative phrasing like "hoje"; the
  system resolves the current date itself.
- period: Only for bank_hours when the caller bounds the question to a
  time window. Omit otherwise.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing and no prose
- Emit exactly one JSON object per question
- For unknown, emit {"intent": "unknown"} with no other fields
- Never invent a target_employee_name the caller did not write`

const respondSpec = `Behavioral constraints:

- Answer with exactly one sentence in Portuguese, plain text, no markdown
- Use only the values present in the provided rows; never invent numbers,
  names, or dates that are not in the data
- When the rows are empty, explain simply that nothing was found for the
  question (e.g. no upcoming vacation, nobody absent, no schedule today);
  an empty result is an answer, not an error
- Format times as HH:MM and dates the Brazilian way (DD/MM/YYYY)
- Hour balances arrive in minutes; convert to hours and minutes`

var specs = map[Stage]string{
	StageClassify: classifySpec,
	StageRespond:  respondSpec,
}

// Specs returns the immutable output specification for a pipeline stage.
// Unlike instructions, specs cannot be overridden: downstream decoding
// depends on them. Returns ErrInvalidStage if the stage is not recognized.
func Specs(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
