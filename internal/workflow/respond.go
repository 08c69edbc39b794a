package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/taskpoint/assist/internal/intents"
	"github.com/taskpoint/assist/internal/prompts"
)

// RespondNode returns a state node that asks the oracle to render the raw
// rows as one short natural-language sentence. The prompt combines the
// respond-stage instructions with a per-case fragment and the rows, so empty
// results are answered deliberately instead of improvised by the oracle.
func RespondNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		question, err := extractQuestion(s)
		if err != nil {
			return s, fmt.Errorf("respond: %w", err)
		}

		intent, err := extractIntent(s)
		if err != nil {
			return s, fmt.Errorf("respond: %w", err)
		}

		rowsVal, _ := s.Get(KeyRows)
		rows, _ := rowsVal.([]map[string]any)

		prompt, err := composeRenderPrompt(ctx, rt.Prompts, question, intent, rows)
		if err != nil {
			return s, fmt.Errorf("respond: %w", err)
		}

		response, err := rt.Oracle.Complete(ctx, prompt)
		if err != nil {
			return s, fmt.Errorf("respond: %w: %w", ErrOracleUnavailable, err)
		}

		rt.Logger.InfoContext(
			ctx, "respond node complete",
			"intent", intent.Case(),
		)

		s = s.Set(KeyResponse, strings.TrimSpace(response))
		return s, nil
	})
}

func composeRenderPrompt(
	ctx context.Context,
	ps prompts.System,
	question string,
	intent intents.Intent,
	rows []map[string]any,
) (string, error) {
	base, err := ComposePrompt(ctx, ps, prompts.StageRespond)
	if err != nil {
		return "", err
	}

	rowsJSON, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize rows: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\n")
	sb.WriteString(caseFragment(intent, rows))
	sb.WriteString("\n\nQuestion:\n")
	sb.WriteString(question)
	sb.WriteString("\n\nRows:\n")
	sb.WriteString(string(rowsJSON))

	return sb.String(), nil
}

// caseFragment gives the oracle per-intent rendering guidance, including an
// explicit empty-result sentence so nothing is left to improvisation.
func caseFragment(intent intents.Intent, rows []map[string]any) string {
	empty := len(rows) == 0

	switch intent.Case() {
	case intents.CaseBankHours:
		if empty {
			return "No bank-of-hours entries were found; say the balance has no records yet."
		}
		return "Interpret the balance_minutes field: the first row is the most recent balance. Convert minutes to hours and minutes."

	case intents.CaseNextVacation:
		if empty {
			return "No upcoming vacation was found; say there is no vacation scheduled."
		}
		return "Report the vacation period from starts_on to ends_on."

	case intents.CaseAbsentEmployees:
		if empty {
			return "No absences were found; say everybody was present."
		}
		return "List the absent employees by full_name."

	case intents.CaseTodaySchedule:
		if empty {
			return "No schedule row was found; say there is no shift defined for today."
		}
		return "Format the shift as HH:MM ranges from starts_at to ends_at, mentioning the break if break_minutes is nonzero."

	default:
		return "Say the question could not be answered."
	}
}
