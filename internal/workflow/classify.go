package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/taskpoint/assist/internal/identity"
	"github.com/taskpoint/assist/internal/intents"
	"github.com/taskpoint/assist/internal/prompts"
)

// ClassifyNode returns a state node that asks the oracle to classify the
// question and decodes the raw output into a typed intent. An oracle call
// failure is terminal; a malformed oracle payload is not, it decodes to
// Unknown and flows on to authorization, which denies it as not understood.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		question, err := extractQuestion(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		user, err := extractUser(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		prompt, err := composeClassifyPrompt(ctx, rt.Prompts, user, question)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		content, err := rt.Oracle.Complete(ctx, prompt)
		if err != nil {
			return s, fmt.Errorf("classify: %w: %w", ErrOracleUnavailable, err)
		}

		intent := intents.Decode(content)

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"intent", intent.Case(),
		)

		s = s.Set(KeyIntent, intent)
		return s, nil
	})
}

// composeClassifyPrompt builds the classification prompt: the stage base
// plus a caller section and the question. The caller's role and display
// name let the oracle resolve first-person phrasing against a real person.
func composeClassifyPrompt(
	ctx context.Context,
	ps prompts.System,
	user identity.User,
	question string,
) (string, error) {
	base, err := ComposePrompt(ctx, ps, prompts.StageClassify)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\nCaller:\nrole: ")
	sb.WriteString(string(user.Role))
	if user.DisplayName != "" {
		sb.WriteString("\nname: ")
		sb.WriteString(user.DisplayName)
	}
	sb.WriteString("\n\nQuestion:\n")
	sb.WriteString(question)

	return sb.String(), nil
}
