package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/taskpoint/assist/internal/authz"
)

// AuthorizeNode returns a state node that applies the role and scope policy
// to the classified intent. The check is purely local: no oracle call, no
// store call, no state mutation beyond passing the bag through. A denial
// terminates the graph with the policy's reason.
func AuthorizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		user, err := extractUser(s)
		if err != nil {
			return s, fmt.Errorf("authorize: %w", err)
		}

		intent, err := extractIntent(s)
		if err != nil {
			return s, fmt.Errorf("authorize: %w", err)
		}

		if err := authz.Authorize(user, intent); err != nil {
			return s, fmt.Errorf("authorize: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "authorize node complete",
			"intent", intent.Case(),
			"role", user.Role,
		)

		return s, nil
	})
}
