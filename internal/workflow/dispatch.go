package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// DispatchNode returns a state node that executes the deterministic store
// query for the authorized intent and stores the raw rows in the state bag.
func DispatchNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		user, err := extractUser(s)
		if err != nil {
			return s, fmt.Errorf("dispatch: %w", err)
		}

		intent, err := extractIntent(s)
		if err != nil {
			return s, fmt.Errorf("dispatch: %w", err)
		}

		rows, err := rt.Dispatch.Execute(ctx, user, intent, rt.now())
		if err != nil {
			return s, fmt.Errorf("dispatch: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "dispatch node complete",
			"intent", intent.Case(),
			"rows", len(rows),
		)

		s = s.Set(KeyRows, rows)
		return s, nil
	})
}
