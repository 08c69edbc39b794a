package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskpoint/assist/internal/prompts"
)

// ComposePrompt builds the base oracle prompt for a pipeline stage by
// combining its tunable instructions with its immutable specification.
// Stage nodes append their own request sections on top.
func ComposePrompt(
	ctx context.Context,
	ps prompts.System,
	stage prompts.Stage,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	return sb.String(), nil
}
