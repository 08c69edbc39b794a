package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Completer is the language-model oracle contract: one prompt in, raw text
// out. Both pipeline suspension points (classify and respond) go through it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type agentCompleter struct {
	config gaconfig.AgentConfig
}

// NewCompleter creates a Completer backed by a chat agent. Each call
// constructs its own agent, so the returned value is safe for concurrent
// use by multiple in-flight requests.
func NewCompleter(config gaconfig.AgentConfig) Completer {
	return &agentCompleter{config: config}
}

func (c *agentCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&c.config)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Content(), nil
}
