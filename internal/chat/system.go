package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taskpoint/assist/internal/identity"
	"github.com/taskpoint/assist/internal/workflow"
)

// System defines the public contract for chat operations.
type System interface {
	Handler() *Handler
	Ask(ctx context.Context, req AskRequest) (*AskResponse, error)
}

type system struct {
	rt     *workflow.Runtime
	logger *slog.Logger
}

// New creates a chat system running questions through the given pipeline runtime.
func New(rt *workflow.Runtime, logger *slog.Logger) System {
	return &system{
		rt:     rt,
		logger: logger.With("system", "chat"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, ErrEmptyQuestion
	}

	user, err := identity.New(req.UserID, req.Name, req.Role)
	if err != nil {
		return nil, err
	}

	result, err := workflow.Execute(ctx, s.rt, user, req.Question)
	if err != nil {
		return nil, err
	}

	var raw any
	if result.Rows != nil {
		raw = result.Rows
	}

	return &AskResponse{
		Intent:          string(result.Intent.Case()),
		Params:          result.Intent.Params(),
		RawResult:       raw,
		NaturalResponse: result.Response,
	}, nil
}
