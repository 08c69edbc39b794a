package workflow

import (
	"log/slog"
	"time"

	"github.com/taskpoint/assist/internal/dispatch"
	"github.com/taskpoint/assist/internal/prompts"
)

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Oracle   Completer
	Prompts  prompts.System
	Dispatch dispatch.System
	Logger   *slog.Logger

	// Clock anchors relative dates (current date, current weekday).
	// Nil means time.Now.
	Clock func() time.Time
}

func (rt *Runtime) now() time.Time {
	if rt.Clock != nil {
		return rt.Clock()
	}
	return time.Now()
}
