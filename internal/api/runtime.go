package api

import (
	"github.com/taskpoint/assist/internal/config"
	"github.com/taskpoint/assist/internal/infrastructure"
	"github.com/taskpoint/assist/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Agent:     cfg.Agent,
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Pagination: cfg.API.Pagination,
	}
}
