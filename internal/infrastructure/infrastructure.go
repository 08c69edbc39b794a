// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, lifecycle) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/taskpoint/assist/internal/config"
	"github.com/taskpoint/assist/pkg/database"
	"github.com/taskpoint/assist/pkg/lifecycle"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, and database access.
type Infrastructure struct {
	Agent     gaconfig.AgentConfig
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Agent:     cfg.Agent,
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
