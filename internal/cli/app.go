// Package cli holds the dependencies shared by the winshell commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/winshell/internal/cli/styles"
	"github.com/bnema/winshell/internal/infrastructure/config"
	"github.com/bnema/winshell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	SessionID string

	ctx context.Context
}

// NewApp loads the configuration and builds the session logger.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	sessionID := logging.GenerateSessionID()
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithSession(ctx, logging.ShortSessionID(sessionID))

	logging.FromContext(ctx).Debug().Str("config", manager.Path()).Msg("config loaded")

	return &App{
		Config:    cfg,
		Manager:   manager,
		Theme:     styles.NewTheme(),
		SessionID: sessionID,
		ctx:       ctx,
	}, nil
}

// Ctx returns the context carrying the session logger.
func (a *App) Ctx() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
