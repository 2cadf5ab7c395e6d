// Package client implements the interactive client application runtime.
//
// It wires configuration, local session storage, the server transport and
// the terminal UI into a single process lifecycle.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/voxai-app/voxai/internal/adapter"
	"github.com/voxai-app/voxai/internal/config"
	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/session"
	"github.com/voxai-app/voxai/internal/store"
	"github.com/voxai-app/voxai/internal/tui"
)

type App struct {
	session *session.Manager
	tui     *tui.TUI
	logger  *logger.Logger
}

func NewApp() (*App, error) {
	log := logger.NewClientLogger("voxai-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("loading client config: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("creating client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("creating server adapter: %w", err)
	}

	sessionManager := session.NewManager(storages.SessionRepository, serverAdapter, log)

	ui, err := tui.New(sessionManager, serverAdapter, log)
	if err != nil {
		return nil, fmt.Errorf("creating terminal interface: %w", err)
	}

	return &App{
		session: sessionManager,
		tui:     ui,
		logger:  log,
	}, nil
}

// Run restores any persisted session and hands control to the terminal
// interface. It blocks until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.session.Initialize(ctx); err != nil {
		// a broken local session should not keep the user out; start
		// anonymous and let them log in again
		a.logger.Err(err).Msg("session restore failed, starting anonymous")
	}

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("running terminal interface: %w", err)
	}

	return nil
}
