// Package tui implements the terminal user interface of the VoxAi client:
// a welcome menu, login and registration forms, a scheme browser and the
// chat screen. Screens are Bubble Tea models composed under a single root
// model that owns navigation.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxai-app/voxai/internal/adapter"
	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/session"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	session *session.Manager
	server  adapter.ServerAdapter
	logger  *logger.Logger
}

func New(sessionManager *session.Manager, server adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		session: sessionManager,
		server:  server,
		logger:  logger,
	}, nil
}

// Run starts the interface and blocks until the user quits. If the session
// is torn down while a program is running (server rejected the token), the
// user is returned to the welcome screen.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(ctx, t.session, t.server)
	program := tea.NewProgram(root, tea.WithAltScreen())

	t.session.Subscribe(func(state session.State) {
		if state == session.Anonymous {
			program.Send(sessionEndedMsg{})
		}
	})

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(rootModel)
	if ok && result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
