package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxai-app/voxai/internal/adapter"
	"github.com/voxai-app/voxai/internal/session"
)

// rootModel owns screen navigation. Every screen is a child model keyed by
// page name; rootModel forwards messages to the active one and switches
// pages on navigateMsg.
type rootModel struct {
	ctx     context.Context
	session *session.Manager

	pages  map[string]tea.Model
	active string

	notice     string
	quitByUser bool
}

func newRootModel(ctx context.Context, sessionManager *session.Manager, server adapter.ServerAdapter) rootModel {
	pages := map[string]tea.Model{
		"welcome":  newWelcomeModel(ctx, sessionManager),
		"login":    newLoginModel(ctx, sessionManager),
		"register": newRegisterModel(ctx, sessionManager),
		"chat":     newChatModel(ctx, server),
		"schemes":  newSchemesModel(ctx, server),
	}

	active := "welcome"

	return rootModel{
		ctx:     ctx,
		session: sessionManager,
		pages:   pages,
		active:  active,
	}
}

func (m rootModel) Init() tea.Cmd {
	return m.pages[m.active].Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navigateMsg:
		m.active = msg.page
		m.notice = ""
		return m, m.pages[m.active].Init()

	case sessionEndedMsg:
		// logout or server-side token rejection: only the welcome screen
		// makes sense now
		m.active = "welcome"
		m.notice = "Session ended. Please log in again."
		return m, m.pages[m.active].Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
	}

	page, cmd := m.pages[m.active].Update(msg)
	m.pages[m.active] = page
	return m, cmd
}

func (m rootModel) View() string {
	view := m.pages[m.active].View()
	if m.notice != "" {
		view = noticeStyle.Render(m.notice) + "\n\n" + view
	}
	return appStyle.Render(view)
}
