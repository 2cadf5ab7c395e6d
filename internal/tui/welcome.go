package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxai-app/voxai/internal/session"
)

type welcomeItem struct {
	label string
	page  string
	quit  bool
}

// welcomeModel is the entry menu. Its items depend on the session state:
// anonymous users see login/register, authenticated users see chat/logout.
type welcomeModel struct {
	ctx     context.Context
	session *session.Manager
	items   []welcomeItem
	idx     int
}

func newWelcomeModel(ctx context.Context, sessionManager *session.Manager) *welcomeModel {
	return &welcomeModel{ctx: ctx, session: sessionManager}
}

func (m *welcomeModel) Init() tea.Cmd {
	m.rebuildItems()
	return nil
}

func (m *welcomeModel) rebuildItems() {
	m.idx = 0
	if _, authenticated := m.session.CurrentUser(); authenticated {
		m.items = []welcomeItem{
			{label: "Chat with VoxAi", page: "chat"},
			{label: "Browse schemes", page: "schemes"},
			{label: "Log out"},
			{label: "Quit", quit: true},
		}
		return
	}

	m.items = []welcomeItem{
		{label: "Log in", page: "login"},
		{label: "Register", page: "register"},
		{label: "Browse schemes", page: "schemes"},
		{label: "Quit", quit: true},
	}
}

func (m *welcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		item := m.items[m.idx]
		if item.quit {
			return m, tea.Quit
		}
		if item.page != "" {
			page := item.page
			return m, func() tea.Msg { return navigateMsg{page: page} }
		}
		// logout is the only remaining item
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *welcomeModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		// the session manager notifies subscribers; the root model reacts
		// to the resulting sessionEndedMsg
		_ = m.session.Logout(m.ctx)
		return nil
	}
}

func (m *welcomeModel) View() string {
	out := titleStyle.Render("VoxAi") + "\n\n"

	if user, authenticated := m.session.CurrentUser(); authenticated {
		out += "Signed in as " + user.Name + " <" + user.Email + ">\n\n"
	} else {
		out += "Discover government welfare schemes.\n\n"
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item.label + "\n"
	}

	out += "\n" + helpStyle.Render("up/down move, enter select, q quit")
	return out
}
