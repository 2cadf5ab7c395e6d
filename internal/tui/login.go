package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxai-app/voxai/internal/session"
)

type loginModel struct {
	ctx     context.Context
	session *session.Manager

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel(ctx context.Context, sessionManager *session.Manager) *loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Focus()

	secret := textinput.New()
	secret.Placeholder = "password"
	secret.CharLimit = 128
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	return &loginModel{
		ctx:     ctx,
		session: sessionManager,
		inputs:  []textinput.Model{email, secret},
	}
}

func (m *loginModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	return textinput.Blink
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return navigateMsg{page: "welcome"} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateMsg{page: "welcome"} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "enter":
			email := strings.TrimSpace(m.inputs[0].Value())
			secret := m.inputs[1].Value()
			if email == "" || secret == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdLogin(email, secret)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m *loginModel) cmdLogin(email string, secret string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: m.session.Login(m.ctx, email, secret)}
	}
}

func (m *loginModel) View() string {
	out := titleStyle.Render("Log in") + "\n\n"
	for i := range m.inputs {
		out += m.inputs[i].View() + "\n"
	}

	if m.submitting {
		out += "\nLogging in..."
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg)
	}

	out += "\n\n" + helpStyle.Render("tab next field, enter submit, esc back")
	return out
}
