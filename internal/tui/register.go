package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxai-app/voxai/internal/session"
	"github.com/voxai-app/voxai/models"
)

type registerModel struct {
	ctx     context.Context
	session *session.Manager

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel(ctx context.Context, sessionManager *session.Manager) *registerModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 128
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	secret := textinput.New()
	secret.Placeholder = "password"
	secret.CharLimit = 128
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	interests := textinput.New()
	interests.Placeholder = "interests, comma separated (optional)"
	interests.CharLimit = 256

	return &registerModel{
		ctx:     ctx,
		session: sessionManager,
		inputs:  []textinput.Model{name, email, secret, interests},
	}
}

func (m *registerModel) Init() tea.Cmd {
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

func (m *registerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		// no token is issued on registration, so send the user to the
		// login form
		return m, func() tea.Msg { return navigateMsg{page: "login"} }

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
			req := m.buildRequest()
			if req.Name == "" || req.Email == "" || req.Secret == "" {
				m.errMsg = "name, email and password are required"
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m *registerModel) buildRequest() models.RegisterRequest {
	var interests []string
	for _, interest := range strings.Split(m.inputs[3].Value(), ",") {
		interest = strings.TrimSpace(interest)
		if interest != "" {
			interests = append(interests, interest)
		}
	}

	return models.RegisterRequest{
		Name:      strings.TrimSpace(m.inputs[0].Value()),
		Email:     strings.TrimSpace(m.inputs[1].Value()),
		Secret:    m.inputs[2].Value(),
		Interests: interests,
	}
}

func (m *registerModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		return registerResultMsg{err: m.session.Register(m.ctx, req)}
	}
}

func (m *registerModel) View() string {
	out := titleStyle.Render("Register") + "\n\n"
	for i := range m.inputs {
		out += m.inputs[i].View() + "\n"
	}

	if m.submitting {
		out += "\nRegistering..."
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg)
	}

	out += "\n\n" + helpStyle.Render("tab next field, enter submit, esc back")
	return out
}
