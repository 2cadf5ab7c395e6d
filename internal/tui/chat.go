package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxai-app/voxai/internal/adapter"
)

const (
	chatViewportWidth  = 72
	chatViewportHeight = 14
)

type chatModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	viewport  viewport.Model
	input     textinput.Model
	history   []string
	lastReply string
	waiting   bool
	errMsg    string
	notice    string
}

func newChatModel(ctx context.Context, server adapter.ServerAdapter) *chatModel {
	input := textinput.New()
	input.Placeholder = "ask about schemes, e.g. \"schemes for farmers\""
	input.CharLimit = 512
	input.Focus()

	vp := viewport.New(chatViewportWidth, chatViewportHeight)

	return &chatModel{
		ctx:      ctx,
		server:   server,
		viewport: vp,
		input:    input,
	}
}

func (m *chatModel) Init() tea.Cmd {
	m.errMsg = ""
	m.notice = ""
	m.input.SetValue("")
	m.input.Focus()
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.lastReply = msg.reply
		m.appendLine(botStyle.Render("VoxAi: ") + msg.reply)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateMsg{page: "welcome"} }
		case "ctrl+y":
			if m.lastReply == "" {
				return m, nil
			}
			if err := clipboard.WriteAll(m.lastReply); err != nil {
				m.errMsg = "clipboard unavailable: " + err.Error()
				return m, nil
			}
			m.notice = "reply copied to clipboard"
			return m, nil
		case "enter":
			if m.waiting {
				return m, nil
			}
			message := strings.TrimSpace(m.input.Value())
			if message == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.errMsg = ""
			m.notice = ""
			m.waiting = true
			m.appendLine("You: " + message)
			return m, m.cmdSend(message)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) appendLine(line string) {
	m.history = append(m.history, line)
	m.viewport.SetContent(strings.Join(m.history, "\n\n"))
	m.viewport.GotoBottom()
}

func (m *chatModel) cmdSend(message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.server.Chat(m.ctx, message)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *chatModel) View() string {
	out := titleStyle.Render("Chat") + "\n\n"
	out += m.viewport.View() + "\n\n"
	out += m.input.View() + "\n"

	if m.waiting {
		out += "\nThinking..."
	}
	if m.notice != "" {
		out += "\n" + noticeStyle.Render(m.notice)
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg)
	}

	out += "\n" + helpStyle.Render("enter send, ctrl+y copy last reply, esc back")
	return out
}
