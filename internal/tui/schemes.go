package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxai-app/voxai/internal/adapter"
	"github.com/voxai-app/voxai/models"
)

const (
	schemesViewportWidth  = 72
	schemesViewportHeight = 16
)

// schemesModel is a read-only browser over the public scheme catalogue.
// Typing a filter and pressing enter reloads the list with the keyword
// applied.
type schemesModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	viewport viewport.Model
	filter   textinput.Model
	schemes  []models.Scheme
	loading  bool
	errMsg   string
}

func newSchemesModel(ctx context.Context, server adapter.ServerAdapter) *schemesModel {
	filter := textinput.New()
	filter.Placeholder = "filter by keyword, empty shows all"
	filter.CharLimit = 128
	filter.Focus()

	return &schemesModel{
		ctx:      ctx,
		server:   server,
		viewport: viewport.New(schemesViewportWidth, schemesViewportHeight),
		filter:   filter,
	}
}

func (m *schemesModel) Init() tea.Cmd {
	m.errMsg = ""
	m.loading = true
	m.filter.SetValue("")
	m.filter.Focus()
	return tea.Batch(textinput.Blink, m.cmdLoad(""))
}

func (m *schemesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case schemesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.schemes = msg.schemes
		m.viewport.SetContent(renderSchemes(m.schemes))
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateMsg{page: "welcome"} }
		case "enter":
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			return m, m.cmdLoad(strings.TrimSpace(m.filter.Value()))
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *schemesModel) cmdLoad(keyword string) tea.Cmd {
	return func() tea.Msg {
		schemes, err := m.server.ListSchemes(m.ctx, models.SchemeFilter{Keyword: keyword})
		return schemesLoadedMsg{schemes: schemes, err: err}
	}
}

func renderSchemes(schemes []models.Scheme) string {
	if len(schemes) == 0 {
		return "No schemes found."
	}

	var b strings.Builder
	for _, s := range schemes {
		fmt.Fprintf(&b, "%s [%s]\n%s\n", titleStyle.Render(s.Title), s.Category, s.Description)
		if s.Eligibility != "" {
			fmt.Fprintf(&b, "Eligibility: %s\n", s.Eligibility)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *schemesModel) View() string {
	out := titleStyle.Render("Schemes") + "\n\n"
	out += m.filter.View() + "\n\n"
	out += m.viewport.View() + "\n"

	if m.loading {
		out += "\nLoading..."
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg)
	}

	out += "\n" + helpStyle.Render("enter apply filter, pgup/pgdown scroll, esc back")
	return out
}
