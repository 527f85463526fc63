// Package tui is the interactive terminal surface for fact-checking.
//
// The model is driven by the bubbletea event loop and must not be shared
// across goroutines. The provider call runs as a tea.Cmd, so only the submit
// control is suspended while it is in flight.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GregMSThompson/factcheck/internal/models"
	"github.com/GregMSThompson/factcheck/internal/presenter"
	"github.com/GregMSThompson/factcheck/internal/render"
)

const defaultWidth = 80

// checkDoneMsg carries the query client outcome back into the event loop.
type checkDoneMsg struct {
	result models.FactCheckResult
	err    error
}

type Model struct {
	ctx       context.Context
	presenter *presenter.Presenter

	input   textarea.Model
	spinner spinner.Model

	width    int
	quitting bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
)

func New(ctx context.Context, p *presenter.Presenter) Model {
	input := textarea.New()
	input.Placeholder = "e.g., Did NASA discover a new planet made of diamond?"
	input.ShowLineNumbers = false
	input.SetHeight(4)
	input.SetWidth(defaultWidth - 4)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		presenter: p,
		input:     input,
		spinner:   spin,
		width:     defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.SetWidth(msg.Width - 4)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		}
		if m.presenter.Snapshot().State == presenter.StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.presenter.Snapshot().State != presenter.StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case checkDoneMsg:
		m.presenter.Complete(msg.result, msg.err)
		cmd := m.input.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	claim := m.input.Value()
	if !m.presenter.Begin(claim) {
		return m, nil
	}
	m.input.Blur()
	return m, tea.Batch(m.spinner.Tick, m.check(claim))
}

func (m Model) check(claim string) tea.Cmd {
	ctx, p := m.ctx, m.presenter
	return func() tea.Msg {
		result, err := p.Check(ctx, claim)
		return checkDoneMsg{result: result, err: err}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.presenter.Snapshot()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Fact Checker Agent"))
	b.WriteString("\n")
	b.WriteString(subStyle.Render("Enter a claim, news headline, or URL to verify it with AI and Google Search."))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(render.Hint(snap, m.input.Value()))

	if panel := render.Snapshot(snap, m.spinner.View(), m.width); panel != "" {
		b.WriteString("\n\n")
		b.WriteString(panel)
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, p *presenter.Presenter) error {
	_, err := tea.NewProgram(New(ctx, p), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}
