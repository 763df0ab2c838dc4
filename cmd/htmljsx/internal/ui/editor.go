// Package ui implements the interactive split-pane converter.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/livefir/htmljsx"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model of the editor
type Model struct {
	converter *htmljsx.Converter
	input     textarea.Model
	output    viewport.Model

	source    string
	result    string
	err       error
	fallbacks int

	width  int
	height int
}

// NewModel creates an editor that converts with c
func NewModel(c *htmljsx.Converter) Model {
	input := textarea.New()
	input.Placeholder = "Type or paste HTML..."
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.Focus()

	m := Model{
		converter: c,
		input:     input,
		output:    viewport.New(40, 10),
	}
	m.resize(80, 24)
	return m
}

// Run starts the editor on the terminal
func Run(c *htmljsx.Converter) error {
	p := tea.NewProgram(NewModel(c), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive mode failed: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if value := m.input.Value(); value != m.source {
		m.source = value
		m.convert()
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) convert() {
	res, err := m.converter.Render(m.source)
	if err != nil {
		m.err = err
		m.result = ""
		m.fallbacks = 0
		m.output.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.err = nil
	m.result = res.JSX
	m.fallbacks = res.HandlerFallbacks
	m.output.SetContent(res.JSX)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	// Two bordered panes side by side, a title line each and a help line.
	paneWidth := max(width/2-2, 10)
	paneHeight := max(height-4, 3)

	m.input.SetWidth(paneWidth)
	m.input.SetHeight(paneHeight)
	m.output.Width = paneWidth
	m.output.Height = paneHeight
}

// Result returns the last successful conversion
func (m Model) Result() string {
	return m.result
}

// Err returns the error of the last conversion, if it failed
func (m Model) Err() error {
	return m.err
}

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("HTML"),
		paneStyle.Render(m.input.View()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("JSX"),
		paneStyle.Render(m.output.View()),
	)

	status := "esc quit | pgup/pgdn scroll output"
	if m.fallbacks > 0 {
		status = fmt.Sprintf("%d event handler(s) need fixing | %s", m.fallbacks, status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		helpStyle.Render(status),
	)
}
