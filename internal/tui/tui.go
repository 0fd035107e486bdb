// Package tui is the interactive converter behind `translit --interactive`:
// a text input whose conversion is redrawn on every keystroke.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/cyrtranslit/internal/transliteration"
	"github.com/samber/lo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

type Model struct {
	standards []transliteration.Standard
	current   int
	direction transliteration.Direction
	input     textinput.Model
	output    string
	err       error
	width     int
}

// New starts on std in the forward direction.
func New(std transliteration.Standard) Model {
	ti := textinput.New()
	ti.Placeholder = "type Cyrillic or Latin text"
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60

	ids := lo.Map(transliteration.Standards(), func(i transliteration.Info, _ int) transliteration.Standard {
		return i.ID
	})
	current := max(slices.Index(ids, std), 0)

	return Model{
		standards: ids,
		current:   current,
		direction: transliteration.ToLatinDirection,
		input:     ti,
	}
}

// Run blocks until the user quits.
func Run(std transliteration.Standard) error {
	if _, err := tea.NewProgram(New(std)).Run(); err != nil {
		return fmt.Errorf("running interactive mode: %w", err)
	}
	return nil
}

func (m Model) Standard() transliteration.Standard { return m.standards[m.current] }

func (m Model) Direction() transliteration.Direction { return m.direction }

func (m Model) Output() string { return m.output }

func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.current = (m.current + 1) % len(m.standards)
			return m.convert(), nil
		case tea.KeyShiftTab:
			m.current = (m.current + len(m.standards) - 1) % len(m.standards)
			return m.convert(), nil
		case tea.KeyCtrlR:
			if m.direction == transliteration.ToLatinDirection {
				m.direction = transliteration.FromLatinDirection
			} else {
				m.direction = transliteration.ToLatinDirection
			}
			return m.convert(), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 20)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m.convert(), cmd
}

func (m Model) convert() Model {
	tr := transliteration.MustNew(m.Standard())
	m.output, m.err = tr.ConvertDirection(m.input.Value(), m.direction)
	return m
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Cyrillic transliteration"))
	s.WriteString("\n")

	fmt.Fprintf(&s, "%s  %s\n\n",
		activeStyle.Render(string(m.Standard())),
		subtleStyle.Render(string(m.direction)))

	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		s.WriteString(outputStyle.Render(m.output))
	}
	s.WriteString("\n\n")

	s.WriteString(subtleStyle.Render("tab=next standard • ctrl+r=reverse • esc/ctrl+c=quit"))

	return boxStyle.Render(s.String())
}
