// Package tui implements the interactive calculator: two operand fields,
// an operation toggle, and a live result.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/varcalc/varcalc/internal/calc"
	"github.com/varcalc/varcalc/internal/config"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model represents the interactive calculator state
type Model struct {
	inputs  [2]textinput.Model
	focused int
	op      calc.Op
}

// New creates a calculator model seeded with cfg's operands and operation.
// An unconfigured operation defaults to addition so the screen always
// shows a live result.
func New(cfg *config.Config) Model {
	op, err := cfg.Op()
	if err != nil || op == calc.OpNone {
		op = calc.OpAddition
	}

	var inputs [2]textinput.Model
	for i, v := range []int{cfg.Operand1, cfg.Operand2} {
		ti := textinput.New()
		ti.SetValue(strconv.Itoa(v))
		ti.CharLimit = 12
		ti.Width = 12
		inputs[i] = ti
	}
	inputs[0].Focus()

	return Model{inputs: inputs, op: op}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "tab", "enter":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + 1) % len(m.inputs)
			m.inputs[m.focused].Focus()
			return m, nil
		case "shift+tab":
			m.inputs[m.focused].Blur()
			m.focused = (m.focused + len(m.inputs) - 1) % len(m.inputs)
			m.inputs[m.focused].Focus()
			return m, nil
		case "up", "down":
			if m.op == calc.OpAddition {
				m.op = calc.OpSubtraction
			} else {
				m.op = calc.OpAddition
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Calculation Example"))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Operand 1: "))
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Operand 2: "))
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	b.WriteString(opStyle.Render(m.op.String()))
	b.WriteString("\n")

	line, err := m.resultLine()
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(resultStyle.Render(line))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("tab: switch field • up/down: switch operation • q: quit"))
	b.WriteString("\n")

	return b.String()
}

// resultLine computes the calculation line for the current inputs.
func (m Model) resultLine() (string, error) {
	a, err := strconv.Atoi(strings.TrimSpace(m.inputs[0].Value()))
	if err != nil {
		return "", fmt.Errorf("operand 1 is not an integer")
	}
	b, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil {
		return "", fmt.Errorf("operand 2 is not an integer")
	}

	result, symbol, err := calc.Calculate(a, b, m.op)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %c %d = %d", a, symbol, b, result), nil
}

// Run starts the interactive calculator and blocks until it exits.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg)).Run()
	return err
}
