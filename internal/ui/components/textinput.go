package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for non-negative decimal numbers.
type NumberInput struct {
	Model textinput.Model
	Label string
	err   bool
}

// NewNumberInput creates an input holding value.
func NewNumberInput(label string, value float64, maxWidth int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.Prompt = ""
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	ti.SetValue(FormatNumber(value))

	return NumberInput{Model: ti, Label: label}
}

// FormatNumber prints v without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Focus focuses the input.
func (n *NumberInput) Focus() tea.Cmd {
	return n.Model.Focus()
}

// Blur removes focus.
func (n *NumberInput) Blur() {
	n.Model.Blur()
}

// Focused reports whether the input has focus.
func (n NumberInput) Focused() bool {
	return n.Model.Focused()
}

// Update handles messages, dropping keys that cannot be part of a number.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') && key != "." {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	_, err := n.Value()
	n.err = err != nil
	return n, cmd
}

// SetValue replaces the text with v.
func (n *NumberInput) SetValue(v float64) {
	n.Model.SetValue(FormatNumber(v))
	n.err = false
}

// Value parses the input. An empty input is zero.
func (n NumberInput) Value() (float64, error) {
	s := strings.TrimSpace(n.Model.Value())
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// View renders the label and input.
func (n NumberInput) View() string {
	label := theme.Unselected.Render(n.Label + ": ")
	if n.Focused() {
		label = theme.Selected.Render(n.Label + ": ")
	}
	view := label + n.Model.View()
	if n.err {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}
