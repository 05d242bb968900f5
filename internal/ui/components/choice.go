package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/ui/theme"
)

// ChoiceMsg is emitted when a direction is submitted.
type ChoiceMsg struct {
	Direction direction.Direction
}

// DirectionChoice is a vertical list of the seven answer directions. Number
// keys 1-7 submit directly; arrows move and Enter submits.
type DirectionChoice struct {
	Options  []direction.Direction
	Selected int

	// Tried holds directions already picked wrongly on this problem.
	Tried map[direction.Direction]bool
	// Solved is set once the correct direction has been picked.
	Solved *direction.Direction
	// Locked ignores input, e.g. while feedback is showing.
	Locked bool
}

// NewDirectionChoice lists every direction in canonical order.
func NewDirectionChoice() DirectionChoice {
	return DirectionChoice{
		Options: direction.All(),
		Tried:   make(map[direction.Direction]bool),
	}
}

// Reset clears per-problem marks.
func (m *DirectionChoice) Reset() {
	m.Selected = 0
	m.Tried = make(map[direction.Direction]bool)
	m.Solved = nil
	m.Locked = false
}

// Init returns nil.
func (m DirectionChoice) Init() tea.Cmd {
	return nil
}

func (m DirectionChoice) submit() tea.Cmd {
	d := m.Options[m.Selected]
	return func() tea.Msg { return ChoiceMsg{Direction: d} }
}

// Update handles keyboard navigation and selection.
func (m DirectionChoice) Update(msg tea.Msg) (DirectionChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.submit()
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(m.Options) {
			m.Selected = int(key[0] - '1')
			return m, m.submit()
		}
	}
	return m, nil
}

// View renders one line per direction.
func (m DirectionChoice) View() string {
	var b strings.Builder
	for i, d := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s  %s", prefix, i+1, d.Glyph(), d.Label())

		switch {
		case m.Solved != nil && *m.Solved == d:
			line = theme.Correct.Render(line + "  ✓")
		case m.Tried[d]:
			line = theme.Tried.Render(line)
		case i == m.Selected && !m.Locked:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
