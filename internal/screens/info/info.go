// Package info shows the name, description and directions of each problem
// type.
package info

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/ui/components"
	"github.com/abhisek/rhr/internal/ui/layout"
	"github.com/abhisek/rhr/internal/ui/theme"
)

// InfoScreen pages through the registered problem types.
type InfoScreen struct {
	types    []problem.Generator
	selected int
}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)

// New opens on problemType, or on the first type when it is unknown.
func New(problemType string) *InfoScreen {
	s := &InfoScreen{types: games.All()}
	for i, g := range s.types {
		if g.ID() == problemType {
			s.selected = i
		}
	}
	return s
}

func (s *InfoScreen) Init() tea.Cmd {
	return nil
}

func (s *InfoScreen) Title() string {
	return "Problem Info"
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Problem type"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the problem type on screen.
func (s *InfoScreen) Selected() problem.Generator {
	return s.types[s.selected]
}

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h", "up", "k":
		s.selected = (s.selected + len(s.types) - 1) % len(s.types)
	case "right", "l", "down", "j", "tab":
		s.selected = (s.selected + 1) % len(s.types)
	}
	return s, nil
}

func (s *InfoScreen) View(width, height int) string {
	g := s.Selected()
	cw := min(width-4, 72)
	wrap := lipgloss.NewStyle().Width(cw)

	var tabs []string
	for i, t := range s.types {
		if i == s.selected {
			tabs = append(tabs, theme.Selected.Render("["+t.Name()+"]"))
		} else {
			tabs = append(tabs, theme.Hint.Render(" "+t.Name()+" "))
		}
	}

	var legend []string
	for i, d := range direction.All() {
		legend = append(legend, theme.Body.Render(
			string(rune('1'+i))+") "+d.Glyph()+" "+d.Label()))
	}

	sections := []string{
		strings.Join(tabs, "  "),
		theme.Title.Render(g.Name()),
		wrap.Foreground(theme.TextDim).Render(g.Description()),
		wrap.Foreground(theme.Text).Render(components.PlainText(g.Directions())),
		theme.Hint.Render("Answer keys"),
		wrap.Render(strings.Join(legend, "   ")),
	}
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
