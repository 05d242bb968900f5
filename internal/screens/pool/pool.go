// Package pool lets the learner choose which problem types the quiz draws
// from.
package pool

import (
	"context"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/router"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/ui/components"
	"github.com/abhisek/rhr/internal/ui/layout"
	"github.com/abhisek/rhr/internal/ui/theme"
)

// PoolScreen toggles problem types in and out of the shared pool. At least
// one type always stays selected.
type PoolScreen struct {
	env     *screen.Env
	types   []problem.Generator
	cursor  int
	enabled map[string]bool
	warning string
}

var _ screen.Screen = (*PoolScreen)(nil)
var _ screen.KeyHintProvider = (*PoolScreen)(nil)

// New creates a PoolScreen editing env.Pool.
func New(env *screen.Env) *PoolScreen {
	ids, _ := games.ResolvePool(strings.Join(env.Pool, ","))
	s := &PoolScreen{
		env:     env,
		types:   games.All(),
		enabled: make(map[string]bool),
	}
	for _, id := range ids {
		s.enabled[id] = true
	}
	return s
}

func (s *PoolScreen) Init() tea.Cmd {
	return nil
}

func (s *PoolScreen) Title() string {
	return "Problem Pool"
}

func (s *PoolScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Done"},
	}
}

// Selected returns the enabled IDs in registry order.
func (s *PoolScreen) Selected() []string {
	var ids []string
	for _, g := range s.types {
		if s.enabled[g.ID()] {
			ids = append(ids, g.ID())
		}
	}
	return ids
}

func (s *PoolScreen) toggle() {
	id := s.types[s.cursor].ID()
	if s.enabled[id] && len(s.Selected()) == 1 {
		s.warning = "At least one problem type must stay selected."
		return
	}
	s.enabled[id] = !s.enabled[id]
	s.warning = ""

	s.env.Pool = s.Selected()
	if slices.Equal(s.env.Pool, games.IDs()) {
		s.env.Pool = nil
	}
	s.env.Logger.Debug(context.Background(), "pool changed", "pool", strings.Join(s.Selected(), ","))
}

func (s *PoolScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.types)-1 {
			s.cursor++
		}
	case "space", " ", "x":
		s.toggle()
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *PoolScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	for i, g := range s.types {
		box := "[ ]"
		if s.enabled[g.ID()] {
			box = "[x]"
		}
		line := box + " " + g.Name()
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(cw).Render("      " + g.Description()))
		b.WriteString("\n\n")
	}

	sections := []string{components.Card(strings.TrimRight(b.String(), "\n"), cw)}
	if s.warning != "" {
		sections = append(sections, theme.Incorrect.Render(s.warning))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
