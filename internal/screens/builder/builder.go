// Package builder is a sandbox for composing a problem state by hand and
// seeing its diagram and answer.
package builder

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/diagram"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/statecodec"
	"github.com/abhisek/rhr/internal/ui/components"
	"github.com/abhisek/rhr/internal/ui/layout"
	"github.com/abhisek/rhr/internal/ui/theme"
)

// BuilderScreen edits a state field by field. Row 0 picks the problem type;
// the remaining rows are the fields of that type.
type BuilderScreen struct {
	env   *screen.Env
	types []problem.Generator

	typeIdx int
	state   problem.State
	row     int
	inputs  map[int]*components.NumberInput
}

var _ screen.Screen = (*BuilderScreen)(nil)
var _ screen.KeyHintProvider = (*BuilderScreen)(nil)

// New opens the builder on a random state of the first problem type.
func New(env *screen.Env) *BuilderScreen {
	b := &BuilderScreen{env: env, types: games.All()}
	b.load(b.types[0].NewState(env.Rand))
	return b
}

func (b *BuilderScreen) Init() tea.Cmd {
	return nil
}

func (b *BuilderScreen) Title() string {
	return "Diagram Builder"
}

func (b *BuilderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "r", Description: "Randomize"},
		{Key: "Esc", Description: "Back"},
	}
}

// State returns the state being edited.
func (b *BuilderScreen) State() problem.State {
	return b.state
}

func (b *BuilderScreen) generator() problem.Generator {
	return b.types[b.typeIdx]
}

func (b *BuilderScreen) form() form {
	return forms[b.generator().ID()]
}

// load replaces the state and rebuilds the numeric inputs from it.
func (b *BuilderScreen) load(st problem.State) {
	b.state = b.form().normalize(st)
	b.inputs = make(map[int]*components.NumberInput)
	for i, f := range b.form().fields {
		if f.numeric {
			in := components.NewNumberInput(f.label, f.value(b.state), 8)
			b.inputs[i+1] = &in
		}
	}
	b.row = min(b.row, len(b.form().fields))
	b.focus()
}

func (b *BuilderScreen) focus() {
	for row, in := range b.inputs {
		if row == b.row {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// commit parses the focused input into the state, clamping the point.
func (b *BuilderScreen) commit() {
	in, ok := b.inputs[b.row]
	if !ok {
		return
	}
	f := b.form().fields[b.row-1]
	v, err := in.Value()
	if err != nil {
		v = f.value(b.state)
	}
	b.state = b.form().normalize(f.setValue(b.state, v))
	in.SetValue(f.value(b.state))
}

func (b *BuilderScreen) cycle(delta int) {
	if b.row == 0 {
		b.typeIdx = (b.typeIdx + delta + len(b.types)) % len(b.types)
		b.load(b.generator().NewState(b.env.Rand))
		return
	}
	f := b.form().fields[b.row-1]
	if f.numeric {
		return
	}
	n := len(f.options(b.state))
	i := (f.index(b.state) + delta + n) % n
	b.load(f.pick(b.state, i))
}

func (b *BuilderScreen) move(delta int) {
	b.commit()
	rows := len(b.form().fields) + 1
	b.row = (b.row + delta + rows) % rows
	b.focus()
}

func (b *BuilderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		b.move(-1)
		return b, nil
	case "down", "tab":
		b.move(1)
		return b, nil
	case "enter":
		b.commit()
		return b, nil
	case "r":
		b.load(b.generator().NewState(b.env.Rand))
		b.env.Logger.Debug(context.Background(), "builder randomized", "problem", b.generator().ID())
		return b, nil
	}

	if in, ok := b.inputs[b.row]; ok {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return b, cmd
	}

	switch kmsg.String() {
	case "left", "h":
		b.cycle(-1)
	case "right", "l", "space":
		b.cycle(1)
	}
	return b, nil
}

func (b *BuilderScreen) renderRow(i int, label, value string) string {
	line := fmt.Sprintf("%-12s %s", label, value)
	if i == b.row {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

func (b *BuilderScreen) renderForm() string {
	rows := []string{b.renderRow(0, "Problem", "‹ "+b.generator().Name()+" ›")}
	for i, f := range b.form().fields {
		if f.numeric {
			prefix := "  "
			if i+1 == b.row {
				prefix = "▸ "
			}
			rows = append(rows, prefix+b.inputs[i+1].View())
			continue
		}
		rows = append(rows, b.renderRow(i+1, f.label, "‹ "+f.options(b.state)[f.index(b.state)]+" ›"))
	}
	return strings.Join(rows, "\n")
}

func (b *BuilderScreen) View(width, height int) string {
	g := b.generator()
	geo, err := g.Geometry(b.state)
	if err != nil {
		return theme.Incorrect.Render(err.Error())
	}
	answer, err := g.Answer(b.state)
	if err != nil {
		return theme.Incorrect.Render(err.Error())
	}
	encoded, err := statecodec.Encode(b.state)
	if err != nil {
		return theme.Incorrect.Render(err.Error())
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		b.renderForm(),
		"",
		theme.Hint.Render("Answer: ")+theme.Correct.Render(answer.Glyph()+" "+answer.Label()),
	)
	right := theme.Diagram.Render(diagram.Text(geo))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
	state := theme.Hint.Width(min(width-2, 100)).Render(string(encoded))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, body, "", state))
}
