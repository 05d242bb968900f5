package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rhr/internal/direction"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a"},
		{Label: "off", Disabled: true},
		{Label: "b"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected, "stays on last enabled item")
	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 1, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		called = true
		return nil
	}}})
	_, _ = m.Update(specialKey(tea.KeyEnter))
	assert.True(t, called)
	assert.Contains(t, m.View(), "▸ go")
}

func TestDirectionChoiceNumberKeys(t *testing.T) {
	tests := []struct {
		key  rune
		want direction.Direction
	}{
		{'1', direction.IntoPage},
		{'2', direction.OutOfPage},
		{'5', direction.Up},
		{'7', direction.None},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			m := NewDirectionChoice()
			m, cmd := m.Update(keyPress(tt.key))
			require.NotNil(t, cmd)
			assert.Equal(t, ChoiceMsg{Direction: tt.want}, cmd())
			assert.Equal(t, tt.want, m.Options[m.Selected])
		})
	}

	m := NewDirectionChoice()
	_, cmd := m.Update(keyPress('8'))
	assert.Nil(t, cmd)
}

func TestDirectionChoiceArrowsAndEnter(t *testing.T) {
	m := NewDirectionChoice()
	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 0, m.Selected)
	for range 3 {
		m, _ = m.Update(specialKey(tea.KeyDown))
	}
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, ChoiceMsg{Direction: direction.Right}, cmd())
}

func TestDirectionChoiceLocked(t *testing.T) {
	m := NewDirectionChoice()
	m.Locked = true
	_, cmd := m.Update(keyPress('1'))
	assert.Nil(t, cmd)

	m.Reset()
	assert.False(t, m.Locked)
	assert.Empty(t, m.Tried)
}

func TestDirectionChoiceView(t *testing.T) {
	m := NewDirectionChoice()
	up := direction.Up
	m.Solved = &up
	m.Tried[direction.Down] = true

	view := m.View()
	assert.Contains(t, view, "5) ↑  "+direction.Up.Label())
	assert.Contains(t, view, "✓")
	assert.Equal(t, direction.Count, lipgloss.Height(view)-1)
}

func TestNumberInput(t *testing.T) {
	n := NewNumberInput("px", 150, 6)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)

	n.Focus()
	n, _ = n.Update(keyPress('x'))
	v, _ = n.Value()
	assert.Equal(t, 150.0, v, "letters are ignored")

	n, _ = n.Update(keyPress('.'))
	n, _ = n.Update(keyPress('5'))
	v, err = n.Value()
	require.NoError(t, err)
	assert.Equal(t, 150.5, v)

	n.SetValue(0)
	assert.Equal(t, "0", n.Model.Value())
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`current \(I\) here`, "current I here"},
		{`field \(\mathbf{\vec{B}}\).`, "field B."},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlainText(tt.in))
	}
}

func TestProgressBarWidth(t *testing.T) {
	bar := NewProgressBar("", 1, true, 30)
	assert.Equal(t, 30, lipgloss.Width(bar.View()))
	assert.Contains(t, bar.View(), "100%")
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 54, ContentWidth(60))
	assert.Equal(t, 60, ContentWidth(200))
}
