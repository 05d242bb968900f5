package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/diagram"
	"github.com/abhisek/rhr/internal/quiz"
	"github.com/abhisek/rhr/internal/ui/components"
	"github.com/abhisek/rhr/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Something went wrong: "+s.errMsg)+"\n\n"+
				theme.Hint.Render("press any key to go back"))
	}

	p := s.quiz.Current
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Problem %d · %s", p.Number, p.Generator.Name()))
	infoRight := theme.Hint.Render(fmt.Sprintf("skipped %d", s.quiz.TotalSkipped))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	diagramBox := theme.Diagram.Render(diagram.Text(p.Geometry))

	// Directions take three lines; drop them when the diagram needs the room.
	if height-lipgloss.Height(diagramBox) >= 5 {
		b.WriteString(lipgloss.NewStyle().
			Width(width - 4).
			PaddingLeft(2).
			Foreground(theme.TextDim).
			Render(components.PlainText(p.Generator.Directions())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	side := lipgloss.JoinVertical(lipgloss.Left,
		s.choices.View(),
		s.renderFeedback(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", diagramBox, "   ", side))
	return b.String()
}

func (s *SessionScreen) renderFeedback() string {
	if s.showingQuitConfirm {
		return theme.Body.Bold(true).Render("End the quiz? (y/n)")
	}
	if s.quiz.Phase != quiz.PhaseFeedback || s.quiz.LastResult == nil {
		return ""
	}

	res := s.quiz.LastResult
	if res.Correct {
		return theme.Correct.Render(fmt.Sprintf("Correct! %s %s", res.Answer.Glyph(), res.Answer.Label())) +
			"\n" + theme.Hint.Render("press any key for the next problem")
	}
	return theme.Incorrect.Render("Not quite.") +
		"\n" + theme.Hint.Render("press any key to try again")
}
