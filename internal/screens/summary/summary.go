// Package summary shows the end-of-quiz report.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/quiz"
	"github.com/abhisek/rhr/internal/router"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/ui/components"
	"github.com/abhisek/rhr/internal/ui/layout"
	"github.com/abhisek/rhr/internal/ui/theme"
)

// SummaryScreen displays a quiz summary.
type SummaryScreen struct {
	summary *quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The quiz screen was replaced, so one pop lands on home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString(center(theme.Title.Render("Quiz complete!")))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Hint.Render("Duration: " + formatDuration(sum.Duration))))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Problems: %d      Answers: %d      Correct: %d      Skipped: %d",
		sum.Problems, sum.TotalAnswered, sum.TotalCorrect, sum.TotalSkipped)
	b.WriteString(center(theme.Body.Render(stats)))
	b.WriteString("\n\n")

	barWidth := components.ContentWidth(width)
	b.WriteString(center(components.NewProgressBar("Accuracy", sum.Accuracy, true, barWidth).View()))
	b.WriteString("\n\n")

	if len(sum.TypeResults) == 0 {
		b.WriteString(center(theme.Hint.Render("No problems answered.")))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth))
	b.WriteString(center(theme.Hint.Render("Problem types")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	for _, tr := range sum.TypeResults {
		line := fmt.Sprintf("%-20s %d/%d correct", tr.Name, tr.Correct, tr.Attempted)
		if tr.Skipped > 0 {
			line += fmt.Sprintf("   %d skipped", tr.Skipped)
		}
		style := theme.Body
		if tr.Attempted > 0 && tr.Correct == tr.Attempted {
			style = theme.Correct
		}
		b.WriteString(center(style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
