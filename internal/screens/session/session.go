// Package session is the quiz screen: it shows one problem at a time from
// the selected pool and grades the learner's choices.
package session

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/quiz"
	"github.com/abhisek/rhr/internal/router"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/screens/info"
	"github.com/abhisek/rhr/internal/screens/summary"
	"github.com/abhisek/rhr/internal/ui/components"
	"github.com/abhisek/rhr/internal/ui/layout"
)

// SessionScreen runs a quiz.Session.
type SessionScreen struct {
	env     *screen.Env
	quiz    *quiz.Session
	choices components.DirectionChoice

	showingQuitConfirm bool
	errMsg             string
}

var (
	_ screen.Screen          = (*SessionScreen)(nil)
	_ screen.KeyHintProvider = (*SessionScreen)(nil)
	_ screen.BackHandler     = (*SessionScreen)(nil)
	_ screen.ScoreProvider   = (*SessionScreen)(nil)
)

// New starts a quiz over env.Pool.
func New(env *screen.Env) *SessionScreen {
	s := &SessionScreen{
		env:     env,
		choices: components.NewDirectionChoice(),
	}
	ids, _ := games.ResolvePool(strings.Join(env.Pool, ","))
	q, err := quiz.New(games.Pool(ids), quiz.WithRand(env.Rand), quiz.WithLogger(env.Logger))
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.quiz = q
	return s
}

func (s *SessionScreen) ctx() context.Context {
	if s.quiz == nil {
		return context.Background()
	}
	return logging.WithCorrelationID(context.Background(), s.quiz.ID)
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.quiz != nil {
		s.env.Logger.Info(s.ctx(), "quiz started", "pool", len(s.quiz.Pool))
	}
	return nil
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

// HandlesBack keeps Esc for the quit confirmation.
func (s *SessionScreen) HandlesBack() bool {
	return true
}

// Score returns the running tally.
func (s *SessionScreen) Score() (int, int) {
	if s.quiz == nil {
		return 0, 0
	}
	return s.quiz.TotalCorrect, s.quiz.TotalAnswered
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "y", Description: "End quiz"},
			{Key: "n", Description: "Keep going"},
		}
	}
	if s.quiz != nil && s.quiz.Phase == quiz.PhaseFeedback {
		return []layout.KeyHint{{Key: "Any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-7", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "s", Description: "Skip"},
		{Key: "?", Description: "Info"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMsg:
		return s.submitAnswer(msg)
	case sessionEndMsg:
		return s.handleSessionEnd()
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback: any key dismisses.
	if s.quiz.Phase == quiz.PhaseFeedback {
		return s.dismissFeedback()
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "s":
		if err := s.quiz.Skip(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.choices.Reset()
		return s, nil
	case "?":
		id := s.quiz.Current.Generator.ID()
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: info.New(id)} }
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// submitAnswer grades a choice and locks the list while feedback shows.
func (s *SessionScreen) submitAnswer(msg components.ChoiceMsg) (screen.Screen, tea.Cmd) {
	if s.quiz == nil || s.quiz.Phase != quiz.PhaseAnswering {
		return s, nil
	}
	res, err := s.quiz.Answer(msg.Direction)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.choices.Locked = true
	if res.Correct {
		d := res.Answer
		s.choices.Solved = &d
	} else {
		s.choices.Tried[msg.Direction] = true
	}
	return s, nil
}

func (s *SessionScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	correct := s.quiz.LastResult != nil && s.quiz.LastResult.Correct
	if err := s.quiz.Next(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if correct {
		s.choices.Reset()
	} else {
		s.choices.Locked = false
	}
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.quiz == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	sum := s.quiz.Summary()
	s.env.Logger.Info(s.ctx(), "quiz ended",
		"answered", sum.TotalAnswered,
		"correct", sum.TotalCorrect,
		"skipped", sum.TotalSkipped,
		"duration", sum.Duration,
	)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
