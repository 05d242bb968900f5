// Package quiz runs a practice session: it serves random problems from a
// pool, checks choices and keeps an in-memory tally.
//
// A correct choice moves on to a new problem once the feedback is
// dismissed. A wrong choice leaves the same problem up for another try, and
// Skip replaces the problem without answering it.
//
// A Session is not safe for concurrent use.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/problem"
)

var (
	// ErrNotAnswering is returned by Answer while feedback is showing.
	ErrNotAnswering = errors.New("quiz: not waiting for an answer")
	// ErrNoFeedback is returned by Next when there is nothing to dismiss.
	ErrNoFeedback = errors.New("quiz: no feedback to dismiss")
)

// Session tracks one learner's run through a problem pool.
type Session struct {
	ID   string
	Pool []problem.Generator

	Current    *Problem
	Phase      Phase
	LastResult *Result

	TotalAnswered int
	TotalCorrect  int
	TotalSkipped  int
	PerType       map[string]*TypeResult

	StartTime time.Time

	rng    problem.Rand
	now    func() time.Time
	logger *logging.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the randomness source.
func WithRand(r problem.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New starts a session over pool and serves the first problem. An empty pool
// means every registered problem type.
func New(pool []problem.Generator, opts ...Option) (*Session, error) {
	s := &Session{
		ID:      uuid.NewString(),
		PerType: make(map[string]*TypeResult),
		rng:     problem.DefaultRand(),
		now:     time.Now,
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.StartTime = s.now()
	s.setPool(pool)

	if err := s.serve(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) setPool(pool []problem.Generator) {
	if len(pool) == 0 {
		pool = games.All()
	}
	s.Pool = pool
	for _, g := range pool {
		if _, ok := s.PerType[g.ID()]; !ok {
			s.PerType[g.ID()] = &TypeResult{ProblemType: g.ID(), Name: g.Name()}
		}
	}
}

// SetPool replaces the pool and serves a fresh problem from it.
func (s *Session) SetPool(pool []problem.Generator) error {
	s.setPool(pool)
	return s.serve()
}

func (s *Session) ctx() context.Context {
	return logging.WithCorrelationID(context.Background(), s.ID)
}

// serve replaces the current problem with a new random one.
func (s *Session) serve() error {
	g := games.Pick(s.Pool, s.rng)
	st := g.NewState(s.rng)

	geo, err := g.Geometry(st)
	if err != nil {
		return fmt.Errorf("lay out %s problem: %w", g.ID(), err)
	}
	choices, err := g.AnswerChoices(st)
	if err != nil {
		return fmt.Errorf("grade %s problem: %w", g.ID(), err)
	}

	n := 1
	if s.Current != nil {
		n = s.Current.Number + 1
	}
	s.Current = &Problem{
		Number:    n,
		Generator: g,
		State:     st,
		Geometry:  geo,
		Choices:   choices,
		ServedAt:  s.now(),
	}
	s.Phase = PhaseAnswering
	s.LastResult = nil

	s.logger.Debug(s.ctx(), "problem served", "problem", g.ID(), "number", n)
	return nil
}

// Answer records a choice on the current problem.
func (s *Session) Answer(picked direction.Direction) (Result, error) {
	if s.Phase != PhaseAnswering {
		return Result{}, ErrNotAnswering
	}
	if !picked.Valid() {
		return Result{}, fmt.Errorf("quiz: invalid direction %d", int(picked))
	}

	p := s.Current
	p.Attempts++
	correct := problem.CheckChoice(p.Choices, picked)

	res := Result{Correct: correct, Picked: picked, Answer: direction.None}
	if correct {
		res.Answer = p.Answer()
	}

	s.TotalAnswered++
	tr := s.PerType[p.Generator.ID()]
	if tr != nil {
		tr.Attempted++
	}
	if correct {
		s.TotalCorrect++
		if tr != nil {
			tr.Correct++
		}
	}

	s.Phase = PhaseFeedback
	s.LastResult = &res

	s.logger.Debug(s.ctx(), "answer checked",
		"problem", p.Generator.ID(),
		"picked", picked.String(),
		"correct", correct,
		"attempts", p.Attempts,
	)
	return res, nil
}

// Next dismisses the feedback. After a correct choice it serves a new
// problem; after a wrong one the same problem stays up.
func (s *Session) Next() error {
	if s.Phase != PhaseFeedback || s.LastResult == nil {
		return ErrNoFeedback
	}
	if s.LastResult.Correct {
		return s.serve()
	}
	s.Phase = PhaseAnswering
	s.LastResult = nil
	return nil
}

// Skip abandons the current problem and serves another.
func (s *Session) Skip() error {
	s.TotalSkipped++
	if tr := s.PerType[s.Current.Generator.ID()]; tr != nil {
		tr.Skipped++
	}
	return s.serve()
}

// Accuracy returns the fraction of choices that were correct.
func (s *Session) Accuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAnswered)
}
