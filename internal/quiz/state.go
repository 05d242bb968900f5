package quiz

import (
	"time"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/problem"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseAnswering Phase = iota // Waiting for a choice
	PhaseFeedback               // Showing whether the last choice was right
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// Problem is the problem currently on screen.
type Problem struct {
	// Number counts problems served in this session, starting at 1.
	Number int

	Generator problem.Generator
	State     problem.State
	Geometry  problem.Geometry
	Choices   []problem.AnswerChoice

	// Attempts is the number of choices made on this problem so far.
	Attempts int

	ServedAt time.Time
}

// Answer returns the correct direction.
func (p *Problem) Answer() direction.Direction {
	d, _ := problem.CorrectDirection(p.Choices)
	return d
}

// Result is the outcome of one choice.
type Result struct {
	Correct bool
	Picked  direction.Direction
	// Answer is None unless Correct is true; a wrong choice does not give
	// the answer away.
	Answer direction.Direction
}

// TypeResult tracks per-problem-type stats for the summary.
type TypeResult struct {
	ProblemType string `json:"problemType"`
	Name        string `json:"name"`
	Attempted   int    `json:"attempted"`
	Correct     int    `json:"correct"`
	Skipped     int    `json:"skipped"`
}
