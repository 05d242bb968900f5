package problem

import (
	"context"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/vector"
)

// AnswerChoice is one selectable option.
type AnswerChoice struct {
	Direction direction.Direction `json:"direction"`
	Correct   bool                `json:"correct"`
}

// BuildChoices returns one choice per direction, in declaration order, with
// only answer marked correct.
func BuildChoices(answer direction.Direction) []AnswerChoice {
	all := direction.All()
	choices := make([]AnswerChoice, len(all))
	for i, d := range all {
		choices[i] = AnswerChoice{Direction: d, Correct: d == answer}
	}
	return choices
}

// CheckChoice reports whether picked is the correct choice.
func CheckChoice(choices []AnswerChoice, picked direction.Direction) bool {
	for _, c := range choices {
		if c.Direction == picked {
			return c.Correct
		}
	}
	return false
}

// CorrectDirection returns the direction marked correct.
func CorrectDirection(choices []AnswerChoice) (direction.Direction, bool) {
	for _, c := range choices {
		if c.Correct {
			return c.Direction, true
		}
	}
	return direction.None, false
}

// Resolve maps a computed vector to its canonical direction, which must
// match exactly. A vector within direction.Tolerance of the table is
// rounding drift: it resolves to that direction with a warning. Anything
// else falls back to None. Neither should happen for states that pass
// validation, so both are logged.
func Resolve(problemType string, v vector.Vec) direction.Direction {
	if d, ok := direction.FromVector(v); ok {
		return d
	}
	if d, ok := direction.Nearest(v, direction.Tolerance); ok {
		logging.Default().Warn(context.Background(), "computed vector drifted from its canonical direction",
			"problem", problemType,
			"vector", v,
			"direction", d.String(),
		)
		return d
	}
	logging.Default().Warn(context.Background(), "computed vector has no canonical direction",
		"problem", problemType,
		"vector", v,
	)
	return direction.None
}
