// Package problem defines the contract shared by every right-hand-rule
// problem type: generator metadata, randomized states, diagram geometry and
// answer choices.
package problem

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/rhr/internal/direction"
)

// ErrStateMismatch is returned when a generator receives a state produced by
// a different generator.
var ErrStateMismatch = errors.New("state does not belong to this problem type")

// State is the randomized parameter set of one problem instance. Each problem
// type defines its own concrete state struct.
type State interface {
	// ProblemType returns the ID of the generator that owns this state shape.
	ProblemType() string
}

// Rand is the randomness a generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand returns a Rand backed by the process-wide source.
func DefaultRand() Rand {
	return globalRand{}
}

// Pick returns a uniformly chosen element of choices. choices must not be empty.
func Pick[T any](r Rand, choices []T) T {
	return choices[r.IntN(len(choices))]
}

// Generator produces and evaluates problems of one type.
type Generator interface {
	ID() string
	Name() string
	Description() string

	// Directions is the instructional text shown with every problem. It may
	// contain TeX markup delimited by \( and \).
	Directions() string

	// NewState returns a fresh random state that satisfies Validate.
	NewState(r Rand) State

	// Validate reports whether s lies in this generator's domain.
	Validate(s State) error

	// Geometry maps a state to the coordinates a renderer needs.
	Geometry(s State) (Geometry, error)

	// Answer derives the correct resulting direction.
	Answer(s State) (direction.Direction, error)

	// AnswerChoices returns one choice per direction with exactly one marked
	// correct.
	AnswerChoices(s State) ([]AnswerChoice, error)
}

// Info holds the static metadata of a generator. Generators embed it to
// satisfy the metadata half of Generator.
type Info struct {
	IDValue          string
	NameValue        string
	DescriptionValue string
	DirectionsValue  string
}

func (i Info) ID() string          { return i.IDValue }
func (i Info) Name() string        { return i.NameValue }
func (i Info) Description() string { return i.DescriptionValue }
func (i Info) Directions() string  { return i.DirectionsValue }

// InvalidStateError describes a state field outside the generator's domain.
type InvalidStateError struct {
	ProblemType string
	Field       string
	Reason      string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.ProblemType, e.Field, e.Reason)
}

// Invalid builds an *InvalidStateError.
func Invalid(problemType, field, format string, args ...any) error {
	return &InvalidStateError{
		ProblemType: problemType,
		Field:       field,
		Reason:      fmt.Sprintf(format, args...),
	}
}

// CheckDirection verifies that d is one of allowed.
func CheckDirection(problemType, field string, d direction.Direction, allowed []direction.Direction) error {
	if !d.Valid() {
		return Invalid(problemType, field, "%d is not a direction", int(d))
	}
	for _, a := range allowed {
		if a == d {
			return nil
		}
	}
	return Invalid(problemType, field, "%s not allowed here (want one of %v)", d, allowed)
}

// CheckRange verifies 0 <= v <= max.
func CheckRange(problemType, field string, v, max float64) error {
	if v < 0 || v > max || v != v {
		return Invalid(problemType, field, "%g outside [0, %g]", v, max)
	}
	return nil
}

// Clamp limits v to [0, max]. It is the sanitizing rule for user-entered
// point coordinates.
func Clamp(v, max float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
