// Package wirefield generates problems asking for the magnetic field at a
// point near a single straight current-carrying wire.
package wirefield

import (
	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/vector"
)

// ID is the registry identifier of this problem type.
const ID = "wire-field"

// Diagram constants.
const (
	span        = 200.0
	center      = 100.0
	crossOffset = 60.0
	lineOffset  = 50.0
)

// State is one single-wire problem.
type State struct {
	Current direction.Direction `json:"currentDirection"`
	Radius  direction.Direction `json:"radiusDirection"`
	PX      float64             `json:"px"`
	PY      float64             `json:"py"`
}

// ProblemType implements problem.State.
func (State) ProblemType() string { return ID }

// Generator implements problem.Generator for single wires.
type Generator struct {
	problem.Info
}

// New returns the single-wire generator.
func New() *Generator {
	return &Generator{Info: problem.Info{
		IDValue:          ID,
		NameValue:        "Wire Field",
		DescriptionValue: "Determine the direction of the magnetic field at various points around a current carrying wire.",
		DirectionsValue: `The wire or wire cross section below is carrying a current \(I\) in ` +
			`the specified direction. Select the direction of the magnetic field ` +
			`at Point \(P\).`,
	}}
}

// RadiusDirections returns the offsets perpendicular to a wire carrying
// current in d.
func RadiusDirections(d direction.Direction) []direction.Direction {
	switch d.Axis() {
	case direction.AxisZ:
		return direction.XYPlane()
	case direction.AxisX:
		return direction.YAxis()
	case direction.AxisY:
		return direction.XAxis()
	default:
		return direction.All()
	}
}

// MaxX is the diagram width for a wire carrying current in d.
func MaxX(d direction.Direction) float64 {
	if d.IsXAxis() {
		return 2 * span
	}
	return span
}

// MaxY is the diagram height for a wire carrying current in d.
func MaxY(d direction.Direction) float64 {
	if d.IsYAxis() {
		return 2 * span
	}
	return span
}

// ClampPoint returns s with its point clamped into the diagram.
func ClampPoint(s State) State {
	s.PX = problem.Clamp(s.PX, MaxX(s.Current))
	s.PY = problem.Clamp(s.PY, MaxY(s.Current))
	return s
}

// NewState draws a random wire and point.
func (g *Generator) NewState(r problem.Rand) problem.State {
	current := problem.Pick(r, direction.Normal())
	radius := problem.Pick(r, RadiusDirections(current))
	rv := radius.Vector()

	s := State{Current: current, Radius: radius}
	switch current.Axis() {
	case direction.AxisZ:
		s.PX = center + rv[0]*crossOffset
		s.PY = center - rv[1]*crossOffset
	case direction.AxisX:
		s.PX = r.Float64()*span + center
		s.PY = center - rv[1]*lineOffset
	case direction.AxisY:
		s.PX = center + rv[0]*lineOffset
		s.PY = r.Float64()*span + center
	}
	return s
}

func (g *Generator) state(s problem.State) (State, error) {
	st, ok := s.(State)
	if !ok {
		if p, isPtr := s.(*State); isPtr && p != nil {
			st, ok = *p, true
		}
	}
	if !ok {
		return State{}, problem.ErrStateMismatch
	}
	return st, g.check(st)
}

func (g *Generator) check(s State) error {
	if err := problem.CheckDirection(ID, "currentDirection", s.Current, direction.Normal()); err != nil {
		return err
	}
	if err := problem.CheckDirection(ID, "radiusDirection", s.Radius, RadiusDirections(s.Current)); err != nil {
		return err
	}
	if err := problem.CheckRange(ID, "px", s.PX, MaxX(s.Current)); err != nil {
		return err
	}
	return problem.CheckRange(ID, "py", s.PY, MaxY(s.Current))
}

// Validate implements problem.Generator.
func (g *Generator) Validate(s problem.State) error {
	_, err := g.state(s)
	return err
}

// Answer returns the field direction, current × radius.
func (g *Generator) Answer(s problem.State) (direction.Direction, error) {
	st, err := g.state(s)
	if err != nil {
		return direction.None, err
	}
	return problem.Resolve(ID, vector.Cross(st.Current.Vector(), st.Radius.Vector())), nil
}

// AnswerChoices implements problem.Generator.
func (g *Generator) AnswerChoices(s problem.State) ([]problem.AnswerChoice, error) {
	answer, err := g.Answer(s)
	if err != nil {
		return nil, err
	}
	return problem.BuildChoices(answer), nil
}

// Geometry lays out the wire and point P.
func (g *Generator) Geometry(s problem.State) (problem.Geometry, error) {
	st, err := g.state(s)
	if err != nil {
		return problem.Geometry{}, err
	}

	geo := problem.Geometry{
		Width:  MaxX(st.Current),
		Height: MaxY(st.Current),
		Wires:  []problem.Wire{wire(st.Current)},
		Points: []problem.Point{{Label: "P", X: st.PX, Y: st.PY}},
	}
	return geo, nil
}

func wire(d direction.Direction) problem.Wire {
	if d.IsZAxis() {
		return problem.CrossSectionWire(d, center, center)
	}
	return problem.LineWire(d, center, 2*span)
}
