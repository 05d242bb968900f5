// Package dualwire generates problems asking for the net magnetic field of
// two parallel wires at a point between or beside them.
//
// The point sits either midway between the wires or beside the pair, three
// times closer to one wire than to the other. Field strength falls off as
// 1/r, so the nearer wire dominates unless the two fields point the same way.
package dualwire

import (
	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/vector"
)

// ID is the registry identifier of this problem type.
const ID = "dual-wire-fields"

const (
	size   = 400.0
	middle = 200.0
	offset = 150.0

	// Perpendicular coordinates of wire 1 and wire 2.
	wire1 = 125.0
	wire2 = 275.0
)

// State is one dual-wire problem. Relative is the in-page axis along which
// two out-of-page wires are separated; it is None for in-page wires.
type State struct {
	Current1 direction.Direction `json:"currentDirection1"`
	Current2 direction.Direction `json:"currentDirection2"`
	Relative direction.Direction `json:"relCurrentDirection"`
	Radius   direction.Direction `json:"radiusDirection"`
	PX       float64             `json:"px"`
	PY       float64             `json:"py"`
}

// ProblemType implements problem.State.
func (State) ProblemType() string { return ID }

// Generator implements problem.Generator for wire pairs.
type Generator struct {
	problem.Info
}

// New returns the dual-wire generator.
func New() *Generator {
	return &Generator{Info: problem.Info{
		IDValue:          ID,
		NameValue:        "Dual Wire Fields",
		DescriptionValue: "Determine the direction of the magnetic field at various points around two current carrying wires.",
		DirectionsValue: `Each wire or wire cross section below is carrying a current \(I\) in ` +
			`the specified direction. Select the direction of the magnetic field ` +
			`at Point \(P\). Pay close attention to the distances between the ` +
			`wires and the points as they may affect the magnitude of the magnetic ` +
			`field.`,
	}}
}

// SecondCurrents returns the allowed currents of wire 2 given wire 1. The
// wires are always parallel.
func SecondCurrents(current1 direction.Direction) []direction.Direction {
	switch current1.Axis() {
	case direction.AxisZ:
		return direction.ZAxis()
	case direction.AxisX:
		return direction.XAxis()
	case direction.AxisY:
		return direction.YAxis()
	default:
		return nil
	}
}

// RadiusDirections returns the allowed point offsets. None places the point
// midway between the wires; the others place it beside the pair along the
// axis that separates them.
func RadiusDirections(current1, relative direction.Direction) []direction.Direction {
	out := []direction.Direction{direction.None}
	switch current1.Axis() {
	case direction.AxisZ:
		if relative.IsXAxis() {
			return append(out, direction.XAxis()...)
		}
		return append(out, direction.YAxis()...)
	case direction.AxisX:
		return append(out, direction.YAxis()...)
	case direction.AxisY:
		return append(out, direction.XAxis()...)
	default:
		return out
	}
}

// MaxX is the diagram width, which does not depend on the wires.
func MaxX(direction.Direction) float64 { return size }

// MaxY is the diagram height, which does not depend on the wires.
func MaxY(direction.Direction) float64 { return size }

// ClampPoint returns s with its point clamped into the diagram.
func ClampPoint(s State) State {
	s.PX = problem.Clamp(s.PX, MaxX(s.Current1))
	s.PY = problem.Clamp(s.PY, MaxY(s.Current1))
	return s
}

// NewState draws a random wire pair and point.
func (g *Generator) NewState(r problem.Rand) problem.State {
	s := State{
		Current1: problem.Pick(r, direction.Normal()),
		Relative: direction.None,
	}
	if s.Current1.IsZAxis() {
		s.Relative = problem.Pick(r, direction.XYPlane())
	}
	s.Current2 = problem.Pick(r, SecondCurrents(s.Current1))
	s.Radius = problem.Pick(r, RadiusDirections(s.Current1, s.Relative))
	s.PX, s.PY = pointFor(s, r)
	return s
}

func pointFor(s State, r problem.Rand) (float64, float64) {
	rv := s.Radius.Vector()
	switch s.Current1.Axis() {
	case direction.AxisX:
		return r.Float64()*middle + 100, middle - rv[1]*offset
	case direction.AxisY:
		return middle + rv[0]*offset, r.Float64()*middle + 100
	default:
		return middle + rv[0]*offset, middle - rv[1]*offset
	}
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
	if err := problem.CheckDirection(ID, "currentDirection1", s.Current1, direction.Normal()); err != nil {
		return err
	}
	if err := problem.CheckDirection(ID, "currentDirection2", s.Current2, SecondCurrents(s.Current1)); err != nil {
		return err
	}
	relatives := []direction.Direction{direction.None}
	if s.Current1.IsZAxis() {
		relatives = direction.XYPlane()
	}
	if err := problem.CheckDirection(ID, "relCurrentDirection", s.Relative, relatives); err != nil {
		return err
	}
	if err := problem.CheckDirection(ID, "radiusDirection", s.Radius, RadiusDirections(s.Current1, s.Relative)); err != nil {
		return err
	}
	if err := problem.CheckRange(ID, "px", s.PX, MaxX(s.Current1)); err != nil {
		return err
	}
	return problem.CheckRange(ID, "py", s.PY, MaxY(s.Current1))
}

// Validate implements problem.Generator.
func (g *Generator) Validate(s problem.State) error {
	_, err := g.state(s)
	return err
}

// head is the direction from wire 1 towards wire 2.
func head(s State) direction.Direction {
	switch {
	case s.Current1.IsXAxis():
		return direction.Down
	case s.Current1.IsYAxis():
		return direction.Right
	case s.Relative.IsXAxis():
		return direction.Right
	default:
		return direction.Down
	}
}

// Radii returns the radius vector from each wire to the point, scaled by the
// inverse of its relative distance.
func Radii(s State) (vector.Vec, vector.Vec) {
	rv := s.Radius.Vector()
	third := vector.Scale(rv, 1.0/3)

	var r1, r2 vector.Vec
	switch s.Radius {
	case direction.None:
		h := head(s).Vector()
		return h, vector.Flip(h)
	case direction.Left, direction.Up:
		r1, r2 = rv, third
	default:
		r1, r2 = third, rv
	}
	return r1, r2
}

// Field returns the normalized superposed field at the point.
func Field(s State) vector.Vec {
	r1, r2 := Radii(s)
	b1 := vector.Cross(s.Current1.Vector(), r1)
	b2 := vector.Cross(s.Current2.Vector(), r2)
	return vector.Unit(vector.Add(b1, b2))
}

// Answer returns the direction of the net field.
func (g *Generator) Answer(s problem.State) (direction.Direction, error) {
	st, err := g.state(s)
	if err != nil {
		return direction.None, err
	}
	return problem.Resolve(ID, Field(st)), nil
}

// AnswerChoices implements problem.Generator.
func (g *Generator) AnswerChoices(s problem.State) ([]problem.AnswerChoice, error) {
	answer, err := g.Answer(s)
	if err != nil {
		return nil, err
	}
	return problem.BuildChoices(answer), nil
}

// Geometry lays out both wires and point P.
func (g *Generator) Geometry(s problem.State) (problem.Geometry, error) {
	st, err := g.state(s)
	if err != nil {
		return problem.Geometry{}, err
	}

	geo := problem.Geometry{
		Width:  size,
		Height: size,
		Points: []problem.Point{{Label: "P", X: st.PX, Y: st.PY}},
	}
	if st.Current1.IsZAxis() {
		geo.Wires = []problem.Wire{
			crossSection(st.Current1, st.Relative, wire1),
			crossSection(st.Current2, st.Relative, wire2),
		}
	} else {
		geo.Wires = []problem.Wire{
			problem.LineWire(st.Current1, wire1, size),
			problem.LineWire(st.Current2, wire2, size),
		}
	}
	return geo, nil
}

func crossSection(d, relative direction.Direction, other float64) problem.Wire {
	x, y := middle, middle
	if relative.IsXAxis() {
		x = other
	}
	if relative.IsYAxis() {
		y = other
	}
	return problem.CrossSectionWire(d, x, y)
}

// Enumerate returns every state NewState can produce, with the point placed
// at the centre of its random range. The point position never affects the
// answer, so this covers the whole answer space.
func Enumerate() []State {
	var out []State
	for _, c1 := range direction.Normal() {
		relatives := []direction.Direction{direction.None}
		if c1.IsZAxis() {
			relatives = direction.XYPlane()
		}
		for _, rel := range relatives {
			for _, c2 := range SecondCurrents(c1) {
				for _, rad := range RadiusDirections(c1, rel) {
					s := State{Current1: c1, Current2: c2, Relative: rel, Radius: rad}
					s.PX, s.PY = pointFor(s, midRand{})
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// midRand always lands in the middle of its range.
type midRand struct{}

func (midRand) IntN(n int) int   { return n / 2 }
func (midRand) Float64() float64 { return 0.5 }
