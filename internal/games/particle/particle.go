// Package particle generates problems asking for the magnetic force on a
// charged particle launched into a uniform field.
package particle

import (
	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/vector"
)

// ID is the registry identifier of this problem type.
const ID = "particle-launch"

const (
	panel          = 200.0
	panelCenter    = 100.0
	particleRadius = 10.0
	near           = 50.0
	far            = 150.0
)

// State is one particle-launch problem. Positive is the charge sign.
type State struct {
	Field    direction.Direction `json:"vectorFieldDirection"`
	Positive bool                `json:"particleCharge"`
	Velocity direction.Direction `json:"particleVelocity"`
}

// ProblemType implements problem.State.
func (State) ProblemType() string { return ID }

// Generator implements problem.Generator for launched particles.
type Generator struct {
	problem.Info
}

// New returns the particle-launch generator.
func New() *Generator {
	return &Generator{Info: problem.Info{
		IDValue:          ID,
		NameValue:        "Particle Launch",
		DescriptionValue: "Determine the direction of magnetic force of a particle launched into a magnetic field.",
		DirectionsValue: `A particle is being launched with velocity \(v\) towards a ` +
			`magnetic field labeled \(\mathbf{\vec{B}}\). Select the ` +
			`direction of magnetic force the particle will experience when ` +
			`initially entering the magnetic field.`,
	}}
}

// NewState draws a random field, charge and velocity. The field may be None,
// in which case there is no force.
func (g *Generator) NewState(r problem.Rand) problem.State {
	return State{
		Field:    problem.Pick(r, direction.All()),
		Positive: r.Float64() > 0.5,
		Velocity: problem.Pick(r, direction.XYPlane()),
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
	if err := problem.CheckDirection(ID, "vectorFieldDirection", st.Field, direction.All()); err != nil {
		return st, err
	}
	return st, problem.CheckDirection(ID, "particleVelocity", st.Velocity, direction.XYPlane())
}

// Validate implements problem.Generator.
func (g *Generator) Validate(s problem.State) error {
	_, err := g.state(s)
	return err
}

// Force returns q·v × B with |q| = 1.
func Force(s State) vector.Vec {
	v := s.Velocity
	if !s.Positive {
		v = v.Opposite()
	}
	return vector.Cross(v.Vector(), s.Field.Vector())
}

// Answer returns the direction of the magnetic force.
func (g *Generator) Answer(s problem.State) (direction.Direction, error) {
	st, err := g.state(s)
	if err != nil {
		return direction.None, err
	}
	return problem.Resolve(ID, Force(st)), nil
}

// AnswerChoices implements problem.Generator.
func (g *Generator) AnswerChoices(s problem.State) ([]problem.AnswerChoice, error) {
	answer, err := g.Answer(s)
	if err != nil {
		return nil, err
	}
	return problem.BuildChoices(answer), nil
}

// Geometry places the field panel and the particle panel side by side along
// the velocity, with the particle heading into the field.
func (g *Generator) Geometry(s problem.State) (problem.Geometry, error) {
	st, err := g.state(s)
	if err != nil {
		return problem.Geometry{}, err
	}

	v := st.Velocity
	vertical := v.IsYAxis()

	geo := problem.Geometry{Width: 2 * panel, Height: panel}
	if vertical {
		geo.Width, geo.Height = panel, 2*panel
	}

	// The field panel is ahead of the particle, the particle panel behind.
	var fieldX, fieldY, partX, partY float64
	switch v {
	case direction.Right:
		fieldX = panel
	case direction.Left:
		partX = panel
	case direction.Down:
		fieldY = panel
	case direction.Up:
		partY = panel
	}
	geo.Field = &problem.Field{Direction: st.Field, X: fieldX, Y: fieldY, Size: panel}

	// The particle sits at the back of its panel and the velocity arrow
	// points from the panel centre towards the field.
	cx, cy := panelCenter, panelCenter
	ex, ey := panelCenter, panelCenter
	switch v {
	case direction.Right:
		cx, ex = near, far
	case direction.Left:
		cx, ex = far, near
	case direction.Down:
		cy, ey = near, far
	case direction.Up:
		cy, ey = far, near
	}

	p := &problem.Particle{
		X:        partX + cx,
		Y:        partY + cy,
		R:        particleRadius,
		Positive: st.Positive,
		Velocity: v,
		ArrowX1:  partX + panelCenter,
		ArrowY1:  partY + panelCenter,
		ArrowX2:  partX + ex,
		ArrowY2:  partY + ey,
	}
	mx, my := (p.ArrowX1+p.ArrowX2)/2, (p.ArrowY1+p.ArrowY2)/2
	if vertical {
		p.LabelX, p.LabelY = mx+12, my
	} else {
		p.LabelX, p.LabelY = mx, my+18
	}
	geo.Particle = p
	return geo, nil
}
