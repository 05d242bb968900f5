package dualwire

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/vector"
)

func TestEnumerationCoversReachableTuples(t *testing.T) {
	states := Enumerate()
	// 4 in-page currents1 * 2 currents2 * 3 radii, plus
	// 2 z currents1 * 4 relatives * 2 currents2 * 3 radii.
	assert.Len(t, states, 4*2*3+2*4*2*3)

	g := New()
	for _, s := range states {
		require.NoError(t, g.Validate(s), "%+v", s)
	}
}

func TestEverySuperpositionMatchesCanonicalDirection(t *testing.T) {
	prev := logging.Default()
	defer logging.SetDefault(prev)
	var buf bytes.Buffer
	logging.SetDefault(logging.New(logging.Options{Level: slog.LevelWarn, Output: &buf}))

	g := New()
	for _, s := range Enumerate() {
		field := Field(s)
		d, ok := direction.FromVector(field)
		require.True(t, ok, "field %v of %+v is not exactly a table vector", field, s)

		got, err := g.Answer(s)
		require.NoError(t, err)
		assert.Equal(t, d, got)

		choices, err := g.AnswerChoices(s)
		require.NoError(t, err)
		n := 0
		for _, c := range choices {
			if c.Correct {
				n++
			}
		}
		assert.Equal(t, 1, n)
	}
	assert.Empty(t, buf.String(), "fallback warning logged")
}

func TestAnswerScenarios(t *testing.T) {
	g := New()
	tests := []struct {
		name string
		s    State
		want direction.Direction
	}{
		{
			"antiparallel out-of-page midway add up",
			State{Current1: direction.OutOfPage, Current2: direction.IntoPage, Relative: direction.Right, Radius: direction.None, PX: 200, PY: 200},
			direction.Up,
		},
		{
			"parallel midway cancel",
			State{Current1: direction.OutOfPage, Current2: direction.OutOfPage, Relative: direction.Left, Radius: direction.None, PX: 200, PY: 200},
			direction.None,
		},
		{
			"nearer wire dominates",
			State{Current1: direction.OutOfPage, Current2: direction.IntoPage, Relative: direction.Right, Radius: direction.Left, PX: 50, PY: 200},
			direction.Down,
		},
		{
			"parallel horizontal wires above the pair",
			State{Current1: direction.Right, Current2: direction.Right, Relative: direction.None, Radius: direction.Up, PX: 200, PY: 50},
			direction.OutOfPage,
		},
		{
			"parallel vertical wires midway cancel",
			State{Current1: direction.Up, Current2: direction.Up, Relative: direction.None, Radius: direction.None, PX: 200, PY: 200},
			direction.None,
		},
		{
			"antiparallel vertical wires midway",
			State{Current1: direction.Up, Current2: direction.Down, Relative: direction.None, Radius: direction.None, PX: 200, PY: 200},
			direction.IntoPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Answer(tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRadii(t *testing.T) {
	s := State{Current1: direction.Right, Current2: direction.Left, Relative: direction.None, Radius: direction.Down}
	r1, r2 := Radii(s)
	assert.True(t, vector.ApproxEqual(vector.Vec{0, -1.0 / 3, 0}, r1, 1e-12))
	assert.Equal(t, vector.Vec{0, -1, 0}, r2)

	s.Radius = direction.None
	r1, r2 = Radii(s)
	assert.Equal(t, direction.Down.Vector(), r1)
	assert.Equal(t, direction.Up.Vector(), r2)
}

func TestNewStateStaysInDomain(t *testing.T) {
	g := New()
	r := rand.New(rand.NewPCG(3, 5))
	sawZ := false

	for range 1000 {
		s := g.NewState(r).(State)
		require.NoError(t, g.Validate(s), "%+v", s)
		assert.Equal(t, s.Current1.Axis(), s.Current2.Axis())
		if s.Current1.IsZAxis() {
			sawZ = true
			assert.NotEqual(t, direction.None, s.Relative)
			if s.Radius != direction.None {
				assert.Equal(t, s.Relative.Axis(), s.Radius.Axis())
			}
		} else {
			assert.Equal(t, direction.None, s.Relative)
		}
	}
	assert.True(t, sawZ)
}

func TestGeometry(t *testing.T) {
	g := New()

	geo, err := g.Geometry(State{Current1: direction.IntoPage, Current2: direction.OutOfPage, Relative: direction.Up, Radius: direction.None, PX: 200, PY: 200})
	require.NoError(t, err)
	assert.Equal(t, 400.0, geo.Width)
	assert.Equal(t, 400.0, geo.Height)
	require.Len(t, geo.Wires, 2)
	assert.Equal(t, problem.WireCrossSection, geo.Wires[0].Kind)
	assert.Equal(t, [2]float64{200, 125}, [2]float64{geo.Wires[0].CX, geo.Wires[0].CY})
	assert.Equal(t, [2]float64{200, 275}, [2]float64{geo.Wires[1].CX, geo.Wires[1].CY})
	assert.Equal(t, direction.OutOfPage, geo.Wires[1].Current)

	geo, err = g.Geometry(State{Current1: direction.Up, Current2: direction.Down, Relative: direction.None, Radius: direction.Right, PX: 350, PY: 150})
	require.NoError(t, err)
	require.Len(t, geo.Wires, 2)
	assert.Equal(t, problem.WireLine, geo.Wires[0].Kind)
	assert.Equal(t, 125.0, geo.Wires[0].X1)
	assert.Equal(t, 400.0, geo.Wires[0].Y1)
	assert.Equal(t, 275.0, geo.Wires[1].X1)
	assert.Equal(t, 0.0, geo.Wires[1].Y1)
}

func TestValidateRejectsMixedAxes(t *testing.T) {
	g := New()
	assert.Error(t, g.Validate(State{Current1: direction.Right, Current2: direction.Up, Relative: direction.None, Radius: direction.None}))
	assert.Error(t, g.Validate(State{Current1: direction.Right, Current2: direction.Right, Relative: direction.Up, Radius: direction.None}))
	assert.Error(t, g.Validate(State{Current1: direction.IntoPage, Current2: direction.IntoPage, Relative: direction.None, Radius: direction.None}))
	assert.Error(t, g.Validate(State{Current1: direction.IntoPage, Current2: direction.IntoPage, Relative: direction.Left, Radius: direction.Up}))
	assert.Error(t, g.Validate(State{Current1: direction.Right, Current2: direction.Left, Relative: direction.None, Radius: direction.Left}))
}

func TestClampPoint(t *testing.T) {
	s := ClampPoint(State{PX: 401, PY: -1})
	assert.Equal(t, 400.0, s.PX)
	assert.Equal(t, 0.0, s.PY)
}
