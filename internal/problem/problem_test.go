package problem

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/vector"
)

func TestBuildChoices(t *testing.T) {
	for _, answer := range direction.All() {
		choices := BuildChoices(answer)
		require.Len(t, choices, direction.Count)

		correct := 0
		for i, c := range choices {
			assert.Equal(t, direction.All()[i], c.Direction)
			if c.Correct {
				correct++
				assert.Equal(t, answer, c.Direction)
			}
		}
		assert.Equal(t, 1, correct, "exactly one correct choice for %s", answer)

		got, ok := CorrectDirection(choices)
		require.True(t, ok)
		assert.Equal(t, answer, got)
	}
}

func TestCheckChoice(t *testing.T) {
	choices := BuildChoices(direction.Up)
	assert.True(t, CheckChoice(choices, direction.Up))
	assert.False(t, CheckChoice(choices, direction.Down))
	assert.False(t, CheckChoice(choices, direction.None))
	assert.False(t, CheckChoice(nil, direction.Up))
}

func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	var buf bytes.Buffer
	logging.SetDefault(logging.New(logging.Options{Level: slog.LevelWarn, Output: &buf}))
	return &buf
}

func TestResolve(t *testing.T) {
	buf := captureWarnings(t)
	assert.Equal(t, direction.Up, Resolve("t", vector.Vec{0, 1, 0}))
	assert.Equal(t, direction.None, Resolve("t", vector.Zero))
	assert.Empty(t, buf.String())
}

func TestResolveDriftLogsWarning(t *testing.T) {
	buf := captureWarnings(t)
	assert.Equal(t, direction.Left, Resolve("dual-wire-fields", vector.Vec{-1 + 1e-12, 0, 0}))
	assert.Contains(t, buf.String(), "drifted")
	assert.Contains(t, buf.String(), "dual-wire-fields")
}

func TestResolveFallbackLogsWarning(t *testing.T) {
	buf := captureWarnings(t)

	got := Resolve("wire-field", vector.Vec{1, 1, 0})
	assert.Equal(t, direction.None, got)
	assert.Contains(t, buf.String(), "no canonical direction")
	assert.Contains(t, buf.String(), "wire-field")
}

func TestCheckDirection(t *testing.T) {
	require.NoError(t, CheckDirection("p", "velocity", direction.Left, direction.XYPlane()))

	err := CheckDirection("p", "velocity", direction.IntoPage, direction.XYPlane())
	var invalid *InvalidStateError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "velocity", invalid.Field)
	assert.Equal(t, "p", invalid.ProblemType)

	require.Error(t, CheckDirection("p", "velocity", direction.Direction(42), direction.All()))
}

func TestCheckRangeAndClamp(t *testing.T) {
	assert.NoError(t, CheckRange("p", "x", 0, 200))
	assert.NoError(t, CheckRange("p", "x", 200, 200))
	assert.Error(t, CheckRange("p", "x", -0.5, 200))
	assert.Error(t, CheckRange("p", "x", 200.1, 200))
	assert.Error(t, CheckRange("p", "x", math.NaN(), 200))

	assert.Equal(t, 0.0, Clamp(-10, 200))
	assert.Equal(t, 200.0, Clamp(900, 200))
	assert.Equal(t, 42.0, Clamp(42, 200))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 200))
}

func TestPickCoversAllChoices(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := map[direction.Direction]bool{}
	for range 200 {
		seen[Pick(r, direction.XYPlane())] = true
	}
	assert.Len(t, seen, 4)
}

func TestFieldMarks(t *testing.T) {
	f := Field{Size: 200}
	assert.Equal(t, []float64{25, 75, 125, 175}, f.Marks())
}

func TestInfoMetadata(t *testing.T) {
	i := Info{IDValue: "id", NameValue: "n", DescriptionValue: "d", DirectionsValue: "dir"}
	assert.Equal(t, "id", i.ID())
	assert.Equal(t, "n", i.Name())
	assert.Equal(t, "d", i.Description())
	assert.Equal(t, "dir", i.Directions())
}
