package quiz

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/games/particle"
	"github.com/abhisek/rhr/internal/games/wirefield"
	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/problem"
)

func newTestSession(t *testing.T, pool ...problem.Generator) *Session {
	t.Helper()
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s, err := New(pool,
		WithRand(rand.New(rand.NewPCG(4, 2))),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
		WithLogger(logging.Discard()),
	)
	require.NoError(t, err)
	return s
}

func wrongChoice(p *Problem) direction.Direction {
	for _, c := range p.Choices {
		if !c.Correct {
			return c.Direction
		}
	}
	panic("no wrong choice")
}

func TestNewServesFirstProblem(t *testing.T) {
	s := newTestSession(t, wirefield.New())
	require.NotNil(t, s.Current)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, s.Current.Number)
	assert.Equal(t, PhaseAnswering, s.Phase)
	assert.Equal(t, wirefield.ID, s.Current.Generator.ID())
	assert.Len(t, s.Current.Choices, direction.Count)
	assert.NoError(t, s.Current.Generator.Validate(s.Current.State))
}

func TestEmptyPoolUsesRegistry(t *testing.T) {
	s := newTestSession(t)
	assert.Len(t, s.Pool, len(games.All()))
}

func TestCorrectAnswerAdvances(t *testing.T) {
	s := newTestSession(t, particle.New())
	answer := s.Current.Answer()

	res, err := s.Answer(answer)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, answer, res.Answer)
	assert.Equal(t, PhaseFeedback, s.Phase)

	_, err = s.Answer(answer)
	assert.ErrorIs(t, err, ErrNotAnswering)

	require.NoError(t, s.Next())
	assert.Equal(t, 2, s.Current.Number)
	assert.Equal(t, PhaseAnswering, s.Phase)
	assert.Nil(t, s.LastResult)
}

func TestWrongAnswerKeepsProblem(t *testing.T) {
	s := newTestSession(t, particle.New())
	before := s.Current

	res, err := s.Answer(wrongChoice(s.Current))
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, direction.None, res.Answer, "wrong answer must not reveal the solution")

	require.NoError(t, s.Next())
	assert.Same(t, before, s.Current)
	assert.Equal(t, PhaseAnswering, s.Phase)

	res, err = s.Answer(s.Current.Answer())
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 2, s.Current.Attempts)
}

func TestNextWithoutFeedback(t *testing.T) {
	s := newTestSession(t, particle.New())
	assert.ErrorIs(t, s.Next(), ErrNoFeedback)
}

func TestSkip(t *testing.T) {
	s := newTestSession(t, wirefield.New())
	require.NoError(t, s.Skip())
	assert.Equal(t, 2, s.Current.Number)
	assert.Equal(t, 1, s.TotalSkipped)
	assert.Equal(t, 0, s.TotalAnswered)

	// Skip also works out of feedback.
	_, err := s.Answer(wrongChoice(s.Current))
	require.NoError(t, err)
	require.NoError(t, s.Skip())
	assert.Equal(t, PhaseAnswering, s.Phase)
	assert.Equal(t, 3, s.Current.Number)
}

func TestInvalidChoice(t *testing.T) {
	s := newTestSession(t, particle.New())
	_, err := s.Answer(direction.Direction(99))
	assert.Error(t, err)
	assert.Equal(t, PhaseAnswering, s.Phase)
}

func TestSetPool(t *testing.T) {
	s := newTestSession(t, particle.New())
	require.NoError(t, s.SetPool([]problem.Generator{wirefield.New()}))
	assert.Equal(t, wirefield.ID, s.Current.Generator.ID())
	assert.Equal(t, 2, s.Current.Number)
}

func TestSummary(t *testing.T) {
	s := newTestSession(t, particle.New(), wirefield.New())

	for range 6 {
		p := s.Current
		_, err := s.Answer(wrongChoice(p))
		require.NoError(t, err)
		require.NoError(t, s.Next())
		_, err = s.Answer(p.Answer())
		require.NoError(t, err)
		require.NoError(t, s.Next())
	}
	require.NoError(t, s.Skip())

	sum := s.Summary()
	assert.Equal(t, s.ID, sum.SessionID)
	assert.Equal(t, 12, sum.TotalAnswered)
	assert.Equal(t, 6, sum.TotalCorrect)
	assert.Equal(t, 1, sum.TotalSkipped)
	assert.Equal(t, 8, sum.Problems)
	assert.InDelta(t, 0.5, sum.Accuracy, 1e-9)
	assert.True(t, sum.Duration > 0)

	attempted, correct := 0, 0
	for _, tr := range sum.TypeResults {
		attempted += tr.Attempted
		correct += tr.Correct
		assert.NotEmpty(t, tr.Name)
	}
	assert.Equal(t, 12, attempted)
	assert.Equal(t, 6, correct)
}

func TestAccuracyWithNoAnswers(t *testing.T) {
	s := newTestSession(t, particle.New())
	assert.Equal(t, 0.0, s.Accuracy())
	assert.Empty(t, s.Summary().TypeResults)
}
