package server

import (
	"context"
	"math/rand/v2"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games/particle"
	"github.com/abhisek/rhr/internal/games/wirefield"
	"github.com/abhisek/rhr/internal/logging"
)

func dialQuiz(t *testing.T, ts *httptest.Server, query string) (context.Context, *websocket.Conn) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/quiz" + query
	c, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close(websocket.StatusNormalClosure, "") })
	return ctx, c
}

func send(t *testing.T, ctx context.Context, c *websocket.Conn, msg ClientMessage) {
	t.Helper()
	require.NoError(t, wsjson.Write(ctx, c, msg))
}

func receive(t *testing.T, ctx context.Context, c *websocket.Conn, want string) ServerMessage {
	t.Helper()
	var msg ServerMessage
	require.NoError(t, wsjson.Read(ctx, c, &msg))
	require.Equal(t, want, msg.Type, "error: %s", msg.Error)
	return msg
}

func TestQuizFlow(t *testing.T) {
	ts := newTestServer(t)
	ctx, c := dialQuiz(t, ts, "?s="+particle.ID)

	first := receive(t, ctx, c, MsgProblem)
	require.NotNil(t, first.Problem)
	assert.Equal(t, 1, first.Problem.Number)
	assert.Equal(t, particle.ID, first.Problem.ProblemType)
	assert.Equal(t, []string{particle.ID}, first.Problem.Pool)
	assert.Contains(t, first.Problem.SVG, "<svg")
	assert.Len(t, first.Problem.Choices, direction.Count)

	// Wrong choices leave the problem up, so walking every direction must
	// hit the answer.
	solved := false
	for i, d := range direction.All() {
		send(t, ctx, c, ClientMessage{Choice: d.String()})
		res := receive(t, ctx, c, MsgResult).Result
		require.NotNil(t, res)
		assert.Equal(t, d, res.Picked)
		assert.Equal(t, i+1, res.Attempts)
		if !res.Correct {
			assert.Nil(t, res.Answer, "wrong choice must not reveal the answer")
			continue
		}
		require.NotNil(t, res.Answer)
		assert.Equal(t, d, *res.Answer)
		solved = true
		break
	}
	require.True(t, solved)

	next := receive(t, ctx, c, MsgProblem)
	assert.Equal(t, 2, next.Problem.Number)

	send(t, ctx, c, ClientMessage{Skip: true})
	assert.Equal(t, 3, receive(t, ctx, c, MsgProblem).Problem.Number)

	send(t, ctx, c, ClientMessage{Summary: true})
	sum := receive(t, ctx, c, MsgSummary).Summary
	require.NotNil(t, sum)
	assert.Equal(t, 1, sum.TotalCorrect)
	assert.Equal(t, 1, sum.TotalSkipped)
	assert.Equal(t, 3, sum.Problems)

	send(t, ctx, c, ClientMessage{Pool: wirefield.ID})
	switched := receive(t, ctx, c, MsgProblem)
	assert.Equal(t, wirefield.ID, switched.Problem.ProblemType)
	assert.Equal(t, 4, switched.Problem.Number)
}

func TestQuizRejectsBadMessages(t *testing.T) {
	ts := newTestServer(t)
	ctx, c := dialQuiz(t, ts, "")
	receive(t, ctx, c, MsgProblem)

	send(t, ctx, c, ClientMessage{Choice: "sideways"})
	assert.Contains(t, receive(t, ctx, c, MsgError).Error, "sideways")

	send(t, ctx, c, ClientMessage{})
	assert.Equal(t, "empty message", receive(t, ctx, c, MsgError).Error)

	// The session is still usable.
	send(t, ctx, c, ClientMessage{Skip: true})
	assert.Equal(t, 2, receive(t, ctx, c, MsgProblem).Problem.Number)
}

func TestQuizDefaultPool(t *testing.T) {
	srv := New(Options{
		Logger:      logging.Discard(),
		Rand:        rand.New(rand.NewPCG(3, 4)),
		DefaultPool: wirefield.ID,
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	ctx, c := dialQuiz(t, ts, "")
	msg := receive(t, ctx, c, MsgProblem)
	assert.Equal(t, wirefield.ID, msg.Problem.ProblemType)
}
