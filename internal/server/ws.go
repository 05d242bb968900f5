package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/abhisek/rhr/internal/diagram"
	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/quiz"
)

// Quiz message types sent by the server.
const (
	MsgProblem = "problem"
	MsgResult  = "result"
	MsgSummary = "summary"
	MsgError   = "error"
)

// ClientMessage is one request from a quiz client. Exactly one field is
// expected to be set.
type ClientMessage struct {
	Choice  string `json:"choice,omitempty"`
	Skip    bool   `json:"skip,omitempty"`
	Pool    string `json:"pool,omitempty"`
	Summary bool   `json:"summary,omitempty"`
}

// ServerMessage is one update pushed to a quiz client.
type ServerMessage struct {
	Type    string        `json:"type"`
	Problem *QuizProblem  `json:"problem,omitempty"`
	Result  *QuizResult   `json:"result,omitempty"`
	Summary *quiz.Summary `json:"summary,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// QuizProblem is a served problem without its answer.
type QuizProblem struct {
	Number      int              `json:"number"`
	ProblemType string           `json:"problemType"`
	Name        string           `json:"name"`
	Directions  string           `json:"directions"`
	Pool        []string         `json:"pool"`
	Geometry    problem.Geometry `json:"geometry"`
	SVG         string           `json:"svg"`
	Choices     []string         `json:"choices"`
}

// QuizResult reports a choice. Answer is only set when the choice was right.
type QuizResult struct {
	Correct  bool                 `json:"correct"`
	Picked   direction.Direction  `json:"picked"`
	Answer   *direction.Direction `json:"answer,omitempty"`
	Attempts int                  `json:"attempts"`
	Answered int                  `json:"answered"`
	Right    int                  `json:"right"`
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("s")
	if raw == "" {
		raw = s.defaultPool
	}
	ids, _ := games.ResolvePool(raw)

	session, err := quiz.New(games.Pool(ids), quiz.WithRand(s.rng), quiz.WithLogger(s.logger))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Error(r.Context(), "websocket accept", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	ctx := r.Context()
	s.logger.Info(ctx, "quiz connected", "session", session.ID, "pool", strings.Join(ids, ","))
	defer func() {
		s.logger.Info(ctx, "quiz disconnected", "session", session.ID,
			"answered", session.TotalAnswered, "correct", session.TotalCorrect)
	}()

	err = s.runQuiz(ctx, c, session)
	switch status := websocket.CloseStatus(err); {
	case err == nil:
		c.Close(websocket.StatusNormalClosure, "")
	case status == websocket.StatusNormalClosure, status == websocket.StatusGoingAway:
	default:
		if !errors.Is(err, context.Canceled) {
			s.logger.Warn(ctx, "quiz ended", "session", session.ID, "error", err)
		}
	}
}

// runQuiz drives one session until the client goes away.
func (s *Server) runQuiz(ctx context.Context, c *websocket.Conn, session *quiz.Session) error {
	if err := sendProblem(ctx, c, session); err != nil {
		return err
	}

	for {
		var msg ClientMessage
		if err := wsjson.Read(ctx, c, &msg); err != nil {
			return err
		}

		var err error
		switch {
		case msg.Pool != "":
			ids, _ := games.ResolvePool(msg.Pool)
			if err = session.SetPool(games.Pool(ids)); err == nil {
				err = sendProblem(ctx, c, session)
			}
		case msg.Skip:
			if err = session.Skip(); err == nil {
				err = sendProblem(ctx, c, session)
			}
		case msg.Summary:
			err = wsjson.Write(ctx, c, ServerMessage{Type: MsgSummary, Summary: session.Summary()})
		case msg.Choice != "":
			err = s.answer(ctx, c, session, msg.Choice)
		default:
			err = sendError(ctx, c, errors.New("empty message"))
		}
		if err != nil {
			return err
		}
	}
}

func (s *Server) answer(ctx context.Context, c *websocket.Conn, session *quiz.Session, choice string) error {
	picked, err := direction.Parse(choice)
	if err != nil {
		return sendError(ctx, c, err)
	}
	res, err := session.Answer(picked)
	if err != nil {
		return sendError(ctx, c, err)
	}

	out := &QuizResult{
		Correct:  res.Correct,
		Picked:   res.Picked,
		Attempts: session.Current.Attempts,
		Answered: session.TotalAnswered,
		Right:    session.TotalCorrect,
	}
	if res.Correct {
		answer := res.Answer
		out.Answer = &answer
	}
	if err := wsjson.Write(ctx, c, ServerMessage{Type: MsgResult, Result: out}); err != nil {
		return err
	}

	// The client has the feedback; dismiss it right away.
	if err := session.Next(); err != nil {
		return fmt.Errorf("advance quiz: %w", err)
	}
	if res.Correct {
		return sendProblem(ctx, c, session)
	}
	return nil
}

func sendProblem(ctx context.Context, c *websocket.Conn, session *quiz.Session) error {
	p := session.Current
	pool := make([]string, 0, len(session.Pool))
	for _, g := range session.Pool {
		pool = append(pool, g.ID())
	}
	return wsjson.Write(ctx, c, ServerMessage{
		Type: MsgProblem,
		Problem: &QuizProblem{
			Number:      p.Number,
			ProblemType: p.Generator.ID(),
			Name:        p.Generator.Name(),
			Directions:  p.Generator.Directions(),
			Pool:        pool,
			Geometry:    p.Geometry,
			SVG:         string(diagram.SVG(p.Geometry)),
			Choices:     choiceNames(),
		},
	})
}

func sendError(ctx context.Context, c *websocket.Conn, err error) error {
	return wsjson.Write(ctx, c, ServerMessage{Type: MsgError, Error: err.Error()})
}
