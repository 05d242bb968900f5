package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/abhisek/rhr/internal/diagram"
	"github.com/abhisek/rhr/internal/direction"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/statecodec"
)

const maxBodyBytes = 1 << 16

// ProblemInfo describes a registered problem type.
type ProblemInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Directions  string   `json:"directions"`
	Choices     []string `json:"choices"`
}

// PoolResponse is the normalized pool for a query string value.
type PoolResponse struct {
	Pool    []string `json:"pool"`
	Changed bool     `json:"changed"`
	Query   string   `json:"query"`
}

// NewProblemResponse carries a fresh problem without its answer.
type NewProblemResponse struct {
	Type     string           `json:"type"`
	State    json.RawMessage  `json:"state"`
	Geometry problem.Geometry `json:"geometry"`
	Choices  []string         `json:"choices"`
}

// AnswerRequest is a learner's choice for a given state.
type AnswerRequest struct {
	State  json.RawMessage `json:"state"`
	Choice string          `json:"choice"`
}

// AnswerResponse grades an AnswerRequest.
type AnswerResponse struct {
	Correct bool                `json:"correct"`
	Answer  direction.Direction `json:"answer"`
}

func choiceNames() []string {
	names := make([]string, 0, direction.Count)
	for _, d := range direction.All() {
		names = append(names, d.String())
	}
	return names
}

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	var out []ProblemInfo
	for _, g := range games.All() {
		out = append(out, ProblemInfo{
			ID:          g.ID(),
			Name:        g.Name(),
			Description: g.Description(),
			Directions:  g.Directions(),
			Choices:     choiceNames(),
		})
	}
	jsonResponse(w, http.StatusOK, out)
}

func (s *Server) handlePool(w http.ResponseWriter, r *http.Request) {
	ids, changed := games.ResolvePool(r.URL.Query().Get("s"))
	jsonResponse(w, http.StatusOK, PoolResponse{
		Pool:    ids,
		Changed: changed,
		Query:   "s=" + strings.Join(ids, ","),
	})
}

func (s *Server) handleNewProblem(w http.ResponseWriter, r *http.Request) {
	g, err := games.Lookup(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	st := g.NewState(s.rng)
	geo, err := g.Geometry(st)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	body, err := json.Marshal(st)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.logger.Debug(r.Context(), "problem generated", "problem", g.ID())
	jsonResponse(w, http.StatusOK, NewProblemResponse{
		Type:     g.ID(),
		State:    body,
		Geometry: geo,
		Choices:  choiceNames(),
	})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req AnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	picked, err := direction.Parse(req.Choice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, st, err := lookupState(id, req.State)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	answer, err := g.Answer(st)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	correct := picked == answer
	s.logger.Debug(r.Context(), "answer graded", "problem", id, "picked", picked.String(), "correct", correct)
	jsonResponse(w, http.StatusOK, AnswerResponse{Correct: correct, Answer: answer})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	g, st, err := lookupState(id, raw)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	geo, err := g.Geometry(st)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(diagram.SVG(geo))
	case "png":
		w.Header().Set("Content-Type", "image/png")
		if err := diagram.WritePNG(w, geo, diagram.DefaultScale); err != nil {
			s.logger.Error(r.Context(), "render png", err, "problem", id)
		}
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, diagram.Text(geo))
	case "json":
		jsonResponse(w, http.StatusOK, geo)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", format))
	}
}

func (s *Server) handleChoiceIcon(w http.ResponseWriter, r *http.Request) {
	d, err := direction.Parse(mux.Vars(r)["direction"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(diagram.ChoiceIcon(d))
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parse request body: %w", err)
	}
	return nil
}

// lookupState resolves the generator for id and decodes raw as its state.
func lookupState(id string, raw json.RawMessage) (problem.Generator, problem.State, error) {
	g, err := games.Lookup(id)
	if err != nil {
		return nil, nil, err
	}
	if len(raw) == 0 {
		return nil, nil, &statecodec.InvalidError{Type: id, Err: errors.New("missing state")}
	}
	st, err := statecodec.DecodeState(id, raw)
	if err != nil {
		return nil, nil, err
	}
	return g, st, nil
}
