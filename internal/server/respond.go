package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/statecodec"
)

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	jsonResponse(w, status, errorBody{Error: err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var invalid *statecodec.InvalidError
	var stateErr *problem.InvalidStateError
	switch {
	case errors.Is(err, games.ErrUnknownGenerator), errors.Is(err, statecodec.ErrUnknownType):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &stateErr), errors.Is(err, problem.ErrStateMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
