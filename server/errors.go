package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/bench"
	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathtrace"
	"github.com/katalvlaran/algoviz/sorttrace"
)

var (
	errBadRequest = errors.New("bad request")
	errNotFound   = errors.New("not found")
	errInternal   = errors.New("internal error")
)

// badRequest lists engine errors caused by caller input.
var badRequest = []error{
	errBadRequest,
	arraygen.ErrUnknownKind,
	grid.ErrUnknownHeuristic,
	bench.ErrNoAlgorithms,
	bench.ErrBadRange,
	bench.ErrBadTrials,
	bench.ErrUnknownMetric,
	bench.ErrUnknownFormat,
	pathtrace.ErrOutOfBounds,
	pathtrace.ErrBlockedEndpoint,
	pathtrace.ErrWeightsMismatch,
	pathtrace.ErrOptionViolation,
}

// statusCode maps err onto an HTTP status. Bad-request causes win over
// not-found so a sweep naming an unknown sort is a 400, not a 404.
func statusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	if errors.Is(err, errNotFound) ||
		errors.Is(err, sorttrace.ErrUnknownAlgorithm) ||
		errors.Is(err, pathtrace.ErrUnknownAlgorithm) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, statusCode(err), errorBody{
		Error:     err.Error(),
		RequestID: chimid.GetReqID(r.Context()),
	})
}

// writeJSON encodes v fully before touching w, so an encoding failure never
// leaves a half-written body behind a 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, `{"error":"encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
