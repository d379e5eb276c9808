package server

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/bench"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathtrace"
	"github.com/katalvlaran/algoviz/prng"
	"github.com/katalvlaran/algoviz/sorttrace"
)

// Query defaults, matching the explorer's initial controls.
const (
	defaultN    = 32
	defaultRows = 21
	defaultCols = 31
	defaultSeed = 1
)

const (
	modeMaze = "maze"
	modeOpen = "open"
)

var contentTypes = map[string]string{
	"csv":   "text/csv; charset=utf-8",
	"json":  "application/json",
	"yaml":  "application/yaml",
	"yml":   "application/yaml",
	"table": "text/plain; charset=utf-8",
	"xlsx":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type handlers struct {
	cfg config.Config
	log *slog.Logger
	now func() time.Time
	// sweeps bounds concurrent sweeps; waiters give up with their request.
	sweeps *semaphore.Weighted
}

func (h *handlers) elapsedMs(start time.Time) float64 {
	return float64(h.now().Sub(start)) / float64(time.Millisecond)
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) sortAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, sorttrace.Registry())
}

func (h *handlers) pathAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pathtrace.Registry())
}

// SortResponse is the body of GET /v1/sort/{algo}.
type SortResponse struct {
	Algorithm string        `json:"algorithm"`
	Label     string        `json:"label"`
	N         int           `json:"n"`
	Kind      arraygen.Kind `json:"kind"`
	Seed      int64         `json:"seed"`
	Input     []float64     `json:"input"`
	*sorttrace.Result
	TimeMs float64 `json:"timeMs"`
}

func (h *handlers) sortTrace(w http.ResponseWriter, r *http.Request) {
	e, err := sorttrace.Lookup(chi.URLParam(r, "algo"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := newQuery(r)
	n := q.intIn("n", defaultN, 0, h.cfg.Server.Limits.MaxN)
	kind := q.kind("kind", arraygen.Random)
	seed := q.int64("seed", defaultSeed)
	if q.err != nil {
		writeError(w, r, q.err)
		return
	}

	input := arraygen.MakeArray(n, kind, seed)
	start := h.now()
	res := e.Fn(input)
	writeJSON(w, http.StatusOK, SortResponse{
		Algorithm: e.Key,
		Label:     e.Label,
		N:         n,
		Kind:      kind,
		Seed:      seed,
		Input:     input,
		Result:    res,
		TimeMs:    h.elapsedMs(start),
	})
}

// PathResponse is the body of GET /v1/path/{algo}.
type PathResponse struct {
	Algorithm string        `json:"algorithm"`
	Label     string        `json:"label"`
	Mode      string        `json:"mode"`
	Seed      int64         `json:"seed"`
	Grid      *grid.Grid    `json:"grid"`
	Weights   *grid.Weights `json:"weights,omitempty"`
	Start     grid.Pos      `json:"start"`
	Goal      grid.Pos      `json:"goal"`
	*pathtrace.Result
	TimeMs float64 `json:"timeMs"`
}

func (h *handlers) pathTrace(w http.ResponseWriter, r *http.Request) {
	e, err := pathtrace.Lookup(chi.URLParam(r, "algo"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	lim := h.cfg.Server.Limits
	q := newQuery(r)
	mode := q.oneOf("mode", modeMaze, modeMaze, modeOpen)
	rows := q.intIn("rows", defaultRows, 3, lim.MaxRows)
	cols := q.intIn("cols", defaultCols, 3, lim.MaxCols)
	seed := q.int64("seed", defaultSeed)
	density := q.floatIn("density", 0, 0, 1)
	braid := q.floatIn("braid", 0, 0, 1)
	weighted := q.boolean("weights", false)
	diagonal := q.boolean("diagonal", false)
	heur := q.heuristic("heuristic", grid.Manhattan)
	randomTies := q.boolean("randomTies", false)
	if q.err != nil {
		writeError(w, r, q.err)
		return
	}

	var g *grid.Grid
	if mode == modeOpen {
		g = grid.BuildOpenGrid(rows, cols, seed, density)
	} else {
		g = grid.BuildMaze(rows, cols, seed, braid)
	}
	weights := grid.BuildWeights(g, seed, weighted)

	start := h.now()
	res, err := e.Fn(g, g.Start(), g.Goal(),
		pathtrace.WithDiagonals(diagonal),
		pathtrace.WithHeuristic(heur),
		pathtrace.WithWeights(weights),
		pathtrace.WithRand(prng.ForAlgorithm(seed)),
		pathtrace.WithRandomTies(randomTies),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PathResponse{
		Algorithm: e.Key,
		Label:     e.Label,
		Mode:      mode,
		Seed:      seed,
		Grid:      g,
		Weights:   weights,
		Start:     g.Start(),
		Goal:      g.Goal(),
		Result:    res,
		TimeMs:    h.elapsedMs(start),
	})
}

func (h *handlers) sweep(w http.ResponseWriter, r *http.Request) {
	lim := h.cfg.Server.Limits
	cfg := h.cfg.Sweep.SweepConfig
	q := newQuery(r)
	cfg.Algorithms = q.list("algos", cfg.Algorithms)
	cfg.Kind = q.kind("kind", cfg.Kind)
	cfg.MinN = q.intIn("minN", cfg.MinN, 1, lim.MaxSweepN)
	cfg.MaxN = q.intIn("maxN", cfg.MaxN, 1, lim.MaxSweepN)
	cfg.Points = q.intIn("points", cfg.Points, 1, lim.MaxPoints)
	cfg.Trials = q.intIn("trials", cfg.Trials, 1, lim.MaxTrials)
	cfg.Seed = q.int64("seed", cfg.Seed)
	format := q.oneOf("format", "json", "json", "csv", "yaml", "yml", "table", "xlsx")
	metric := q.metric("metric", h.cfg.Sweep.Metric)
	if q.err != nil {
		writeError(w, r, q.err)
		return
	}
	for _, key := range cfg.Algorithms {
		if _, err := sorttrace.Lookup(key); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
	}
	rnd, err := bench.NewRenderer(format, metric)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	if err := h.sweeps.Acquire(ctx, 1); err != nil {
		writeError(w, r, err)
		return
	}
	defer h.sweeps.Release(1)
	if budget := h.cfg.Server.WriteTimeout * 4 / 5; budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}
	rep, err := bench.Sweep(ctx, cfg)
	if err != nil {
		if rep != nil && rep.Partial {
			h.log.Warn("sweep interrupted", slog.Int("rows", len(rep.Rows)), slog.Int("sizes", len(rep.Sizes)))
		}
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := rnd.Write(&buf, rep); err != nil {
		writeError(w, r, fmt.Errorf("%w: render: %w", errInternal, err))
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
