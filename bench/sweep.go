package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/sorttrace"
)

// SweepOption customises a sweep.
type SweepOption func(*sweepOptions)

type sweepOptions struct {
	progress func(done, total int)
	now      func() time.Time
}

// WithProgress registers fn to be called after every measured run with the
// number of runs done and the total planned.
func WithProgress(fn func(done, total int)) SweepOption {
	if fn == nil {
		panic("bench: WithProgress(nil)")
	}
	return func(o *sweepOptions) { o.progress = fn }
}

// WithClock replaces time.Now for timing runs.
func WithClock(now func() time.Time) SweepOption {
	if now == nil {
		panic("bench: WithClock(nil)")
	}
	return func(o *sweepOptions) { o.now = now }
}

// Sweep measures every configured algorithm at every size of
// SizeList(MinN, MaxN, Points). ctx is checked before each run; on
// cancellation the completed rows are returned with Partial set together
// with the context error.
func Sweep(ctx context.Context, cfg SweepConfig, opts ...SweepOption) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := sweepOptions{progress: func(int, int) {}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	entries := make([]sorttrace.Entry, len(cfg.Algorithms))
	for i, key := range cfg.Algorithms {
		e, err := sorttrace.Lookup(key)
		if err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
		entries[i] = e
	}

	sizes := SizeList(cfg.MinN, cfg.MaxN, cfg.Points)
	rep := &Report{Config: cfg, Sizes: sizes, Rows: make([]Row, 0, len(sizes))}
	total := len(sizes) * len(entries) * cfg.Trials
	done := 0

	cs := make([]float64, cfg.Trials)
	ws := make([]float64, cfg.Trials)
	ts := make([]float64, cfg.Trials)
	for _, n := range sizes {
		row := Row{N: n, Cells: make([]Cell, 0, len(entries))}
		for _, e := range entries {
			for t := 0; t < cfg.Trials; t++ {
				if err := ctx.Err(); err != nil {
					rep.Partial = true
					return rep, fmt.Errorf("bench: sweep interrupted at n=%d: %w", n, err)
				}
				arr := arraygen.MakeArray(n, cfg.Kind, trialSeed(cfg.Seed, t, n))
				start := o.now()
				m := e.Measure(arr)
				ts[t] = float64(o.now().Sub(start)) / float64(time.Millisecond)
				cs[t] = float64(m.Comparisons)
				ws[t] = float64(m.Writes)
				done++
				o.progress(done, total)
			}
			row.Cells = append(row.Cells, Cell{
				Algorithm:   e.Key,
				Comparisons: Summarize(cs),
				Writes:      Summarize(ws),
				RuntimeMs:   Summarize(ts),
			})
		}
		rep.Rows = append(rep.Rows, row)
	}
	rep.Growth = growth(rep)

	return rep, nil
}

// trialSeed derives the input seed of one trial.
func trialSeed(seed int64, trial, n int) int64 {
	return seed + int64(trial)*101 + int64(n)*17
}

// growth fits comparisons and writes for every algorithm; algorithms whose
// counts cannot be fitted (e.g. zero comparisons) get a zero Fit.
func growth(r *Report) []Growth {
	if len(r.Sizes) < 2 {
		return nil
	}
	out := make([]Growth, 0, len(r.Config.Algorithms))
	for _, key := range r.Config.Algorithms {
		g := Growth{Algorithm: key}
		ns, ys := r.Series(key, Comparisons)
		g.Comparisons, _ = FitPower(ns, ys)
		ns, ys = r.Series(key, Writes)
		g.Writes, _ = FitPower(ns, ys)
		out = append(out, g)
	}

	return out
}
