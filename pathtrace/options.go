package pathtrace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/prng"
)

// Options configures a search.
type Options struct {
	// Dirs is the neighbour offset set, normally grid.Dirs4 or grid.Dirs8.
	Dirs []grid.Offset
	// Rand feeds neighbour shuffling when RandomTies is set.
	Rand *prng.Mulberry32
	// RandomTies reshuffles the neighbour order before every expansion.
	RandomTies bool
	// Weights holds per-cell entry costs; nil means uniform cost 1.
	Weights *grid.Weights
	// Heuristic is used by A* and Greedy Best-First.
	Heuristic grid.Heuristic

	// err records the first invalid option.
	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns 4-way movement, no randomness, uniform costs and
// the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Dirs:      grid.Dirs4(),
		Heuristic: grid.Manhattan,
	}
}

// WithDiagonals switches between 4-way (false) and 8-way (true) movement.
func WithDiagonals(on bool) Option {
	return func(o *Options) {
		if on {
			o.Dirs = grid.Dirs8()
		} else {
			o.Dirs = grid.Dirs4()
		}
	}
}

// WithDirs sets a custom neighbour offset set. Every offset must move to
// one of the eight adjacent cells.
func WithDirs(dirs []grid.Offset) Option {
	return func(o *Options) {
		if len(dirs) == 0 {
			o.fail(fmt.Errorf("%w: empty direction set", ErrOptionViolation))
			return
		}
		for _, d := range dirs {
			if d.DR < -1 || d.DR > 1 || d.DC < -1 || d.DC > 1 || (d.DR == 0 && d.DC == 0) {
				o.fail(fmt.Errorf("%w: offset %+v is not adjacent", ErrOptionViolation, d))
				return
			}
		}
		o.Dirs = append([]grid.Offset(nil), dirs...)
	}
}

// WithRand supplies the generator used for random tie-breaking.
func WithRand(r *prng.Mulberry32) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithRandomTies enables per-expansion neighbour shuffling. It has no
// effect without WithRand.
func WithRandomTies(on bool) Option {
	return func(o *Options) {
		o.RandomTies = on
	}
}

// WithWeights supplies per-cell entry costs. Costs must be non-negative;
// walls may hold +Inf.
func WithWeights(w *grid.Weights) Option {
	return func(o *Options) {
		if w != nil {
			for i, v := range w.Cost {
				if v < 0 || math.IsNaN(v) {
					o.fail(fmt.Errorf("%w: cost %v at cell %d", ErrOptionViolation, v, i))
					return
				}
			}
		}
		o.Weights = w
	}
}

// WithHeuristic selects the A*/Greedy distance estimate.
func WithHeuristic(h grid.Heuristic) Option {
	return func(o *Options) {
		if h > grid.Octile {
			o.fail(fmt.Errorf("%w: %v", ErrOptionViolation, h))
			return
		}
		o.Heuristic = h
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// diagonal reports whether any configured offset is diagonal.
func (o *Options) diagonal() bool {
	for _, d := range o.Dirs {
		if d.Diagonal() {
			return true
		}
	}

	return false
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
