package pathtrace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/prng"
)

// runner encapsulates the mutable state shared by every search.
type runner struct {
	g      *grid.Grid
	o      Options
	start  grid.Pos
	goal   grid.Pos
	parent []int // parent[i] is the predecessor index of cell i, -1 if none
	steps  []Step
	m      Metrics
	found  bool
	nbrs   []grid.Offset // scratch for shuffled neighbour order
}

// prepare applies opts and validates the search request.
func prepare(g *grid.Grid, start, goal grid.Pos, opts []Option) (Options, error) {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 || len(g.Cells) != g.Rows*g.Cols {
		return Options{}, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Options{}, err
	}
	for _, p := range [...]grid.Pos{start, goal} {
		if !g.InBounds(p.R, p.C) {
			return Options{}, fmt.Errorf("%w: %+v in %dx%d", ErrOutOfBounds, p, g.Rows, g.Cols)
		}
		if !g.Passable(p) {
			return Options{}, fmt.Errorf("%w: %+v", ErrBlockedEndpoint, p)
		}
	}
	if !o.Weights.Matches(g) {
		return Options{}, fmt.Errorf("%w: weights %dx%d, grid %dx%d",
			ErrWeightsMismatch, o.Weights.Rows, o.Weights.Cols, g.Rows, g.Cols)
	}

	return o, nil
}

func newRunner(g *grid.Grid, start, goal grid.Pos, o Options) *runner {
	n := g.Rows * g.Cols
	r := &runner{
		g:      g,
		o:      o,
		start:  start,
		goal:   goal,
		parent: make([]int, n),
		steps:  make([]Step, 0, 2*n+1),
		nbrs:   make([]grid.Offset, len(o.Dirs)),
	}
	for i := range r.parent {
		r.parent[i] = -1
	}

	return r
}

func (r *runner) index(p grid.Pos) int { return p.R*r.g.Cols + p.C }

func (r *runner) pos(i int) grid.Pos { return grid.Pos{R: i / r.g.Cols, C: i % r.g.Cols} }

func (r *runner) frontier(p grid.Pos) {
	r.steps = append(r.steps, Step{Kind: Frontier, Pos: p})
}

// visit records an expansion and reports whether p is the goal.
func (r *runner) visit(p grid.Pos) bool {
	r.steps = append(r.steps, Step{Kind: Visit, Pos: p})
	r.m.Visited++
	if p == r.goal {
		r.found = true
	}

	return r.found
}

// offsets returns the neighbour order for the next expansion: the
// configured dirs, or a fresh shuffle of them when random ties are on.
func (r *runner) offsets() []grid.Offset {
	if !r.o.RandomTies || r.o.Rand == nil {
		return r.o.Dirs
	}
	copy(r.nbrs, r.o.Dirs)
	prng.Shuffle(r.o.Rand, len(r.nbrs), func(i, j int) {
		r.nbrs[i], r.nbrs[j] = r.nbrs[j], r.nbrs[i]
	})

	return r.nbrs
}

// neighbour returns p+d when it is an in-bounds, passable cell.
func (r *runner) neighbour(p grid.Pos, d grid.Offset) (grid.Pos, bool) {
	q := grid.Pos{R: p.R + d.DR, C: p.C + d.DC}
	if !r.g.InBounds(q.R, q.C) || r.g.At(q.R, q.C) == grid.Wall {
		return q, false
	}

	return q, true
}

// cost of moving by d onto q.
func (r *runner) cost(d grid.Offset, q grid.Pos) float64 {
	base := 1.0
	if d.Diagonal() {
		base = math.Sqrt2
	}

	return base * r.o.Weights.At(q.R, q.C)
}

// finish reconstructs the route and terminates the trace.
func (r *runner) finish() *Result {
	if r.found {
		for cur := r.index(r.goal); cur != r.index(r.start); cur = r.parent[cur] {
			r.steps = append(r.steps, Step{Kind: Path, Pos: r.pos(cur)})
			r.m.PathLen++
		}
		r.steps = append(r.steps, Step{Kind: Path, Pos: r.start})
	}
	r.steps = append(r.steps, Step{Kind: Done})

	return &Result{Steps: r.steps, Metrics: r.m, Found: r.found}
}
