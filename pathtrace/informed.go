package pathtrace

import (
	"math"

	"github.com/katalvlaran/algoviz/grid"
)

// Dijkstra runs uniform-cost search with lazy decrease-key: an improved
// cell is pushed again and the outdated entry is skipped when popped.
func Dijkstra(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	return newRunner(g, start, goal, o).dijkstra(), nil
}

func (r *runner) dijkstra() *Result {
	dist := infinities(len(r.parent))
	var q queue
	s := r.index(r.start)
	dist[s] = 0
	q.push(s, 0, 0)

	for q.len() > 0 {
		e := q.pop()
		if e.primary > dist[e.idx] {
			continue // stale
		}
		cur := r.pos(e.idx)
		if r.visit(cur) {
			break
		}
		for _, d := range r.offsets() {
			nb, ok := r.neighbour(cur, d)
			if !ok {
				continue
			}
			ni := r.index(nb)
			nd := e.primary + r.cost(d, nb)
			if nd < dist[ni] {
				dist[ni] = nd
				r.parent[ni] = e.idx
				q.push(ni, nd, 0)
				r.frontier(nb)
			}
		}
	}

	return r.finish()
}

// AStar runs A* with f = g + h. Ties on f prefer the larger g, then push
// order. A cell improved while already queued gets a fresh entry but no
// second frontier step.
func AStar(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	return newRunner(g, start, goal, o).astar(), nil
}

func (r *runner) astar() *Result {
	n := len(r.parent)
	gScore := infinities(n)
	inOpen := make([]bool, n)
	h := func(p grid.Pos) float64 { return r.o.Heuristic.Estimate(p, r.goal) }

	var q queue
	s := r.index(r.start)
	gScore[s] = 0
	inOpen[s] = true
	q.push(s, h(r.start), 0)

	for q.len() > 0 {
		e := q.pop()
		if -e.secondary > gScore[e.idx] {
			continue // superseded by a cheaper entry
		}
		inOpen[e.idx] = false
		cur := r.pos(e.idx)
		if r.visit(cur) {
			break
		}
		for _, d := range r.offsets() {
			nb, ok := r.neighbour(cur, d)
			if !ok {
				continue
			}
			ni := r.index(nb)
			tentative := gScore[e.idx] + r.cost(d, nb)
			if tentative >= gScore[ni] {
				continue
			}
			r.parent[ni] = e.idx
			gScore[ni] = tentative
			q.push(ni, tentative+h(nb), -tentative)
			if !inOpen[ni] {
				inOpen[ni] = true
				r.frontier(nb)
			}
		}
	}

	return r.finish()
}

// Greedy runs greedy best-first search ordered by h alone. Open and closed
// sets prevent re-discovery and re-expansion; the first parent assigned to
// a cell is kept.
func Greedy(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	return newRunner(g, start, goal, o).greedy(), nil
}

func (r *runner) greedy() *Result {
	n := len(r.parent)
	inOpen := make([]bool, n)
	closed := make([]bool, n)
	h := func(p grid.Pos) float64 { return r.o.Heuristic.Estimate(p, r.goal) }

	var q queue
	s := r.index(r.start)
	inOpen[s] = true
	q.push(s, h(r.start), 0)

	for q.len() > 0 {
		e := q.pop()
		if closed[e.idx] {
			continue
		}
		inOpen[e.idx] = false
		closed[e.idx] = true
		cur := r.pos(e.idx)
		if r.visit(cur) {
			break
		}
		for _, d := range r.offsets() {
			nb, ok := r.neighbour(cur, d)
			if !ok {
				continue
			}
			ni := r.index(nb)
			if closed[ni] || inOpen[ni] {
				continue
			}
			r.parent[ni] = e.idx
			r.frontier(nb)
			inOpen[ni] = true
			q.push(ni, h(nb), 0)
		}
	}

	return r.finish()
}

func infinities(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Inf(1)
	}

	return out
}
