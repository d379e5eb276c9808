package pathtrace

import (
	"math"

	"github.com/katalvlaran/algoviz/grid"
)

// Dials runs Dial's algorithm: Dijkstra over an array of FIFO buckets
// indexed by integer distance. Buckets are bounded by
// maxCost·rows·cols + 2 and scanned in increasing order; outdated entries
// are skipped.
//
// Dial's needs integer edge costs, so with diagonal moves (√2 steps) or any
// fractional cell cost it runs Dijkstra instead.
func Dials(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	r := newRunner(g, start, goal, o)
	if o.diagonal() || !o.Weights.Integral() {
		return r.dijkstra(), nil
	}

	return r.dials(), nil
}

type bucketItem struct {
	idx  int
	dist int
}

func (r *runner) dials() *Result {
	n := len(r.parent)
	maxD := int(r.o.Weights.MaxFinite())*r.g.Rows*r.g.Cols + 2
	buckets := make([][]bucketItem, maxD)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	push := func(idx, d int) {
		if d < maxD {
			buckets[d] = append(buckets[d], bucketItem{idx: idx, dist: d})
		}
	}

	s := r.index(r.start)
	dist[s] = 0
	push(s, 0)

	for b := 0; b < maxD; {
		if len(buckets[b]) == 0 {
			buckets[b] = nil
			b++
			continue
		}
		it := buckets[b][0]
		buckets[b] = buckets[b][1:]
		if it.dist != dist[it.idx] {
			continue // stale
		}
		cur := r.pos(it.idx)
		if r.visit(cur) {
			break
		}
		for _, d := range r.offsets() {
			nb, ok := r.neighbour(cur, d)
			if !ok {
				continue
			}
			c := r.o.Weights.At(nb.R, nb.C)
			if math.IsInf(c, 1) {
				continue
			}
			ni := r.index(nb)
			nd := it.dist + int(c)
			if nd < dist[ni] {
				dist[ni] = nd
				r.parent[ni] = it.idx
				r.frontier(nb)
				push(ni, nd)
			}
		}
	}

	return r.finish()
}
