package pathtrace

import "github.com/katalvlaran/algoviz/grid"

// BFS runs breadth-first search. Cells are marked seen when queued, so each
// cell is discovered once and expanded once.
//
// BFS is only distance-optimal with uniform unit costs, so with weights or
// diagonal moves it runs Dijkstra instead.
func BFS(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	r := newRunner(g, start, goal, o)
	if o.Weights != nil || o.diagonal() {
		return r.dijkstra(), nil
	}

	return r.bfs(), nil
}

func (r *runner) bfs() *Result {
	seen := make([]bool, len(r.parent))
	queue := []grid.Pos{r.start}
	seen[r.index(r.start)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if r.visit(cur) {
			break
		}
		for _, d := range r.offsets() {
			nb, ok := r.neighbour(cur, d)
			if !ok || seen[r.index(nb)] {
				continue
			}
			seen[r.index(nb)] = true
			r.parent[r.index(nb)] = r.index(cur)
			queue = append(queue, nb)
			r.frontier(nb)
		}
	}

	return r.finish()
}

// DFS runs stack-based depth-first search. Cells are marked seen when
// pushed, the most recently pushed cell is expanded next. The route it
// finds is generally not the shortest.
func DFS(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	return newRunner(g, start, goal, o).dfs(), nil
}

func (r *runner) dfs() *Result {
	seen := make([]bool, len(r.parent))
	stack := []grid.Pos{r.start}
	seen[r.index(r.start)] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.visit(cur) {
			break
		}
		for _, d := range r.offsets() {
			nb, ok := r.neighbour(cur, d)
			if !ok || seen[r.index(nb)] {
				continue
			}
			seen[r.index(nb)] = true
			r.parent[r.index(nb)] = r.index(cur)
			stack = append(stack, nb)
			r.frontier(nb)
		}
	}

	return r.finish()
}
