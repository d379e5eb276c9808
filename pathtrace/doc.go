// Package pathtrace runs grid pathfinding algorithms while recording a
// deterministic, replayable trace of every discovery, expansion and the
// final path.
//
// What
//
//   - Emitters share one shape:
//     func(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error)
//   - Steps are frontier(p) when a cell is discovered or improved,
//     visit(p) when it is expanded, path(p) for every cell of the final
//     route walked from goal back to start (start included), and one
//     terminal done step.
//   - Metrics.Visited counts visit steps; Metrics.PathLen counts the edges
//     of the reconstructed route. An unreachable goal yields no path steps
//     and PathLen 0.
//   - Edge cost is (diagonal ? √2 : 1) × cost of the destination cell
//     (1 when no weights are supplied).
//
// Algorithms
//
//	bfs       FIFO queue; optimal on unweighted 4-way grids
//	dijkstra  binary heap keyed by (distance, push order); optimal
//	astar     binary heap keyed by (f, -g, push order); optimal with an
//	          admissible heuristic
//	dfs       LIFO stack; not optimal
//	greedy    binary heap keyed by (h, push order); not optimal
//	dials     bucket queue for 4-way integer costs; optimal
//
// Fallbacks
//
//	BFS runs Dijkstra when weights are supplied or diagonal moves are
//	enabled. Dial's runs Dijkstra when diagonal moves are enabled or any
//	cost is fractional. Both are guard clauses; the trace equals calling
//	Dijkstra directly.
//
// Tie-breaking
//
//	Entries with equal priority leave the queue in push order. With
//	WithRandomTies(true) and a generator from WithRand, the neighbour order
//	is reshuffled (Fisher–Yates) before each expansion, so ties vary by
//	seed while staying reproducible.
//
// Complexity (V = rows·cols)
//
//   - bfs, dfs: O(V) time and memory.
//   - dijkstra, astar, greedy: O(V log V) time, O(V) memory.
//   - dials: O(V + C·V) time where C is the largest cell cost.
//
// Errors
//
//   - ErrNilGrid if g is nil or has no cells.
//   - ErrOutOfBounds if start or goal lies outside g.
//   - ErrBlockedEndpoint if start or goal is a wall.
//   - ErrWeightsMismatch if the weights do not cover g.
//   - ErrOptionViolation for invalid options (bad offsets, negative costs).
package pathtrace
