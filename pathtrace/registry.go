package pathtrace

import "fmt"

// Entry describes one registered path algorithm.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	// Optimal reports whether the algorithm always returns a least-cost route
	// (for A*: given an admissible heuristic).
	Optimal bool `json:"optimal" yaml:"optimal"`
	Fn      Func `json:"-" yaml:"-"`
}

var registry = []Entry{
	{Key: "bfs", Label: "BFS", Description: "Breadth-first search on uniform 4-way grids.", Optimal: true, Fn: BFS},
	{Key: "dijkstra", Label: "Dijkstra", Description: "Non-negative weights; optimal with 4/8-way moves and costs.", Optimal: true, Fn: Dijkstra},
	{Key: "astar", Label: "A*", Description: "Best-first guided by a heuristic (Manhattan/Euclid/Octile).", Optimal: true, Fn: AStar},
	{Key: "dfs", Label: "DFS", Description: "Depth-first; not shortest, good for exploring shapes.", Optimal: false, Fn: DFS},
	{Key: "greedy", Label: "Greedy", Description: "Greedy best-first using only the heuristic h; not optimal.", Optimal: false, Fn: Greedy},
	{Key: "dials", Label: "Dial's", Description: "Bucketed Dijkstra for small integer costs without diagonals.", Optimal: true, Fn: Dials},
}

// Registry returns the registered algorithms in display order.
func Registry() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)

	return out
}

// Keys returns the registry keys in display order.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, e := range registry {
		keys[i] = e.Key
	}

	return keys
}

// Lookup finds the entry for key.
func Lookup(key string) (Entry, error) {
	for _, e := range registry {
		if e.Key == key {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
}
