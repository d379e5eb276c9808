package pathtrace_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathtrace"
	"github.com/katalvlaran/algoviz/prng"
)

const wallBand = `
.....
.....
.###.
.....
.....`

const enclosed = `
.....
.###.
.#.#.
.###.
.....`

func mustParse(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	require.NoError(t, err)

	return g
}

// route extracts the path cells (goal first) from a result.
func route(res *pathtrace.Result) []grid.Pos {
	var out []grid.Pos
	for _, s := range res.Steps {
		if s.Kind == pathtrace.Path {
			out = append(out, s.Pos)
		}
	}

	return out
}

// requireValidRoute checks that the route runs goal→start through adjacent
// passable cells and returns its cost.
func requireValidRoute(t *testing.T, g *grid.Grid, w *grid.Weights, res *pathtrace.Result, start, goal grid.Pos) float64 {
	t.Helper()
	p := route(res)
	require.NotEmpty(t, p)
	require.Equal(t, goal, p[0])
	require.Equal(t, start, p[len(p)-1])
	require.Equal(t, len(p)-1, res.Metrics.PathLen)

	cost := 0.0
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		dr, dc := a.R-b.R, a.C-b.C
		require.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1 && (dr != 0 || dc != 0), "%v→%v", b, a)
		require.True(t, g.Passable(a))
		step := 1.0
		if dr != 0 && dc != 0 {
			step = math.Sqrt2
		}
		cost += step * w.At(a.R, a.C)
	}

	return cost
}

func TestBFS_OpenGrid(t *testing.T) {
	g := grid.BuildOpenGrid(7, 7, 1, 0)
	res, err := pathtrace.BFS(g, grid.Pos{R: 1, C: 1}, grid.Pos{R: 5, C: 5})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 8, res.Metrics.PathLen)
	requireValidRoute(t, g, nil, res, grid.Pos{R: 1, C: 1}, grid.Pos{R: 5, C: 5})
}

func TestOptimal_WallBand(t *testing.T) {
	g := mustParse(t, wallBand)
	start, goal := grid.Pos{R: 0, C: 2}, grid.Pos{R: 4, C: 2}

	for _, e := range pathtrace.Registry() {
		res, err := e.Fn(g, start, goal)
		require.NoError(t, err, e.Key)
		require.True(t, res.Found, e.Key)
		requireValidRoute(t, g, nil, res, start, goal)
		if e.Optimal {
			assert.Equal(t, 8, res.Metrics.PathLen, e.Key)
		}
	}
}

func TestOptimal_Diagonal(t *testing.T) {
	g := mustParse(t, wallBand)
	start, goal := grid.Pos{R: 0, C: 2}, grid.Pos{R: 4, C: 2}

	dj, err := pathtrace.Dijkstra(g, start, goal, pathtrace.WithDiagonals(true))
	require.NoError(t, err)
	assert.Equal(t, 4, dj.Metrics.PathLen)
	assert.InDelta(t, 4*math.Sqrt2, requireValidRoute(t, g, nil, dj, start, goal), 1e-9)

	as, err := pathtrace.AStar(g, start, goal,
		pathtrace.WithDiagonals(true), pathtrace.WithHeuristic(grid.Octile))
	require.NoError(t, err)
	assert.Equal(t, 4, as.Metrics.PathLen)
}

func TestOptimal_WeightedMazes(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		g := grid.BuildMaze(21, 31, seed, 0.3)
		w := grid.BuildWeights(g, seed, true)
		start, goal := g.Start(), g.Goal()

		dj, err := pathtrace.Dijkstra(g, start, goal, pathtrace.WithWeights(w))
		require.NoError(t, err)
		want := requireValidRoute(t, g, w, dj, start, goal)

		as, err := pathtrace.AStar(g, start, goal, pathtrace.WithWeights(w))
		require.NoError(t, err)
		assert.InDelta(t, want, requireValidRoute(t, g, w, as, start, goal), 1e-9, "seed %d", seed)

		dl, err := pathtrace.Dials(g, start, goal, pathtrace.WithWeights(w))
		require.NoError(t, err)
		assert.InDelta(t, want, requireValidRoute(t, g, w, dl, start, goal), 1e-9, "seed %d", seed)

		gr, err := pathtrace.Greedy(g, start, goal, pathtrace.WithWeights(w))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, requireValidRoute(t, g, w, gr, start, goal), want-1e-9)
	}
}

func TestFallbacks(t *testing.T) {
	g := grid.BuildMaze(15, 15, 3, 0.4)
	w := grid.BuildWeights(g, 3, true)
	start, goal := g.Start(), g.Goal()

	cases := []struct {
		name string
		fn   pathtrace.Func
		opts []pathtrace.Option
	}{
		{"dials diagonal", pathtrace.Dials, []pathtrace.Option{pathtrace.WithDiagonals(true)}},
		{"dials diagonal weighted", pathtrace.Dials, []pathtrace.Option{pathtrace.WithDiagonals(true), pathtrace.WithWeights(w)}},
		{"bfs weighted", pathtrace.BFS, []pathtrace.Option{pathtrace.WithWeights(w)}},
		{"bfs diagonal", pathtrace.BFS, []pathtrace.Option{pathtrace.WithDiagonals(true)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(g, start, goal, tc.opts...)
			require.NoError(t, err)
			want, err := pathtrace.Dijkstra(g, start, goal, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	// fractional costs also force Dijkstra
	frac := grid.BuildWeights(g, 3, true)
	for i, v := range frac.Cost {
		if !math.IsInf(v, 1) {
			frac.Cost[i] = v + 0.5
		}
	}
	got, err := pathtrace.Dials(g, start, goal, pathtrace.WithWeights(frac))
	require.NoError(t, err)
	want, err := pathtrace.Dijkstra(g, start, goal, pathtrace.WithWeights(frac))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDials_MatchesDijkstraOnIntegerCosts(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g := grid.BuildMaze(21, 21, seed, 0.5)
		w := grid.BuildWeights(g, seed, true)
		want, err := pathtrace.Dijkstra(g, g.Start(), g.Goal(), pathtrace.WithWeights(w))
		require.NoError(t, err)
		got, err := pathtrace.Dials(g, g.Start(), g.Goal(), pathtrace.WithWeights(w))
		require.NoError(t, err)
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

func TestUnreachable(t *testing.T) {
	g := mustParse(t, enclosed)
	for _, e := range pathtrace.Registry() {
		res, err := e.Fn(g, grid.Pos{R: 0, C: 0}, grid.Pos{R: 2, C: 2})
		require.NoError(t, err, e.Key)
		assert.False(t, res.Found, e.Key)
		assert.Zero(t, res.Metrics.PathLen, e.Key)
		assert.Empty(t, route(res), e.Key)
		assert.Equal(t, 16, res.Metrics.Visited, e.Key)
		assert.Equal(t, pathtrace.Step{Kind: pathtrace.Done}, res.Steps[len(res.Steps)-1])
	}
}

// TestFoundMatchesConnectivity cross-checks every emitter against region
// labelling on random open grids.
func TestFoundMatchesConnectivity(t *testing.T) {
	for seed := int64(0); seed < 12; seed++ {
		g := grid.BuildOpenGrid(15, 15, seed, 0.4)
		for _, diag := range []bool{false, true} {
			dirs := grid.Dirs4()
			if diag {
				dirs = grid.Dirs8()
			}
			want := g.Connected(g.Start(), g.Goal(), dirs)
			for _, e := range pathtrace.Registry() {
				res, err := e.Fn(g, g.Start(), g.Goal(), pathtrace.WithDiagonals(diag))
				require.NoError(t, err)
				assert.Equal(t, want, res.Found, "%s seed=%d diagonal=%v", e.Key, seed, diag)
			}
		}
	}
}

func TestStartIsGoal(t *testing.T) {
	g := grid.BuildOpenGrid(5, 5, 0, 0)
	p := grid.Pos{R: 2, C: 2}
	for _, e := range pathtrace.Registry() {
		res, err := e.Fn(g, p, p)
		require.NoError(t, err)
		assert.Equal(t, []pathtrace.Step{
			{Kind: pathtrace.Visit, Pos: p},
			{Kind: pathtrace.Path, Pos: p},
			{Kind: pathtrace.Done},
		}, res.Steps, e.Key)
		assert.Equal(t, pathtrace.Metrics{Visited: 1, PathLen: 0}, res.Metrics)
	}
}

func TestErrors(t *testing.T) {
	g := mustParse(t, enclosed)
	ok := grid.Pos{R: 0, C: 0}

	_, err := pathtrace.BFS(nil, ok, ok)
	assert.ErrorIs(t, err, pathtrace.ErrNilGrid)

	_, err = pathtrace.Dijkstra(g, ok, grid.Pos{R: 5, C: 0})
	assert.ErrorIs(t, err, pathtrace.ErrOutOfBounds)

	_, err = pathtrace.AStar(g, grid.Pos{R: 1, C: 1}, ok)
	assert.ErrorIs(t, err, pathtrace.ErrBlockedEndpoint)

	other := grid.BuildWeights(grid.BuildOpenGrid(7, 7, 0, 0), 1, true)
	_, err = pathtrace.Dials(g, ok, ok, pathtrace.WithWeights(other))
	assert.ErrorIs(t, err, pathtrace.ErrWeightsMismatch)

	_, err = pathtrace.DFS(g, ok, ok, pathtrace.WithDirs([]grid.Offset{{DR: 2, DC: 0}}))
	assert.ErrorIs(t, err, pathtrace.ErrOptionViolation)

	_, err = pathtrace.DFS(g, ok, ok, pathtrace.WithDirs(nil))
	assert.ErrorIs(t, err, pathtrace.ErrOptionViolation)

	neg := grid.BuildWeights(g, 1, true)
	neg.Cost[0] = -1
	_, err = pathtrace.Greedy(g, ok, ok, pathtrace.WithWeights(neg))
	assert.ErrorIs(t, err, pathtrace.ErrOptionViolation)

	_, err = pathtrace.Greedy(g, ok, ok, pathtrace.WithHeuristic(grid.Heuristic(9)))
	assert.ErrorIs(t, err, pathtrace.ErrOptionViolation)
}

func TestMetricsMatchSteps(t *testing.T) {
	g := grid.BuildMaze(21, 31, 9, 0.2)
	for _, e := range pathtrace.Registry() {
		for _, diag := range []bool{false, true} {
			res, err := e.Fn(g, g.Start(), g.Goal(), pathtrace.WithDiagonals(diag))
			require.NoError(t, err)

			st, err := pathtrace.Replay(g, res.Steps)
			require.NoError(t, err)
			assert.True(t, st.Done)
			assert.Equal(t, res.Metrics.Visited, st.Visited, e.Key)
			assert.Equal(t, res.Metrics.PathLen, st.PathLen, e.Key)
			assert.True(t, st.At(g.Start()).Has(pathtrace.MarkVisited|pathtrace.MarkPath), e.Key)
			assert.True(t, st.At(g.Goal()).Has(pathtrace.MarkPath), e.Key)
			for i, c := range g.Cells {
				if c == grid.Wall {
					assert.Zero(t, st.Marks[i], "%s touched a wall", e.Key)
				}
			}
		}
	}
}

func TestRandomTies(t *testing.T) {
	g := grid.BuildOpenGrid(15, 15, 0, 0)
	start, goal := g.Start(), g.Goal()
	plain, err := pathtrace.BFS(g, start, goal)
	require.NoError(t, err)

	run := func(seed int64) *pathtrace.Result {
		res, err := pathtrace.BFS(g, start, goal,
			pathtrace.WithRand(prng.ForAlgorithm(seed)), pathtrace.WithRandomTies(true))
		require.NoError(t, err)
		return res
	}

	assert.Equal(t, run(5), run(5))

	differs := false
	for seed := int64(1); seed <= 5; seed++ {
		res := run(seed)
		assert.Equal(t, plain.Metrics.PathLen, res.Metrics.PathLen)
		if !assert.ObjectsAreEqual(plain.Steps, res.Steps) {
			differs = true
		}
	}
	assert.True(t, differs)

	// without a generator the flag is inert
	inert, err := pathtrace.BFS(g, start, goal, pathtrace.WithRandomTies(true))
	require.NoError(t, err)
	assert.Equal(t, plain, inert)
}

func TestAStar_ExpandsLessThanDijkstra(t *testing.T) {
	g := grid.BuildOpenGrid(31, 31, 0, 0)
	dj, err := pathtrace.Dijkstra(g, g.Start(), g.Goal())
	require.NoError(t, err)
	as, err := pathtrace.AStar(g, g.Start(), g.Goal())
	require.NoError(t, err)
	assert.Equal(t, dj.Metrics.PathLen, as.Metrics.PathLen)
	assert.Less(t, as.Metrics.Visited, dj.Metrics.Visited)
}

func TestFrontierOncePerCell_BFS(t *testing.T) {
	g := grid.BuildMaze(21, 21, 2, 0.3)
	res, err := pathtrace.BFS(g, g.Start(), g.Goal())
	require.NoError(t, err)
	seen := map[grid.Pos]bool{}
	for _, s := range res.Steps {
		if s.Kind == pathtrace.Frontier {
			assert.False(t, seen[s.Pos], "%v discovered twice", s.Pos)
			seen[s.Pos] = true
		}
	}
}

func TestRegistryAndReplayErrors(t *testing.T) {
	assert.Equal(t, []string{"bfs", "dijkstra", "astar", "dfs", "greedy", "dials"}, pathtrace.Keys())
	_, err := pathtrace.Lookup("ida")
	assert.ErrorIs(t, err, pathtrace.ErrUnknownAlgorithm)

	g := grid.BuildOpenGrid(3, 3, 0, 0)
	_, err = pathtrace.Replay(g, []pathtrace.Step{{Kind: pathtrace.Visit, Pos: grid.Pos{R: 3, C: 0}}})
	assert.ErrorIs(t, err, pathtrace.ErrInvalidTrace)
	_, err = pathtrace.Replay(g, []pathtrace.Step{{Kind: pathtrace.Done}, {Kind: pathtrace.Visit}})
	assert.ErrorIs(t, err, pathtrace.ErrInvalidTrace)
}

func TestStep_JSON(t *testing.T) {
	raw, err := json.Marshal([]pathtrace.Step{
		{Kind: pathtrace.Visit, Pos: grid.Pos{R: 1, C: 2}},
		{Kind: pathtrace.Done},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"visit","r":1,"c":2},{"type":"done"}]`, string(raw))
}
