package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/algoviz/arraygen"
	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathtrace"
	"github.com/katalvlaran/algoviz/player"
	"github.com/katalvlaran/algoviz/prng"
	"github.com/katalvlaran/algoviz/sorttrace"
)

func runSort(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("sort", stderr)
	algo := fs.String("algo", "quick", "sort key: "+strings.Join(sorttrace.Keys(), "|"))
	n := fs.Int("n", 16, "array length")
	kindName := fs.String("kind", "random", "array kind: random|reversed|nearly|fewunique")
	seed := fs.Int64("seed", 7, "generator seed")
	steps := fs.Bool("steps", false, "print every step with the array after it")
	if err := parse(fs, args); err != nil {
		return err
	}
	e, err := sorttrace.Lookup(*algo)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	kind, err := arraygen.ParseKind(*kindName)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *n < 0 {
		return fmt.Errorf("%w: n must not be negative", errUsage)
	}

	input := arraygen.MakeArray(*n, kind, *seed)
	res := e.Fn(input)
	pl, err := player.NewSort(input, res)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%s  n=%d kind=%s seed=%d  %s\n", e.Label, *n, kind, *seed, e.BigO)
	fmt.Fprintf(stdout, "input:  %s\n", formatArray(input))
	for !pl.Done() {
		st, _ := pl.Advance()
		if *steps {
			fmt.Fprintf(stdout, "%6d %-30s %s\n", pl.Cursor(), formatStep(st), formatArray(pl.Array()))
		}
	}
	fmt.Fprintf(stdout, "output: %s\n", formatArray(pl.Array()))
	m := pl.Metrics()
	p.Fprintf(stdout, "steps=%d comparisons=%d writes=%d\n", pl.Len(), m.Comparisons, m.Writes)

	return nil
}

func formatArray(a []float64) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func formatStep(s sorttrace.Step) string {
	switch s.Op {
	case sorttrace.OpCompare, sorttrace.OpSwap:
		return fmt.Sprintf("%s %d %d", s.Op, s.I, s.J)
	case sorttrace.OpOverwrite:
		return fmt.Sprintf("%s %d=%s", s.Op, s.I, strconv.FormatFloat(s.Value, 'g', -1, 64))
	default:
		return fmt.Sprintf("%s %d", s.Op, s.I)
	}
}

func runPath(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("path", stderr)
	algo := fs.String("algo", "astar", "search key: "+strings.Join(pathtrace.Keys(), "|"))
	mode := fs.String("mode", "maze", "grid mode: maze|open")
	rows := fs.Int("rows", 21, "grid rows (forced odd)")
	cols := fs.Int("cols", 31, "grid columns (forced odd)")
	seed := fs.Int64("seed", 1, "generator seed")
	density := fs.Float64("density", 0, "wall probability for open grids")
	braid := fs.Float64("braid", 0, "dead-end opening probability for mazes")
	weighted := fs.Bool("weights", false, "random 1/2/3 cell costs")
	diagonal := fs.Bool("diagonal", false, "allow 8-way moves")
	heurName := fs.String("heuristic", "manhattan", "A*/greedy heuristic: manhattan|euclid|octile")
	randomTies := fs.Bool("random-ties", false, "shuffle neighbour order per expansion")
	if err := parse(fs, args); err != nil {
		return err
	}
	e, err := pathtrace.Lookup(*algo)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	heur, err := grid.ParseHeuristic(*heurName)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *rows < 3 || *cols < 3 {
		return fmt.Errorf("%w: grid must be at least 3x3", errUsage)
	}

	var g *grid.Grid
	switch *mode {
	case "maze":
		g = grid.BuildMaze(*rows, *cols, *seed, *braid)
	case "open":
		g = grid.BuildOpenGrid(*rows, *cols, *seed, *density)
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, *mode)
	}
	weights := grid.BuildWeights(g, *seed, *weighted)
	res, err := e.Fn(g, g.Start(), g.Goal(),
		pathtrace.WithDiagonals(*diagonal),
		pathtrace.WithHeuristic(heur),
		pathtrace.WithWeights(weights),
		pathtrace.WithRand(prng.ForAlgorithm(*seed)),
		pathtrace.WithRandomTies(*randomTies),
	)
	if err != nil {
		return err
	}
	pl, err := player.NewPath(g, res)
	if err != nil {
		return err
	}
	pl.Seek(pl.Len())

	fmt.Fprintf(stdout, "%s  %s %dx%d seed=%d\n", e.Label, *mode, g.Rows, g.Cols, *seed)
	fmt.Fprint(stdout, drawOverlay(g, pl.State()))
	st := pl.State()
	fmt.Fprintf(stdout, "found=%t visited=%d pathLen=%d steps=%d\n", res.Found, st.Visited, st.PathLen, pl.Len())

	return nil
}

// drawOverlay renders '#' walls, 'S'/'G' endpoints, '*' route cells,
// 'o' expanded cells, '+' queued-only cells and '.' untouched space.
func drawOverlay(g *grid.Grid, st *pathtrace.State) string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	start, goal := g.Start(), g.Goal()
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p := grid.Pos{R: r, C: c}
			m := st.At(p)
			switch {
			case g.At(r, c) == grid.Wall:
				b.WriteByte('#')
			case p == start:
				b.WriteByte('S')
			case p == goal:
				b.WriteByte('G')
			case m.Has(pathtrace.MarkPath):
				b.WriteByte('*')
			case m.Has(pathtrace.MarkVisited):
				b.WriteByte('o')
			case m.Has(pathtrace.MarkFrontier):
				b.WriteByte('+')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
