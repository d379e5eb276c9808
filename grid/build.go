package grid

import (
	"github.com/katalvlaran/algoviz/prng"
)

// minLattice is the smallest dimension with an interior cell at (1,1).
const minLattice = 3

// BuildOpenGrid returns an all-empty rows×cols grid (dimensions forced odd).
// When density > 0 every cell other than the start (1,1) and goal
// (rows-2, cols-2) independently becomes a wall with probability density.
//
// Randomness: prng.HashSeed("open", seed, rows, cols, density) on the
// coerced dimensions.
// Complexity: O(rows×cols).
func BuildOpenGrid(rows, cols int, seed int64, density float64) *Grid {
	rows, cols = rows|1, cols|1
	g := New(rows, cols, Empty)
	if density <= 0 {
		return g
	}
	rng := prng.New(prng.HashSeed("open", seed, rows, cols, density))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if (r == 1 && c == 1) || (r == rows-2 && c == cols-2) {
				continue
			}
			if rng.Float64() < density {
				g.Set(r, c, Wall)
			}
		}
	}

	return g
}

// carveFrame is one level of the backtracker's explicit stack.
type carveFrame struct {
	r, c int
	dirs [4]Offset
	next int
}

// BuildMaze carves a perfect maze with a recursive backtracker from (1,1)
// over the odd-coordinate lattice, then braids it: every interior dead end
// (exactly one empty orthogonal neighbour) opens one random adjacent
// interior wall with probability braid. The border always stays Wall.
//
// Randomness: prng.HashSeed("maze", seed, rows, cols, braid) on the
// coerced dimensions. Grids smaller than 3×3 have no interior and are
// returned solid.
// Complexity: O(rows×cols).
func BuildMaze(rows, cols int, seed int64, braid float64) *Grid {
	rows, cols = rows|1, cols|1
	g := New(rows, cols, Wall)
	if rows < minLattice || cols < minLattice {
		return g
	}
	rng := prng.New(prng.HashSeed("maze", seed, rows, cols, braid))

	interior := func(r, c int) bool {
		return r > 0 && c > 0 && r < rows-1 && c < cols-1
	}
	enter := func(r, c int) carveFrame {
		g.Set(r, c, Empty)
		f := carveFrame{r: r, c: c, dirs: [4]Offset{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}}
		prng.Shuffle(rng, len(f.dirs), func(i, j int) { f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i] })
		return f
	}

	stack := []carveFrame{enter(1, 1)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++
		r2, c2 := top.r+d.DR, top.c+d.DC
		if interior(r2, c2) && g.At(r2, c2) == Wall {
			g.Set(top.r+d.DR/2, top.c+d.DC/2, Empty)
			stack = append(stack, enter(r2, c2))
		}
	}

	braidDeadEnds(g, rng, braid, interior)

	return g
}

// braidDeadEnds opens one adjacent interior wall of each dead end with
// probability braid. Cells are scanned row-major, so walls opened earlier in
// the scan are visible to later cells.
func braidDeadEnds(g *Grid, rng *prng.Mulberry32, braid float64, interior func(r, c int) bool) {
	dirs := Dirs4()
	walls := make([]Offset, 0, len(dirs))
	for r := 1; r < g.Rows-1; r++ {
		for c := 1; c < g.Cols-1; c++ {
			if g.At(r, c) != Empty {
				continue
			}
			exits := 0
			for _, d := range dirs {
				if g.At(r+d.DR, c+d.DC) == Empty {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= braid {
				continue
			}
			walls = walls[:0]
			for _, d := range dirs {
				if interior(r+d.DR, c+d.DC) && g.At(r+d.DR, c+d.DC) == Wall {
					walls = append(walls, d)
				}
			}
			if len(walls) > 0 {
				d := walls[rng.Intn(len(walls))]
				g.Set(r+d.DR, c+d.DC, Empty)
			}
		}
	}
}
