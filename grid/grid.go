package grid

import (
	"encoding/json"
	"fmt"
	"strings"
)

// New returns a rows×cols grid with every cell set to fill.
// Non-positive dimensions yield an empty grid.
func New(rows, cols int, fill Cell) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	cells := make([]Cell, rows*cols)
	if fill != Empty {
		for i := range cells {
			cells[i] = fill
		}
	}

	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

// FromRows builds a Grid from a non-empty rectangular 2D slice,
// deep-copying the input.
// Complexity: O(rows×cols).
func FromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := New(h, w, Empty)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		copy(g.Cells[r*w:(r+1)*w], row)
	}

	return g, nil
}

// Parse reads an ASCII picture: '#' is a wall, '.' is empty. Blank lines
// and surrounding whitespace are ignored.
func Parse(s string) (*Grid, error) {
	var rows [][]Cell
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#':
				row = append(row, Wall)
			case '.':
				row = append(row, Empty)
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnknownCell, ch)
			}
		}
		rows = append(rows, row)
	}

	return FromRows(rows)
}

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.Rows && c < g.Cols
}

// index maps (r, c) to the row-major index r*Cols + c.
func (g *Grid) index(r, c int) int {
	return r*g.Cols + c
}

// At returns the cell at (r, c). The caller guarantees bounds.
func (g *Grid) At(r, c int) Cell {
	return g.Cells[g.index(r, c)]
}

// Set stores v at (r, c). The caller guarantees bounds.
func (g *Grid) Set(r, c int, v Cell) {
	g.Cells[g.index(r, c)] = v
}

// Passable reports whether p is in bounds and not a wall.
func (g *Grid) Passable(p Pos) bool {
	return g.InBounds(p.R, p.C) && g.At(p.R, p.C) != Wall
}

// Count returns how many cells hold v.
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, c := range g.Cells {
		if c == v {
			n++
		}
	}

	return n
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)

	return &Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// String renders the grid with '#' for walls and '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c) == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Start is the conventional start cell (1,1) used by the builders.
func (g *Grid) Start() Pos {
	return Pos{R: 1, C: 1}
}

// Goal is the conventional goal cell (rows-2, cols-2) used by the builders.
func (g *Grid) Goal() Pos {
	return Pos{R: g.Rows - 2, C: g.Cols - 2}
}

// gridJSON is the wire form: one string per row, '#' wall and '.' empty.
type gridJSON struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells []string `json:"cells"`
}

// MarshalJSON encodes the grid as rows of '#'/'.' strings.
func (g *Grid) MarshalJSON() ([]byte, error) {
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if g.Rows == 0 {
		lines = []string{}
	}

	return json.Marshal(gridJSON{Rows: g.Rows, Cols: g.Cols, Cells: lines})
}

// UnmarshalJSON decodes the wire form produced by MarshalJSON.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var in gridJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	parsed, err := Parse(strings.Join(in.Cells, "\n"))
	if err != nil {
		return err
	}
	*g = *parsed

	return nil
}
