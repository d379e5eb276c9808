package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates an unrecognised rune in Parse input.
	ErrUnknownCell = errors.New("grid: unknown cell rune")
	// ErrUnknownHeuristic indicates an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("grid: unknown heuristic")
)

// Cell is the occupancy state of one grid square.
type Cell uint8

const (
	// Empty cells are passable.
	Empty Cell = iota
	// Wall cells are impassable.
	Wall
)

// Pos is a grid coordinate: row R, column C.
type Pos struct {
	R int `json:"r" yaml:"r"`
	C int `json:"c" yaml:"c"`
}

// Offset is a single neighbour step (ΔR, ΔC).
type Offset struct {
	DR, DC int
}

// Diagonal reports whether the step changes both row and column.
func (o Offset) Diagonal() bool {
	return o.DR != 0 && o.DC != 0
}

// Dirs4 returns the orthogonal offsets in engine iteration order:
// down, up, right, left.
func Dirs4() []Offset {
	return []Offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
}

// Dirs8 returns Dirs4 followed by the four diagonals.
func Dirs8() []Offset {
	return append(Dirs4(), Offset{1, 1}, Offset{1, -1}, Offset{-1, 1}, Offset{-1, -1})
}

// Grid is a rectangular occupancy grid stored row-major.
// Cells[r*Cols+c] holds the state of (r, c).
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// Weights is a per-cell entry cost map with the same dimensions as its grid.
// Cost[r*Cols+c] is the cost of stepping onto (r, c); walls hold +Inf.
type Weights struct {
	Rows int
	Cols int
	Cost []float64
}

// Inf is the cost recorded for walls.
var Inf = math.Inf(1)
