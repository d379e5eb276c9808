// Package grid models the 2D occupancy grids the path engines search, and
// builds them deterministically: open fields with random obstacles, perfect
// mazes carved by recursive backtracking (optionally braided), and per-cell
// integer weight maps.
//
// What:
//
//   - Grid is a rectangular, row-major slice of Cells (Empty or Wall).
//   - Pos is a (row, column) coordinate; Offset a neighbour step.
//   - Dirs4 / Dirs8 return the orthogonal and orthogonal+diagonal offsets in
//     the fixed order the engines iterate them.
//   - Weights pairs an equally sized cost map with a grid: 1..3 for empty
//     cells, +Inf for walls. A nil *Weights means uniform cost 1.
//   - Heuristic selects Manhattan, Euclidean or Octile distance estimates.
//   - Label / Components / Connected find the passable regions under a
//     given move set.
//
// Builders:
//
//   - BuildOpenGrid(rows, cols, seed, density)
//   - BuildMaze(rows, cols, seed, braid)
//   - BuildWeights(g, seed, enabled)
//
// Builders coerce rows and cols to odd values (rows|1, cols|1) so the maze
// lattice has a well-defined interior, and draw randomness only from
// prng streams keyed by their own namespace ("open", "maze", "weights").
//
// Complexity:
//
//   - BuildOpenGrid, BuildWeights: O(rows×cols) time and memory.
//   - BuildMaze: O(rows×cols) time, O(rows×cols) explicit stack in the worst case.
//   - Label, Components, Connected: O(rows×cols×len(dirs)).
//
// Errors:
//
//   - ErrEmptyGrid:      FromRows/Parse input has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownCell:    Parse met a rune other than '#' or '.'.
//   - ErrUnknownHeuristic from ParseHeuristic.
package grid
