package grid

import (
	"fmt"
	"math"
)

// Heuristic selects a distance estimate between two cells.
type Heuristic uint8

const (
	// Manhattan is |dr| + |dc|; admissible for 4-way unit-cost movement.
	Manhattan Heuristic = iota
	// Euclidean is the straight-line distance.
	Euclidean
	// Octile is D·(dx+dy) + (D2−2D)·min(dx,dy) with D=1, D2=√2;
	// exact for 8-way movement on an empty unit-cost grid.
	Octile
)

var heuristicNames = [...]string{
	Manhattan: "manhattan",
	Euclidean: "euclid",
	Octile:    "octile",
}

// String returns the canonical name.
func (h Heuristic) String() string {
	if int(h) < len(heuristicNames) {
		return heuristicNames[h]
	}

	return fmt.Sprintf("heuristic(%d)", uint8(h))
}

// ParseHeuristic accepts "manhattan", "euclid"/"euclidean" and "octile".
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "manhattan", "":
		return Manhattan, nil
	case "euclid", "euclidean":
		return Euclidean, nil
	case "octile":
		return Octile, nil
	}

	return Manhattan, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Estimate returns h(a, b). Unknown values fall back to Manhattan.
func (h Heuristic) Estimate(a, b Pos) float64 {
	dr := math.Abs(float64(a.R - b.R))
	dc := math.Abs(float64(a.C - b.C))
	switch h {
	case Euclidean:
		return math.Hypot(dr, dc)
	case Octile:
		const d, d2 = 1.0, math.Sqrt2
		return d*(dc+dr) + (d2-2*d)*math.Min(dc, dr)
	default:
		return dr + dc
	}
}
