package grid

import (
	"encoding/json"
	"math"

	"github.com/katalvlaran/algoviz/prng"
)

// Weight thresholds: r < heavyBelow → 3, r < mediumBelow → 2, else 1.
const (
	heavyBelow  = 0.15
	mediumBelow = 0.45
)

// BuildWeights returns nil when disabled (uniform cost 1). Otherwise every
// empty cell gets cost 1 (55%), 2 (30%) or 3 (15%) and walls get +Inf.
// Walls consume no randomness.
//
// Randomness: prng.HashSeed("weights", seed).
// Complexity: O(rows×cols).
func BuildWeights(g *Grid, seed int64, enabled bool) *Weights {
	if !enabled || g == nil {
		return nil
	}
	rng := prng.New(prng.HashSeed("weights", seed))
	w := &Weights{Rows: g.Rows, Cols: g.Cols, Cost: make([]float64, len(g.Cells))}
	for i, cell := range g.Cells {
		if cell == Wall {
			w.Cost[i] = Inf
			continue
		}
		switch r := rng.Float64(); {
		case r < heavyBelow:
			w.Cost[i] = 3
		case r < mediumBelow:
			w.Cost[i] = 2
		default:
			w.Cost[i] = 1
		}
	}

	return w
}

// At returns the cost of entering (r, c); a nil map means cost 1.
func (w *Weights) At(r, c int) float64 {
	if w == nil {
		return 1
	}

	return w.Cost[r*w.Cols+c]
}

// Matches reports whether w has the same dimensions as g. A nil map
// matches every grid.
func (w *Weights) Matches(g *Grid) bool {
	return w == nil || (w.Rows == g.Rows && w.Cols == g.Cols && len(w.Cost) == w.Rows*w.Cols)
}

// Integral reports whether every finite cost is a whole number.
func (w *Weights) Integral() bool {
	if w == nil {
		return true
	}
	for _, v := range w.Cost {
		if math.IsInf(v, 1) {
			continue
		}
		if v != math.Trunc(v) {
			return false
		}
	}

	return true
}

// MaxFinite returns the largest finite cost, at least 1.
func (w *Weights) MaxFinite() float64 {
	best := 1.0
	if w == nil {
		return best
	}
	for _, v := range w.Cost {
		if !math.IsInf(v, 0) && !math.IsNaN(v) && v > best {
			best = v
		}
	}

	return best
}

// weightsJSON is the wire form: walls (+Inf) become null.
type weightsJSON struct {
	Rows int        `json:"rows"`
	Cols int        `json:"cols"`
	Cost []*float64 `json:"cost"`
}

// MarshalJSON encodes the map with null in place of +Inf.
func (w *Weights) MarshalJSON() ([]byte, error) {
	out := weightsJSON{Rows: w.Rows, Cols: w.Cols, Cost: make([]*float64, len(w.Cost))}
	for i := range w.Cost {
		if !math.IsInf(w.Cost[i], 1) {
			v := w.Cost[i]
			out.Cost[i] = &v
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the wire form, mapping null back to +Inf.
func (w *Weights) UnmarshalJSON(b []byte) error {
	var in weightsJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	w.Rows, w.Cols = in.Rows, in.Cols
	w.Cost = make([]float64, len(in.Cost))
	for i, v := range in.Cost {
		if v == nil {
			w.Cost[i] = Inf
		} else {
			w.Cost[i] = *v
		}
	}

	return nil
}
