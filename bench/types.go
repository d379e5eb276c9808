package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/arraygen"
)

// Sentinel errors.
var (
	// ErrNoAlgorithms is returned when a sweep names no algorithm.
	ErrNoAlgorithms = errors.New("bench: no algorithms selected")
	// ErrBadRange is returned for minN < 1, maxN < minN or points < 1.
	ErrBadRange = errors.New("bench: invalid size range")
	// ErrBadTrials is returned when trials < 1.
	ErrBadTrials = errors.New("bench: trials must be positive")
	// ErrUnknownMetric is returned by ParseMetric.
	ErrUnknownMetric = errors.New("bench: unknown metric")
	// ErrUnknownFormat is returned by NewRenderer.
	ErrUnknownFormat = errors.New("bench: unknown output format")
	// ErrNotEnoughPoints is returned by Fit with fewer than two usable points.
	ErrNotEnoughPoints = errors.New("bench: need at least two positive points to fit")
)

// Metric selects which measurement a rendering or fit uses.
type Metric uint8

const (
	// Runtime is wall time per call in milliseconds.
	Runtime Metric = iota
	// Comparisons is the comparison count.
	Comparisons
	// Writes is the swap + overwrite count.
	Writes
)

var metricNames = [...]string{
	Runtime:     "runtime",
	Comparisons: "comparisons",
	Writes:      "writes",
}

func (m Metric) String() string {
	if int(m) < len(metricNames) {
		return metricNames[m]
	}

	return fmt.Sprintf("metric(%d)", uint8(m))
}

// ParseMetric accepts "runtime", "comparisons" and "writes".
func ParseMetric(s string) (Metric, error) {
	for i, name := range metricNames {
		if name == s {
			return Metric(i), nil
		}
	}

	return Runtime, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(b []byte) error {
	v, err := ParseMetric(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// SweepConfig describes one sweep.
type SweepConfig struct {
	Algorithms []string      `json:"algorithms" yaml:"algorithms"`
	Kind       arraygen.Kind `json:"kind" yaml:"kind"`
	MinN       int           `json:"minN" yaml:"minN"`
	MaxN       int           `json:"maxN" yaml:"maxN"`
	Points     int           `json:"points" yaml:"points"`
	Trials     int           `json:"trials" yaml:"trials"`
	Seed       int64         `json:"seed" yaml:"seed"`
}

// DefaultSweepConfig mirrors the explorer defaults: six classic sorts on
// random input, 7 sizes from 100 to 2000, 3 trials, seed 7.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Algorithms: []string{"bubble", "insertion", "selection", "merge", "quick", "heap"},
		Kind:       arraygen.Random,
		MinN:       100,
		MaxN:       2000,
		Points:     7,
		Trials:     3,
		Seed:       7,
	}
}

// Validate checks the sweep bounds.
func (c SweepConfig) Validate() error {
	if len(c.Algorithms) == 0 {
		return ErrNoAlgorithms
	}
	if c.MinN < 1 || c.MaxN < c.MinN || c.Points < 1 {
		return fmt.Errorf("%w: minN=%d maxN=%d points=%d", ErrBadRange, c.MinN, c.MaxN, c.Points)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: %d", ErrBadTrials, c.Trials)
	}

	return nil
}

// Summary condenses the trials of one (size, algorithm) cell.
type Summary struct {
	Median float64 `json:"median" yaml:"median"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdDev" yaml:"stdDev"`
	// CI95 is the half-width of the 95% Student-t interval around Mean.
	CI95 float64 `json:"ci95" yaml:"ci95"`
}

// Cell is the result of one algorithm at one size.
type Cell struct {
	Algorithm   string  `json:"algorithm" yaml:"algorithm"`
	Comparisons Summary `json:"comparisons" yaml:"comparisons"`
	Writes      Summary `json:"writes" yaml:"writes"`
	RuntimeMs   Summary `json:"runtimeMs" yaml:"runtimeMs"`
}

// Get returns the summary for m.
func (c Cell) Get(m Metric) Summary {
	switch m {
	case Comparisons:
		return c.Comparisons
	case Writes:
		return c.Writes
	default:
		return c.RuntimeMs
	}
}

// Row holds every algorithm's cell at one size, in sweep order.
type Row struct {
	N     int    `json:"n" yaml:"n"`
	Cells []Cell `json:"cells" yaml:"cells"`
}

// Growth is the fitted order of growth of one algorithm.
type Growth struct {
	Algorithm   string `json:"algorithm" yaml:"algorithm"`
	Comparisons Fit    `json:"comparisons" yaml:"comparisons"`
	Writes      Fit    `json:"writes" yaml:"writes"`
}

// Report is the outcome of a sweep. Rows holds only complete sizes; a
// cancelled sweep returns the rows finished so far with Partial set.
type Report struct {
	Config  SweepConfig `json:"config" yaml:"config"`
	Sizes   []int       `json:"sizes" yaml:"sizes"`
	Rows    []Row       `json:"rows" yaml:"rows"`
	Growth  []Growth    `json:"growth,omitempty" yaml:"growth,omitempty"`
	Partial bool        `json:"partial,omitempty" yaml:"partial,omitempty"`
}

// Series returns (n, median of m) for one algorithm across all rows.
func (r *Report) Series(algo string, m Metric) ([]int, []float64) {
	ns := make([]int, 0, len(r.Rows))
	ys := make([]float64, 0, len(r.Rows))
	for _, row := range r.Rows {
		for _, c := range row.Cells {
			if c.Algorithm == algo {
				ns = append(ns, row.N)
				ys = append(ys, c.Get(m).Median)
			}
		}
	}

	return ns, ys
}
