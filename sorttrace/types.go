package sorttrace

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrUnknownAlgorithm indicates a registry key that does not exist.
	ErrUnknownAlgorithm = errors.New("sorttrace: unknown algorithm")
	// ErrInvalidTrace indicates a trace that cannot be applied to its input.
	ErrInvalidTrace = errors.New("sorttrace: invalid trace")
)

// Op is the kind of a sort step.
type Op uint8

const (
	// OpCompare compares positions I and J (J == -1: against a held key).
	OpCompare Op = iota
	// OpSwap exchanges the values at I and J.
	OpSwap
	// OpOverwrite stores Value at I.
	OpOverwrite
	// OpPlaced marks I as final. Never counted as a metric.
	OpPlaced
)

var opNames = [...]string{
	OpCompare:   "compare",
	OpSwap:      "swap",
	OpOverwrite: "overwrite",
	OpPlaced:    "placed",
}

// String returns the wire name of the op.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return fmt.Sprintf("op(%d)", uint8(o))
}

// Step is one atomic, externally observable event of a sort.
// Which fields are meaningful depends on Op.
type Step struct {
	Op    Op
	I     int
	J     int
	Value float64
}

// MarshalJSON emits only the fields meaningful for the op, e.g.
// {"type":"compare","i":0,"j":1} or {"type":"overwrite","i":3,"value":7}.
func (s Step) MarshalJSON() ([]byte, error) {
	switch s.Op {
	case OpCompare, OpSwap:
		return json.Marshal(struct {
			Type string `json:"type"`
			I    int    `json:"i"`
			J    int    `json:"j"`
		}{s.Op.String(), s.I, s.J})
	case OpOverwrite:
		return json.Marshal(struct {
			Type  string  `json:"type"`
			I     int     `json:"i"`
			Value float64 `json:"value"`
		}{s.Op.String(), s.I, s.Value})
	default:
		return json.Marshal(struct {
			Type string `json:"type"`
			I    int    `json:"i"`
		}{s.Op.String(), s.I})
	}
}

// Metrics are the aggregate counters of one run.
type Metrics struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Writes      int `json:"writes" yaml:"writes"`
}

// Result is the complete, self-contained output of one emitter call.
type Result struct {
	Steps   []Step  `json:"steps"`
	Metrics Metrics `json:"metrics"`
	// Permutation[k] is the input index of the element that ends at k.
	Permutation []int `json:"permutation"`
}

// Func is the emitter contract.
type Func func(a []float64) *Result

// MeasureFunc is the headless contract: metrics only, no trace.
type MeasureFunc func(a []float64) Metrics
