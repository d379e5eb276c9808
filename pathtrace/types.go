package pathtrace

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/grid"
)

// Sentinel errors.
var (
	// ErrNilGrid is returned when the grid is nil or empty.
	ErrNilGrid = errors.New("pathtrace: grid is nil or empty")
	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("pathtrace: endpoint out of bounds")
	// ErrBlockedEndpoint is returned when start or goal is a wall.
	ErrBlockedEndpoint = errors.New("pathtrace: endpoint is a wall")
	// ErrWeightsMismatch is returned when weights and grid differ in shape.
	ErrWeightsMismatch = errors.New("pathtrace: weights do not match grid")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathtrace: invalid option supplied")
	// ErrUnknownAlgorithm is returned by Lookup for unregistered keys.
	ErrUnknownAlgorithm = errors.New("pathtrace: unknown algorithm")
	// ErrInvalidTrace is returned by Replay for steps that do not fit the grid.
	ErrInvalidTrace = errors.New("pathtrace: invalid trace")
)

// Kind is the type of a path step.
type Kind uint8

const (
	// Frontier marks a cell discovered (or improved) and queued.
	Frontier Kind = iota
	// Visit marks a cell taken from the queue and expanded.
	Visit
	// Path marks a cell of the final route.
	Path
	// Done terminates every trace.
	Done
)

var kindNames = [...]string{
	Frontier: "frontier",
	Visit:    "visit",
	Path:     "path",
	Done:     "done",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Step is one event of a path search. Pos is unused for Done.
type Step struct {
	Kind Kind
	Pos  grid.Pos
}

// MarshalJSON emits {"type":"visit","r":1,"c":2} or {"type":"done"}.
func (s Step) MarshalJSON() ([]byte, error) {
	if s.Kind == Done {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{s.Kind.String()})
	}

	return json.Marshal(struct {
		Type string `json:"type"`
		R    int    `json:"r"`
		C    int    `json:"c"`
	}{s.Kind.String(), s.Pos.R, s.Pos.C})
}

// Metrics are the aggregate counters of one search.
type Metrics struct {
	Visited int `json:"visited" yaml:"visited"`
	PathLen int `json:"pathLen" yaml:"pathLen"`
}

// Result is the complete output of one emitter call.
type Result struct {
	Steps   []Step  `json:"steps"`
	Metrics Metrics `json:"metrics"`
	// Found reports whether the goal was reached.
	Found bool `json:"found"`
}

// Func is the emitter contract.
type Func func(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Result, error)
