package pathtrace

import (
	"fmt"

	"github.com/katalvlaran/algoviz/grid"
)

// Mark is the overlay state of one cell; several bits may be set.
type Mark uint8

const (
	// MarkFrontier is set once the cell has been discovered.
	MarkFrontier Mark = 1 << iota
	// MarkVisited is set once the cell has been expanded.
	MarkVisited
	// MarkPath is set when the cell lies on the final route.
	MarkPath
)

// Has reports whether all bits of f are set.
func (m Mark) Has(f Mark) bool { return m&f == f }

// State is the overlay produced by applying path steps to a grid.
type State struct {
	Rows  int
	Cols  int
	Marks []Mark
	// Visited and PathLen recount the applied steps.
	Visited int
	PathLen int
	Done    bool
	// Last is the cell touched by the most recent step.
	Last grid.Pos

	pathCells int
}

// NewState returns an empty overlay for g.
func NewState(g *grid.Grid) *State {
	return &State{Rows: g.Rows, Cols: g.Cols, Marks: make([]Mark, g.Rows*g.Cols)}
}

// At returns the overlay of p.
func (s *State) At(p grid.Pos) Mark { return s.Marks[p.R*s.Cols+p.C] }

// Apply folds one step into the overlay.
func (s *State) Apply(st Step) error {
	if s.Done {
		return fmt.Errorf("%w: %v after done", ErrInvalidTrace, st.Kind)
	}
	if st.Kind == Done {
		s.Done = true
		return nil
	}
	p := st.Pos
	if p.R < 0 || p.C < 0 || p.R >= s.Rows || p.C >= s.Cols {
		return fmt.Errorf("%w: %v at %+v outside %dx%d", ErrInvalidTrace, st.Kind, p, s.Rows, s.Cols)
	}
	i := p.R*s.Cols + p.C
	switch st.Kind {
	case Frontier:
		s.Marks[i] |= MarkFrontier
	case Visit:
		s.Marks[i] |= MarkVisited
		s.Visited++
	case Path:
		s.Marks[i] |= MarkPath
		s.pathCells++
		s.PathLen = s.pathCells - 1
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidTrace, st.Kind)
	}
	s.Last = p

	return nil
}

// Replay applies steps in order onto a fresh overlay of g.
func Replay(g *grid.Grid, steps []Step) (*State, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	s := NewState(g)
	for k, st := range steps {
		if err := s.Apply(st); err != nil {
			return nil, fmt.Errorf("step %d: %w", k, err)
		}
	}

	return s, nil
}
