package player

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathtrace"
)

// PathPlayer replays a path trace as a cell overlay on its grid.
type PathPlayer struct {
	g      *grid.Grid
	steps  []pathtrace.Step
	state  *pathtrace.State
	cursor int
}

// NewPath checks that res replays cleanly on g and returns a player
// positioned before the first step. Like NewSort it copies the steps.
func NewPath(g *grid.Grid, res *pathtrace.Result) (*PathPlayer, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if _, err := pathtrace.Replay(g, res.Steps); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	p := &PathPlayer{g: g, steps: slices.Clone(res.Steps)}
	p.Reset()

	return p, nil
}

// Len is the number of steps.
func (p *PathPlayer) Len() int { return len(p.steps) }

// Cursor is the number of steps applied so far.
func (p *PathPlayer) Cursor() int { return p.cursor }

// Done reports whether every step has been applied.
func (p *PathPlayer) Done() bool { return p.cursor >= len(p.steps) }

// State returns the overlay at the cursor. It is owned by the player and
// changes on the next Advance, Reset or Seek.
func (p *PathPlayer) State() *pathtrace.State { return p.state }

// Grid returns the grid being explored.
func (p *PathPlayer) Grid() *grid.Grid { return p.g }

// Current returns the most recently applied step.
func (p *PathPlayer) Current() (pathtrace.Step, bool) {
	if p.cursor == 0 {
		return pathtrace.Step{}, false
	}

	return p.steps[p.cursor-1], true
}

// Advance applies the next step and returns it.
func (p *PathPlayer) Advance() (pathtrace.Step, bool) {
	if p.Done() {
		return pathtrace.Step{}, false
	}
	s := p.steps[p.cursor]
	if err := p.state.Apply(s); err != nil {
		panic(fmt.Sprintf("player: step %d: %v", p.cursor, err))
	}
	p.cursor++

	return s, true
}

// AdvanceN applies up to k steps and returns how many were applied.
func (p *PathPlayer) AdvanceN(k int) int {
	n := 0
	for ; n < k; n++ {
		if _, ok := p.Advance(); !ok {
			break
		}
	}

	return n
}

// Reset clears the overlay.
func (p *PathPlayer) Reset() {
	p.state = pathtrace.NewState(p.g)
	p.cursor = 0
}

// Seek moves the cursor to i, clamped to [0, Len].
func (p *PathPlayer) Seek(i int) {
	i = max(0, min(i, len(p.steps)))
	if i < p.cursor {
		p.Reset()
	}
	p.AdvanceN(i - p.cursor)
}
