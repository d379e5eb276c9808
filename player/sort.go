package player

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/algoviz/sorttrace"
)

// ErrNilResult is returned when a player is built from a nil result.
var ErrNilResult = errors.New("player: result is nil")

// SortPlayer replays a sort trace over a copy of its input.
type SortPlayer struct {
	input  []float64
	steps  []sorttrace.Step
	arr    []float64
	placed []bool
	cursor int
	m      sorttrace.Metrics
}

// NewSort checks that res replays cleanly over input and returns a player
// positioned before the first step. The player keeps its own copy of the
// steps, so later changes to res do not affect it.
func NewSort(input []float64, res *sorttrace.Result) (*SortPlayer, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if _, err := sorttrace.Replay(input, res.Steps); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	p := &SortPlayer{
		input: append([]float64(nil), input...),
		steps: slices.Clone(res.Steps),
	}
	p.Reset()

	return p, nil
}

// Len is the number of steps.
func (p *SortPlayer) Len() int { return len(p.steps) }

// Cursor is the number of steps applied so far.
func (p *SortPlayer) Cursor() int { return p.cursor }

// Done reports whether every step has been applied.
func (p *SortPlayer) Done() bool { return p.cursor >= len(p.steps) }

// Array returns a copy of the working array at the cursor.
func (p *SortPlayer) Array() []float64 { return append([]float64(nil), p.arr...) }

// Placed reports whether index i has been marked final.
func (p *SortPlayer) Placed(i int) bool { return i >= 0 && i < len(p.placed) && p.placed[i] }

// Metrics returns the counters accumulated up to the cursor.
func (p *SortPlayer) Metrics() sorttrace.Metrics { return p.m }

// Current returns the most recently applied step.
func (p *SortPlayer) Current() (sorttrace.Step, bool) {
	if p.cursor == 0 {
		return sorttrace.Step{}, false
	}

	return p.steps[p.cursor-1], true
}

// Advance applies the next step and returns it.
func (p *SortPlayer) Advance() (sorttrace.Step, bool) {
	if p.Done() {
		return sorttrace.Step{}, false
	}
	s := p.steps[p.cursor]
	if err := sorttrace.Apply(p.arr, s); err != nil {
		// steps are a private copy validated by NewSort
		panic(fmt.Sprintf("player: step %d: %v", p.cursor, err))
	}
	switch s.Op {
	case sorttrace.OpCompare:
		p.m.Comparisons++
	case sorttrace.OpSwap, sorttrace.OpOverwrite:
		p.m.Writes++
	case sorttrace.OpPlaced:
		p.placed[s.I] = true
	}
	p.cursor++

	return s, true
}

// AdvanceN applies up to k steps and returns how many were applied.
func (p *SortPlayer) AdvanceN(k int) int {
	n := 0
	for ; n < k; n++ {
		if _, ok := p.Advance(); !ok {
			break
		}
	}

	return n
}

// Reset rewinds to the unsorted input.
func (p *SortPlayer) Reset() {
	p.arr = append(p.arr[:0], p.input...)
	p.placed = make([]bool, len(p.input))
	p.cursor = 0
	p.m = sorttrace.Metrics{}
}

// Seek moves the cursor to i, clamped to [0, Len].
func (p *SortPlayer) Seek(i int) {
	i = max(0, min(i, len(p.steps)))
	if i < p.cursor {
		p.Reset()
	}
	p.AdvanceN(i - p.cursor)
}
