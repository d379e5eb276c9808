package sorttrace

import "fmt"

// Replay applies the data-moving steps of a trace to a copy of input and
// returns the resulting array. compare and placed steps are ignored.
func Replay(input []float64, steps []Step) ([]float64, error) {
	a := make([]float64, len(input))
	copy(a, input)
	for k, s := range steps {
		if err := Apply(a, s); err != nil {
			return nil, fmt.Errorf("step %d: %w", k, err)
		}
	}

	return a, nil
}

// Apply performs a single step on a in place.
func Apply(a []float64, s Step) error {
	n := len(a)
	switch s.Op {
	case OpCompare:
		if !inRange(s.I, n) || (s.J != -1 && !inRange(s.J, n)) {
			return fmt.Errorf("%w: compare(%d,%d) with n=%d", ErrInvalidTrace, s.I, s.J, n)
		}
	case OpSwap:
		if !inRange(s.I, n) || !inRange(s.J, n) {
			return fmt.Errorf("%w: swap(%d,%d) with n=%d", ErrInvalidTrace, s.I, s.J, n)
		}
		a[s.I], a[s.J] = a[s.J], a[s.I]
	case OpOverwrite:
		if !inRange(s.I, n) {
			return fmt.Errorf("%w: overwrite(%d) with n=%d", ErrInvalidTrace, s.I, n)
		}
		a[s.I] = s.Value
	case OpPlaced:
		if !inRange(s.I, n) {
			return fmt.Errorf("%w: placed(%d) with n=%d", ErrInvalidTrace, s.I, n)
		}
	default:
		return fmt.Errorf("%w: unknown op %v", ErrInvalidTrace, s.Op)
	}

	return nil
}

func inRange(i, n int) bool { return i >= 0 && i < n }

// ValidateTrace checks that res is a well-formed trace of input:
//   - every step is in range and replays cleanly;
//   - the last len(input) steps are placed(0..n-1) and no other placed step exists;
//   - Metrics equal the number of compare steps and swap+overwrite steps;
//   - Permutation is a permutation of 0..n-1 mapping input onto the replayed output.
func ValidateTrace(input []float64, res *Result) error {
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrInvalidTrace)
	}
	n := len(input)
	out, err := Replay(input, res.Steps)
	if err != nil {
		return err
	}

	tail := len(res.Steps) - n
	if tail < 0 {
		return fmt.Errorf("%w: %d steps cannot hold %d placed steps", ErrInvalidTrace, len(res.Steps), n)
	}
	var m Metrics
	for k, s := range res.Steps {
		switch s.Op {
		case OpCompare:
			m.Comparisons++
		case OpSwap, OpOverwrite:
			m.Writes++
		case OpPlaced:
			if k < tail || s.I != k-tail {
				return fmt.Errorf("%w: placed(%d) at step %d", ErrInvalidTrace, s.I, k)
			}
		}
		if k >= tail && s.Op != OpPlaced {
			return fmt.Errorf("%w: %v at step %d inside the placed tail", ErrInvalidTrace, s.Op, k)
		}
	}
	if m != res.Metrics {
		return fmt.Errorf("%w: metrics %+v, steps count %+v", ErrInvalidTrace, res.Metrics, m)
	}

	if len(res.Permutation) != n {
		return fmt.Errorf("%w: permutation length %d, want %d", ErrInvalidTrace, len(res.Permutation), n)
	}
	seen := make([]bool, n)
	for k, src := range res.Permutation {
		if !inRange(src, n) || seen[src] {
			return fmt.Errorf("%w: permutation entry %d=%d", ErrInvalidTrace, k, src)
		}
		seen[src] = true
		if input[src] != out[k] {
			return fmt.Errorf("%w: permutation maps input[%d]=%v to position %d holding %v",
				ErrInvalidTrace, src, input[src], k, out[k])
		}
	}

	return nil
}
