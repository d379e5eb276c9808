// Package sorttrace runs classic sorting algorithms while recording a
// deterministic, replayable trace of every comparison and write.
//
// What
//
//   - Every emitter has the shape func([]float64) *Result and never mutates
//     its argument; it sorts a private copy.
//   - A Result carries the ordered Steps, aggregate Metrics (comparisons,
//     writes) and the final Permutation (output position → input index).
//   - Steps are compare(i,j), swap(i,j), overwrite(i,value) and placed(i).
//     After all data-moving steps every index gets exactly one placed step,
//     in order 0..n-1. placed is bookkeeping only and never counted.
//   - Measure* functions run the very same code with recording disabled and
//     return only Metrics, so counts are identical while memory stays O(n).
//
// Algorithms
//
//	bubble, insertion, selection, merge, quick, heap, counting, radix,
//	pancake, tim, intro (see Registry for labels and complexity notes).
//
// Fallbacks
//
//	Fallbacks are guard clauses at the top of an algorithm that hand the
//	untouched input to another algorithm:
//	  - Counting requires integer values spanning at most 4096 distinct
//	    keys; otherwise it runs Insertion.
//	  - Radix requires non-negative integers; otherwise it runs Counting
//	    (which may in turn run Insertion).
//	A fallback run is step-for-step identical to calling the fallback directly.
//
// Replay
//
//	Replay applies swaps and overwrites of a trace to a copy of the input and
//	reproduces the sorted output exactly. ValidateTrace checks structure,
//	metric totals and the permutation.
//
// Errors
//
//   - ErrUnknownAlgorithm from Lookup and Measure.
//   - ErrInvalidTrace from Replay and ValidateTrace.
//
// Emitters never fail and never panic on finite input, including empty and
// single-element slices.
package sorttrace
