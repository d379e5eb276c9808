// Package prng provides the deterministic randomness every algoviz
// generator is built on: a 32-bit string hash that turns parameter tuples
// into seeds, and a mulberry32 stream seeded from it.
//
// What
//
//   - HashSeed folds any tuple of tokens ("arr", 64, "random", 7) into a
//     uint32 seed using FNV-1a over the tokens joined by "|".
//   - Mulberry32 is a tiny 32-bit generator returning floats in [0,1).
//   - Shuffle performs a Fisher–Yates shuffle driven by a Mulberry32 stream.
//
// Why
//
//   - Demos must be reproducible: the same (seed, parameters) always yields
//     the same array, maze or tie-breaking order, on every platform.
//   - Only integer arithmetic is used; no floating point enters the state.
//
// Determinism
//
//	The mixing constants are part of the public contract. Changing them
//	changes every "reproducible" array, maze and weight map downstream.
//
// Concurrency
//
//	A *Mulberry32 is NOT goroutine-safe. Each generator call creates its own
//	stream; streams are never shared between unrelated generation calls.
//
// Complexity
//
//   - HashSeed: O(total token length).
//   - Float64/Uint32/Intn: O(1).
//   - Shuffle: O(n) time, O(1) extra space.
package prng
