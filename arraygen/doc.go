// Package arraygen produces the deterministic input arrays the sort
// engines and the complexity sweep run on.
//
// What
//
//   - MakeArray(n, kind, seed) returns n numbers shaped by kind:
//   - Random:    uniform integers in [0, 100000).
//   - Reversed:  n, n-1, …, 1.
//   - Nearly:    uniform integers in [0, 1000) followed by max(1, ⌊0.05n⌋)
//     short-range swaps (partner at most 4 positions to the right).
//   - FewUnique: a pool of max(2, ⌊log2 n⌋) values in [0, 100); every
//     element is drawn independently from the pool.
//
// Determinism
//
//	The only randomness source is prng.New(prng.HashSeed("arr", n, kind, seed)).
//	Identical (n, kind, seed) always yield identical arrays.
//
// Errors
//
//   - ErrUnknownKind from ParseKind for unrecognised names. MakeArray itself
//     never fails: n <= 0 yields an empty slice and an unknown Kind value is
//     generated as Random.
package arraygen
