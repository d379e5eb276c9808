package arraygen

import (
	"math"

	"github.com/katalvlaran/algoviz/prng"
)

const (
	randomMax      = 100000
	nearlyMax      = 1000
	nearlySwapFrac = 0.05
	nearlyReach    = 5
	poolValueMax   = 100
	minPoolSize    = 2
)

// MakeArray returns n numbers of the requested kind, fully determined by
// (n, kind, seed). The result is freshly allocated and owned by the caller.
//
// Complexity: O(n) time and memory.
func MakeArray(n int, kind Kind, seed int64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	rng := prng.New(prng.HashSeed("arr", n, kind, seed))
	out := make([]float64, n)

	switch kind {
	case Reversed:
		for i := range out {
			out[i] = float64(n - i)
		}

	case Nearly:
		for i := range out {
			out[i] = float64(rng.Intn(nearlyMax))
		}
		swaps := max(1, int(math.Floor(float64(n)*nearlySwapFrac)))
		for k := 0; k < swaps; k++ {
			i := rng.Intn(n)
			j := min(n-1, i+rng.Intn(nearlyReach))
			out[i], out[j] = out[j], out[i]
		}

	case FewUnique:
		pool := make([]float64, max(minPoolSize, int(math.Floor(math.Log2(float64(n))))))
		for i := range pool {
			pool[i] = float64(rng.Intn(poolValueMax))
		}
		for i := range out {
			out[i] = pool[rng.Intn(len(pool))]
		}

	default:
		for i := range out {
			out[i] = float64(rng.Intn(randomMax))
		}
	}

	return out
}
