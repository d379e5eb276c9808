package prng

import (
	"fmt"
	"strconv"
)

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619

	// tokenSep joins tokens before hashing; part of the seed contract.
	tokenSep = '|'

	mulberryIncrement uint32 = 0x6D2B79F5

	// twoPow32 scales a uint32 into [0,1).
	twoPow32 = 4294967296.0
)

// HashSeed derives a stable 32-bit seed from an ordered tuple of tokens.
// Tokens are rendered to text (strings verbatim, integers in base 10, floats
// in shortest round-trip form, booleans as true/false, fmt.Stringer via
// String), joined by "|" and folded byte by byte through FNV-1a.
//
// Complexity: O(total token length).
func HashSeed(tokens ...any) uint32 {
	h := fnvOffset
	for i, tok := range tokens {
		if i > 0 {
			h ^= uint32(tokenSep)
			h *= fnvPrime
		}
		s := tokenText(tok)
		for j := 0; j < len(s); j++ {
			h ^= uint32(s[j])
			h *= fnvPrime
		}
	}

	return h
}

// tokenText renders a single HashSeed token.
func tokenText(tok any) string {
	switch v := tok.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Mulberry32 is a deterministic 32-bit pseudo-random stream.
// The zero value is a valid stream seeded with 0.
type Mulberry32 struct {
	state uint32
}

// New returns a stream initialised from seed.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// ForAlgorithm returns the stream path emitters use for random tie-breaking
// under the given user seed.
func ForAlgorithm(seed int64) *Mulberry32 {
	return New(HashSeed("algo", seed))
}

// Uint32 advances the state and returns the next 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	m.state += mulberryIncrement
	t := m.state
	r := (t ^ (t >> 15)) * (1 | t)
	r ^= r + (r^(r>>7))*(61|r)

	return r ^ (r >> 14)
}

// Float64 returns the next value in [0,1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / twoPow32
}

// Intn returns a value in [0,n) computed as floor(Float64()*n).
// For n <= 0 it returns 0 without advancing the stream.
func (m *Mulberry32) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	return int(m.Float64() * float64(n))
}

// Shuffle permutes n elements in place using Fisher–Yates from the end:
// for i = n-1..1, j = Intn(i+1), swap(i, j). A nil stream leaves the order
// untouched.
func Shuffle(m *Mulberry32, n int, swap func(i, j int)) {
	if m == nil || n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := m.Intn(i + 1)
		swap(i, j)
	}
}
