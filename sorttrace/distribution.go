package sorttrace

import "math"

const (
	// countingMaxRange is the widest value range Counting handles itself.
	countingMaxRange = 4096
	// radixBase is the digit base of Radix.
	radixBase = 10
	// maxExactInt is the largest float64 below which every integer is exact.
	maxExactInt = 1 << 53
)

// Counting traces counting sort: prefix-sum histogram, back-to-front
// placement into a buffer, then one overwrite per index. Stable, O(n+k).
//
// Inputs that are not all integers, or whose range max-min+1 exceeds 4096,
// are sorted by Insertion instead; the result is identical to calling
// Insertion directly.
func Counting(a []float64) *Result { return run(a, counting) }

// MeasureCounting is the headless variant of Counting.
func MeasureCounting(a []float64) Metrics { return measure(a, counting) }

func counting(t *tracer) {
	a := t.a
	n := len(a)
	if n < 2 {
		return
	}
	lo, hi, ok := integerBounds(a)
	if !ok || hi-lo+1 > countingMaxRange {
		insertion(t)
		return
	}

	base := int(lo)
	count := make([]int, int(hi-lo)+1)
	for _, v := range a {
		count[int(v)-base]++
	}
	for i := 1; i < len(count); i++ {
		count[i] += count[i-1]
	}
	out := make([]float64, n)
	outTag := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		k := int(a[i]) - base
		count[k]--
		out[count[k]] = a[i]
		outTag[count[k]] = t.tag[i]
	}
	for i := 0; i < n; i++ {
		t.overwrite(i, out[i], outTag[i])
	}
}

// integerBounds returns min and max of a when every value is an exactly
// representable integer.
func integerBounds(a []float64) (lo, hi float64, ok bool) {
	lo, hi = a[0], a[0]
	for _, v := range a {
		if v != math.Trunc(v) || math.Abs(v) >= maxExactInt {
			return 0, 0, false
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi, true
}

// Radix traces LSD radix sort in base 10: one stable counting pass per
// decimal digit, each ending with one overwrite per index. Stable, O(d·n).
//
// Inputs containing a negative or non-integer value are sorted by Counting
// instead (which may in turn use Insertion).
func Radix(a []float64) *Result { return run(a, radix) }

// MeasureRadix is the headless variant of Radix.
func MeasureRadix(a []float64) Metrics { return measure(a, radix) }

func radix(t *tracer) {
	a := t.a
	n := len(a)
	if n < 2 {
		return
	}
	_, hi, ok := integerBounds(a)
	if !ok || hasNegative(a) {
		counting(t)
		return
	}

	maxV := uint64(hi)
	out := make([]float64, n)
	outTag := make([]int, n)
	for exp := uint64(1); maxV/exp > 0; exp *= radixBase {
		var count [radixBase]int
		for _, v := range a {
			count[uint64(v)/exp%radixBase]++
		}
		for d := 1; d < radixBase; d++ {
			count[d] += count[d-1]
		}
		for i := n - 1; i >= 0; i-- {
			d := uint64(a[i]) / exp % radixBase
			count[d]--
			out[count[d]] = a[i]
			outTag[count[d]] = t.tag[i]
		}
		for i := 0; i < n; i++ {
			t.overwrite(i, out[i], outTag[i])
		}
	}
}

func hasNegative(a []float64) bool {
	for _, v := range a {
		if v < 0 {
			return true
		}
	}

	return false
}
