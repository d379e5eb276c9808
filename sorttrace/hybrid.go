package sorttrace

import "math/bits"

const (
	// timMinRun is the length every natural run is padded to.
	timMinRun = 32
	// introCutoff is the partition size at or below which IntroSort
	// switches to binary insertion.
	introCutoff = 16
)

// Tim traces a simplified TimSort:
//  1. countRun finds the natural run at the cursor, reversing it (by swaps)
//     when it is strictly descending;
//  2. the run is extended to at least 32 elements by binary insertion;
//  3. adjacent runs are merged pairwise, bottom-up, until one remains.
//
// Stable, O(n) auxiliary memory, O(n log n).
func Tim(a []float64) *Result { return run(a, tim) }

// MeasureTim is the headless variant of Tim.
func MeasureTim(a []float64) Metrics { return measure(a, tim) }

func tim(t *tracer) {
	n := len(t.a)
	if n < 2 {
		return
	}

	// runs holds the start of every run plus n as sentinel.
	runs := []int{0}
	for lo := 0; lo < n; {
		natural := countRun(t, lo)
		end := min(n, max(natural, lo+timMinRun))
		binaryInsertion(t, lo, natural, end-1)
		runs = append(runs, end)
		lo = end
	}

	for len(runs) > 2 {
		next := []int{0}
		for k := 0; k+1 < len(runs); k += 2 {
			if k+2 < len(runs) {
				mergeRuns(t, runs[k], runs[k+1]-1, runs[k+2]-1)
				next = append(next, runs[k+2])
			} else {
				next = append(next, runs[k+1])
			}
		}
		runs = next
	}
}

// countRun returns the exclusive end of the run starting at lo. A strictly
// descending run is reversed in place so that every run ends ascending.
func countRun(t *tracer, lo int) int {
	a := t.a
	n := len(a)
	hi := lo + 1
	if hi >= n {
		return n
	}
	t.compare(lo, hi)
	hi++
	if a[lo+1] < a[lo] {
		for hi < n {
			t.compare(hi-1, hi)
			if !(a[hi] < a[hi-1]) {
				break
			}
			hi++
		}
		reverseRange(t, lo, hi-1)

		return hi
	}
	for hi < n {
		t.compare(hi-1, hi)
		if a[hi] < a[hi-1] {
			break
		}
		hi++
	}

	return hi
}

func reverseRange(t *tracer, lo, hi int) {
	for ; lo < hi; lo, hi = lo+1, hi-1 {
		t.swap(lo, hi)
	}
}

// binaryInsertion extends the sorted prefix a[lo:start] to cover a[lo..hi],
// locating each insertion point with binarySearchPos.
func binaryInsertion(t *tracer, lo, start, hi int) {
	a := t.a
	if start <= lo {
		start = lo + 1
	}
	for i := start; i <= hi; i++ {
		key, keyTag := a[i], t.tag[i]
		pos := binarySearchPos(t, lo, i-1, key)
		for j := i; j > pos; j-- {
			t.overwrite(j, a[j-1], t.tag[j-1])
		}
		t.overwrite(pos, key, keyTag)
	}
}

// binarySearchPos returns the first index in the sorted a[lo..hi] holding a
// value greater than key. Equal keys go right, which keeps the sort stable.
// Each probe is a compare against the held key (j = -1).
func binarySearchPos(t *tracer, lo, hi int, key float64) int {
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		t.compare(mid, -1)
		if t.a[mid] <= key {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return lo
}

// mergeRuns merges the sorted a[lo..mid] and a[mid+1..hi]. Compare steps
// name the source positions the two heads came from.
func mergeRuns(t *tracer, lo, mid, hi int) {
	left := append([]float64(nil), t.a[lo:mid+1]...)
	right := append([]float64(nil), t.a[mid+1:hi+1]...)
	leftTag := append([]int(nil), t.tag[lo:mid+1]...)
	rightTag := append([]int(nil), t.tag[mid+1:hi+1]...)

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		t.compare(lo+i, mid+1+j)
		if left[i] <= right[j] {
			t.overwrite(k, left[i], leftTag[i])
			i++
		} else {
			t.overwrite(k, right[j], rightTag[j])
			j++
		}
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		t.overwrite(k, left[i], leftTag[i])
	}
	for ; j < len(right); j, k = j+1, k+1 {
		t.overwrite(k, right[j], rightTag[j])
	}
}

// Intro traces IntroSort: Lomuto quicksort with a depth budget of
// 2*floor(log2 n), binary insertion for partitions of 16 or fewer elements
// and heapsort for any partition reached with the budget exhausted.
// The smaller side recurses, the larger side loops.
// Not stable, in place, O(n log n) worst case.
func Intro(a []float64) *Result { return run(a, intro) }

// MeasureIntro is the headless variant of Intro.
func MeasureIntro(a []float64) Metrics { return measure(a, intro) }

func intro(t *tracer) {
	n := len(t.a)
	if n < 2 {
		return
	}
	introRange(t, 0, n-1, 2*(bits.Len(uint(n))-1))
}

func introRange(t *tracer, lo, hi, depth int) {
	for lo < hi {
		if hi-lo+1 <= introCutoff {
			binaryInsertion(t, lo, lo+1, hi)
			return
		}
		if depth == 0 {
			heapSortRange(t, lo, hi)
			return
		}
		depth--
		p := lomuto(t, lo, hi)
		if p-lo < hi-p {
			introRange(t, lo, p-1, depth)
			lo = p + 1
		} else {
			introRange(t, p+1, hi, depth)
			hi = p - 1
		}
	}
}
