package sorttrace

// Bubble traces bubble sort with full passes (no early exit).
// Stable, in place, O(n²) comparisons always.
func Bubble(a []float64) *Result { return run(a, bubble) }

// MeasureBubble is the headless variant of Bubble.
func MeasureBubble(a []float64) Metrics { return measure(a, bubble) }

func bubble(t *tracer) {
	a := t.a
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			t.compare(j, j+1)
			if a[j] > a[j+1] {
				t.swap(j, j+1)
			}
		}
	}
}

// Insertion traces insertion sort: one compare before every shift, one
// overwrite per shift and one final overwrite inserting the key.
// Stable, in place, O(n²).
func Insertion(a []float64) *Result { return run(a, insertion) }

// MeasureInsertion is the headless variant of Insertion.
func MeasureInsertion(a []float64) Metrics { return measure(a, insertion) }

func insertion(t *tracer) {
	a := t.a
	for i := 1; i < len(a); i++ {
		key, keyTag := a[i], t.tag[i]
		j := i - 1
		for j >= 0 {
			t.compare(j, j+1)
			if a[j] <= key {
				break
			}
			t.overwrite(j+1, a[j], t.tag[j])
			j--
		}
		t.overwrite(j+1, key, keyTag)
	}
}

// Selection traces selection sort: compare(min, j) during each scan and at
// most one swap per outer iteration. Not stable, in place, O(n²).
func Selection(a []float64) *Result { return run(a, selection) }

// MeasureSelection is the headless variant of Selection.
func MeasureSelection(a []float64) Metrics { return measure(a, selection) }

func selection(t *tracer) {
	a := t.a
	n := len(a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			t.compare(minIdx, j)
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		t.swap(i, minIdx)
	}
}

// Pancake traces pancake sort: find the maximum of the unsorted prefix,
// flip it to the front, then flip it into place. Every flip is recorded as
// its individual swaps. Not stable, in place, O(n²).
func Pancake(a []float64) *Result { return run(a, pancake) }

// MeasurePancake is the headless variant of Pancake.
func MeasurePancake(a []float64) Metrics { return measure(a, pancake) }

func pancake(t *tracer) {
	a := t.a
	flip := func(k int) {
		for i, j := 0, k; i < j; i, j = i+1, j-1 {
			t.swap(i, j)
		}
	}
	for curr := len(a) - 1; curr > 0; curr-- {
		mi := 0
		for i := 1; i <= curr; i++ {
			t.compare(i, mi)
			if a[i] > a[mi] {
				mi = i
			}
		}
		if mi == curr {
			continue
		}
		if mi > 0 {
			flip(mi)
		}
		flip(curr)
	}
}
