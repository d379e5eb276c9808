package sorttrace

// Merge traces bottom-up merge sort. Each pass copies the active window into
// an auxiliary buffer and merges it back: one compare per merge decision and
// one overwrite for every element written, leftovers included.
// Stable, O(n) auxiliary memory, O(n log n).
func Merge(a []float64) *Result { return run(a, mergeSort) }

// MeasureMerge is the headless variant of Merge.
func MeasureMerge(a []float64) Metrics { return measure(a, mergeSort) }

func mergeSort(t *tracer) {
	a := t.a
	n := len(a)
	aux := make([]float64, n)
	auxTag := make([]int, n)
	for sz := 1; sz < n; sz <<= 1 {
		for lo := 0; lo < n-sz; lo += sz << 1 {
			mid := lo + sz - 1
			hi := min(lo+(sz<<1)-1, n-1)
			copy(aux[lo:hi+1], a[lo:hi+1])
			copy(auxTag[lo:hi+1], t.tag[lo:hi+1])

			i, j := lo, mid+1
			for k := lo; k <= hi; k++ {
				switch {
				case i > mid:
					t.overwrite(k, aux[j], auxTag[j])
					j++
				case j > hi:
					t.overwrite(k, aux[i], auxTag[i])
					i++
				default:
					t.compare(i, j)
					if aux[j] < aux[i] {
						t.overwrite(k, aux[j], auxTag[j])
						j++
					} else {
						t.overwrite(k, aux[i], auxTag[i])
						i++
					}
				}
			}
		}
	}
}

// Quick traces recursive quicksort with a Lomuto partition (pivot = last
// element). Not stable, in place, O(n log n) average, O(n²) worst.
func Quick(a []float64) *Result { return run(a, quick) }

// MeasureQuick is the headless variant of Quick.
func MeasureQuick(a []float64) Metrics { return measure(a, quick) }

func quick(t *tracer) {
	quickRange(t, 0, len(t.a)-1)
}

func quickRange(t *tracer, lo, hi int) {
	if lo >= hi {
		return
	}
	p := lomuto(t, lo, hi)
	quickRange(t, lo, p-1)
	quickRange(t, p+1, hi)
}

// lomuto partitions a[lo..hi] around a[hi]: every element is compared with
// the pivot, elements <= pivot are swapped into the small region (only when
// they are not already there), and the pivot is swapped into its slot
// unless it is already there. Returns the pivot's final index.
func lomuto(t *tracer, lo, hi int) int {
	a := t.a
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		t.compare(j, hi)
		if a[j] <= pivot {
			t.swap(i, j)
			i++
		}
	}
	t.swap(i, hi)

	return i
}

// Heap traces heapsort: build a max-heap by sifting down from n/2-1 to 0,
// then repeatedly swap the root to the end and sift the new root.
// Not stable, in place, O(n log n).
func Heap(a []float64) *Result { return run(a, heapSort) }

// MeasureHeap is the headless variant of Heap.
func MeasureHeap(a []float64) Metrics { return measure(a, heapSort) }

func heapSort(t *tracer) {
	heapSortRange(t, 0, len(t.a)-1)
}

// heapSortRange heapsorts a[lo..hi] treating lo as the heap root.
func heapSortRange(t *tracer, lo, hi int) {
	size := hi - lo + 1
	for i := size/2 - 1; i >= 0; i-- {
		siftDown(t, lo, i, size)
	}
	for end := size - 1; end > 0; end-- {
		t.swap(lo, lo+end)
		siftDown(t, lo, 0, end)
	}
}

// siftDown restores the max-heap property below heap node i of a heap of
// the given size rooted at absolute index lo. Each sibling comparison and
// each parent-versus-larger-child comparison is a compare step.
func siftDown(t *tracer, lo, i, size int) {
	a := t.a
	for {
		l, r := 2*i+1, 2*i+2
		if l >= size {
			return
		}
		largest := l
		if r < size {
			t.compare(lo+l, lo+r)
			if a[lo+r] > a[lo+l] {
				largest = r
			}
		}
		t.compare(lo+i, lo+largest)
		if a[lo+i] >= a[lo+largest] {
			return
		}
		t.swap(lo+i, lo+largest)
		i = largest
	}
}
