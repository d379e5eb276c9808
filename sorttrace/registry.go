package sorttrace

import "fmt"

// Entry describes one registered sort algorithm.
type Entry struct {
	Key         string      `json:"key" yaml:"key"`
	Label       string      `json:"label" yaml:"label"`
	BigO        string      `json:"bigO" yaml:"bigO"`
	Description string      `json:"description" yaml:"description"`
	Stable      bool        `json:"stable" yaml:"stable"`
	InPlace     bool        `json:"inPlace" yaml:"inPlace"`
	Fn          Func        `json:"-" yaml:"-"`
	Measure     MeasureFunc `json:"-" yaml:"-"`
}

var registry = []Entry{
	{"bubble", "Bubble Sort", "O(n²)", "Repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.", true, true, Bubble, MeasureBubble},
	{"insertion", "Insertion Sort", "O(n²)", "Builds the final sorted array one item at a time by inserting into the sorted portion.", true, true, Insertion, MeasureInsertion},
	{"selection", "Selection Sort", "O(n²)", "Finds the minimum and moves it to the front repeatedly.", false, true, Selection, MeasureSelection},
	{"merge", "Merge Sort", "O(n log n)", "Divide and conquer; merge sorted halves.", true, false, Merge, MeasureMerge},
	{"quick", "Quick Sort", "O(n log n)", "Partition around a pivot; recursively sort subarrays.", false, true, Quick, MeasureQuick},
	{"heap", "Heap Sort", "O(n log n)", "Build a max-heap, then repeatedly extract the max.", false, true, Heap, MeasureHeap},
	{"counting", "Counting Sort", "O(n + k)", "Linear-time for small integer ranges; stable. Falls back to insertion sort if the range is huge.", true, false, Counting, MeasureCounting},
	{"radix", "Radix Sort (LSD)", "O(k·n)", "Digit-by-digit stable sort of non-negative integers in base 10.", true, false, Radix, MeasureRadix},
	{"pancake", "Pancake Sort", "O(n²)", "Sort by prefix flips. Great for visualization; not used in practice.", false, true, Pancake, MeasurePancake},
	{"tim", "TimSort", "O(n log n)", "Hybrid of natural runs, binary insertion and merging.", true, false, Tim, MeasureTim},
	{"intro", "IntroSort", "O(n log n)", "Quicksort with a depth limit that switches to heapsort; insertion for tiny ranges.", false, true, Intro, MeasureIntro},
}

// Registry returns the registered algorithms in display order.
// The returned slice is a copy.
func Registry() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)

	return out
}

// Keys returns the registry keys in display order.
func Keys() []string {
	keys := make([]string, len(registry))
	for i, e := range registry {
		keys[i] = e.Key
	}

	return keys
}

// Lookup finds the entry for key.
func Lookup(key string) (Entry, error) {
	for _, e := range registry {
		if e.Key == key {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
}

// Measure runs the headless variant of the algorithm named key.
func Measure(key string, a []float64) (Metrics, error) {
	e, err := Lookup(key)
	if err != nil {
		return Metrics{}, err
	}

	return e.Measure(a), nil
}
