package sorttrace

// tracer holds the mutable state of one sort run: the working copy, the
// parallel identity tags, the counters and (optionally) the step list.
type tracer struct {
	a      []float64
	tag    []int
	steps  []Step
	m      Metrics
	record bool
}

// algorithm sorts t.a in place through the tracer's recording helpers.
type algorithm func(t *tracer)

// newTracer copies a0 so the caller's slice is never touched.
func newTracer(a0 []float64, record bool) *tracer {
	n := len(a0)
	t := &tracer{
		a:      make([]float64, n),
		tag:    make([]int, n),
		record: record,
	}
	copy(t.a, a0)
	for i := range t.tag {
		t.tag[i] = i
	}
	if record {
		t.steps = make([]Step, 0, 4*n+8)
	}

	return t
}

func (t *tracer) compare(i, j int) {
	t.m.Comparisons++
	if t.record {
		t.steps = append(t.steps, Step{Op: OpCompare, I: i, J: j})
	}
}

// swap exchanges i and j; a self-swap is not an event.
func (t *tracer) swap(i, j int) {
	if i == j {
		return
	}
	t.a[i], t.a[j] = t.a[j], t.a[i]
	t.tag[i], t.tag[j] = t.tag[j], t.tag[i]
	t.m.Writes++
	if t.record {
		t.steps = append(t.steps, Step{Op: OpSwap, I: i, J: j})
	}
}

// overwrite stores v (originally input element tag) at i.
func (t *tracer) overwrite(i int, v float64, tag int) {
	t.a[i] = v
	t.tag[i] = tag
	t.m.Writes++
	if t.record {
		t.steps = append(t.steps, Step{Op: OpOverwrite, I: i, Value: v})
	}
}

// result appends the placed tail and packages the run.
func (t *tracer) result() *Result {
	for i := range t.a {
		t.steps = append(t.steps, Step{Op: OpPlaced, I: i})
	}
	perm := make([]int, len(t.tag))
	copy(perm, t.tag)

	return &Result{Steps: t.steps, Metrics: t.m, Permutation: perm}
}

// run executes alg on a copy of a0 with recording enabled.
func run(a0 []float64, alg algorithm) *Result {
	t := newTracer(a0, true)
	alg(t)

	return t.result()
}

// measure executes alg on a copy of a0 with recording disabled.
func measure(a0 []float64, alg algorithm) Metrics {
	t := newTracer(a0, false)
	alg(t)

	return t.m
}
