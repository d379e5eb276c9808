package pathtrace

import "container/heap"

// entry is one priority queue item. Entries order by primary, then
// secondary, then push sequence, so equal keys leave in FIFO order.
type entry struct {
	idx       int
	primary   float64
	secondary float64
	seq       int
}

type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.primary != b.primary {
		return a.primary < b.primary
	}
	if a.secondary != b.secondary {
		return a.secondary < b.secondary
	}

	return a.seq < b.seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// queue wraps entryPQ with a push counter.
type queue struct {
	pq  entryPQ
	seq int
}

func (q *queue) push(idx int, primary, secondary float64) {
	heap.Push(&q.pq, entry{idx: idx, primary: primary, secondary: secondary, seq: q.seq})
	q.seq++
}

func (q *queue) pop() entry { return heap.Pop(&q.pq).(entry) }

func (q *queue) len() int { return q.pq.Len() }
