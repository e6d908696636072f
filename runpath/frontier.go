package runpath

import "container/heap"

// frontier orders (cost, state) pairs awaiting expansion. pop must return
// pairs in non-decreasing cost order. Both implementations allow duplicates
// of a state; the runner discards the stale ones.
type frontier interface {
	push(cost int64, state int32)
	pop() (cost int64, state int32, ok bool)
}

// newFrontier builds the frontier selected by kind. A bucket queue needs
// maxCost+1 buckets, so spans above MaxBucketSpan fall back to the heap.
func newFrontier(kind FrontierKind, maxCost int64, capHint int) frontier {
	if kind == FrontierBucket && maxCost+1 <= MaxBucketSpan {
		return newBucketQueue(maxCost)
	}
	pq := make(statePQ, 0, capHint)
	heap.Init(&pq)

	return &heapFrontier{pq: pq}
}

// stateItem is a state and the cost it was pushed with.
type stateItem struct {
	cost  int64 // accumulated entry cost
	state int32 // index into the dense cost table
}

// statePQ is a min-heap of stateItem ordered by cost ascending.
// A shorter route to a queued state pushes a new item; the outdated one
// stays in the heap and is ignored when popped.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

type heapFrontier struct {
	pq statePQ
}

func (f *heapFrontier) push(cost int64, state int32) {
	heap.Push(&f.pq, stateItem{cost: cost, state: state})
}

func (f *heapFrontier) pop() (int64, int32, bool) {
	if f.pq.Len() == 0 {
		return 0, 0, false
	}
	item := heap.Pop(&f.pq).(stateItem)

	return item.cost, item.state, true
}

// bucketQueue is Dial's algorithm queue. Every pushed cost lies in
// [cur, cur+maxCost] because it is a popped cost plus one cell cost, so a
// ring of maxCost+1 buckets never mixes two different costs in one bucket.
type bucketQueue struct {
	buckets [][]int32
	cur     int64 // cost of the bucket the cursor is on
	n       int
}

func newBucketQueue(maxCost int64) *bucketQueue {
	return &bucketQueue{buckets: make([][]int32, maxCost+1)}
}

func (q *bucketQueue) push(cost int64, state int32) {
	i := cost % int64(len(q.buckets))
	q.buckets[i] = append(q.buckets[i], state)
	q.n++
}

func (q *bucketQueue) pop() (int64, int32, bool) {
	if q.n == 0 {
		return 0, 0, false
	}
	span := int64(len(q.buckets))
	for len(q.buckets[q.cur%span]) == 0 {
		q.cur++
	}
	b := q.buckets[q.cur%span]
	state := b[len(b)-1]
	q.buckets[q.cur%span] = b[:len(b)-1]
	q.n--

	return q.cur, state, true
}
