package extract

import (
	"greedydag/internal/egraph"
)

// uniqueQueue is a FIFO of node IDs with a companion membership set:
// insert is a no-op if the value is already queued, so at most one
// pending entry exists per value.
//
// insert/pop are amortized O(1). Queue order influences which
// candidate reaches a class first, not the final fixed point, but it
// must be deterministic given deterministic input iteration — callers
// feed it node IDs in the Graph's construction order.
type uniqueQueue struct {
	set   map[egraph.NodeID]bool
	queue []egraph.NodeID
	head  int
}

func newUniqueQueue() *uniqueQueue {
	return &uniqueQueue{set: make(map[egraph.NodeID]bool)}
}

// insert enqueues v if it is not already pending.
func (q *uniqueQueue) insert(v egraph.NodeID) {
	if q.set[v] {
		return
	}
	q.set[v] = true
	q.queue = append(q.queue, v)
}

// extend inserts every element of vs, in order.
func (q *uniqueQueue) extend(vs []egraph.NodeID) {
	for _, v := range vs {
		q.insert(v)
	}
}

// pop removes and returns the front of the queue. ok is false if the
// queue is empty.
func (q *uniqueQueue) pop() (v egraph.NodeID, ok bool) {
	if q.head >= len(q.queue) {
		return "", false
	}
	v = q.queue[q.head]
	q.head++
	delete(q.set, v)
	// Compact occasionally so a long-running extraction doesn't retain
	// an ever-growing backing array for an empty queue.
	if q.head > 64 && q.head*2 > len(q.queue) {
		q.queue = append([]egraph.NodeID(nil), q.queue[q.head:]...)
		q.head = 0
	}
	return v, true
}

func (q *uniqueQueue) isEmpty() bool {
	return q.head >= len(q.queue)
}
