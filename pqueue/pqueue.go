package pqueue

import (
	"container/heap"

	"github.com/katalvlaran/meshpath/mtg"
)

// Entry is one (node, distance) pair stored in the queue.
type Entry struct {
	Node     mtg.NodeID
	Distance float64
}

// item carries the insertion sequence used for FIFO tie-breaking.
type item struct {
	Entry
	seq uint64
}

// entryHeap implements heap.Interface ordered by (Distance, seq).
type entryHeap []item

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].Distance != h[j].Distance {
		return h[i].Distance < h[j].Distance
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(item)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue of Entry values.
// The zero value is an empty queue ready to use.
type Queue struct {
	h   entryHeap
	seq uint64
}

// New returns an empty Queue with room for capacity entries.
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{h: make(entryHeap, 0, capacity)}
}

// Push inserts (node, distance). Existing entries for node are left alone.
func (q *Queue) Push(node mtg.NodeID, distance float64) {
	heap.Push(&q.h, item{Entry: Entry{Node: node, Distance: distance}, seq: q.seq})
	q.seq++
}

// Pop removes and returns the entry with the smallest distance.
// ok is false when the queue is empty.
func (q *Queue) Pop() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{Node: mtg.NullNode}, false
	}
	it := heap.Pop(&q.h).(item)

	return it.Entry, true
}

// Peek returns the smallest entry without removing it.
func (q *Queue) Peek() (e Entry, ok bool) {
	if len(q.h) == 0 {
		return Entry{Node: mtg.NullNode}, false
	}
	return q.h[0].Entry, true
}

// Len returns the number of stored entries, including stale ones.
func (q *Queue) Len() int { return len(q.h) }

// Reset empties the queue, keeping its storage.
func (q *Queue) Reset() {
	q.h = q.h[:0]
	q.seq = 0
}
