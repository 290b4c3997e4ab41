// Package frontier implements the min-priority queue both search algorithms
// pull from.
//
// Entries are ordered by key ascending and, among equal keys, by insertion
// order ascending, so a run over fixed input always pops cells in the same
// sequence. There is no decrease-key: callers push a value again when its
// key improves and tolerate the stale entry that remains (lazy
// decrease-key).
//
// Complexity:
//
//   - Push, PopMin: O(log N), N = entries currently queued (stale included).
//   - IsEmpty, Len: O(1).
package frontier

import "container/heap"

// entry is one queued value with its ordering data.
type entry[T any] struct {
	key   float64
	order uint64
	value T
}

// entries is the heap.Interface backing Queue.
type entries[T any] []entry[T]

func (e entries[T]) Len() int { return len(e) }

// Less orders by key, then by insertion order (FIFO among equal keys).
func (e entries[T]) Less(i, j int) bool {
	if e[i].key != e[j].key {
		return e[i].key < e[j].key
	}

	return e[i].order < e[j].order
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) { *e = append(*e, x.(entry[T])) }

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference held by the backing array
	*e = old[:n-1]

	return item
}

// Queue is a min-priority queue with FIFO tie-breaking. The zero value is
// ready to use.
type Queue[T any] struct {
	items entries[T]
	next  uint64
}

// New returns an empty queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make(entries[T], 0, capacity)}
}

// Push queues v under key and returns the insertion order it was given.
// Orders start at 0 and increase by one per push for the queue's lifetime.
func (q *Queue[T]) Push(key float64, v T) uint64 {
	order := q.next
	q.next++
	heap.Push(&q.items, entry[T]{key: key, order: order, value: v})

	return order
}

// PopMin removes and returns the value with the smallest key, the earliest
// pushed among ties. ok is false when the queue is empty.
func (q *Queue[T]) PopMin() (v T, ok bool) {
	if len(q.items) == 0 {
		return v, false
	}
	e := heap.Pop(&q.items).(entry[T])

	return e.value, true
}

// IsEmpty reports whether nothing is queued.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Len returns the number of queued entries, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.items) }

// Pushed returns how many pushes the queue has accepted.
func (q *Queue[T]) Pushed() uint64 { return q.next }
