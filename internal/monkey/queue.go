package monkey

// itemQueue is the FIFO of worry values held by one actor.
//
// Only the simulator's single control flow touches it, so it carries no lock.
type itemQueue struct {
	items []uint64
}

func newItemQueue(items []uint64) itemQueue {
	q := itemQueue{items: make([]uint64, 0, max(len(items), 8))}
	q.items = append(q.items, items...)
	return q
}

// push appends an item to the tail.
func (q *itemQueue) push(v uint64) {
	q.items = append(q.items, v)
}

// pop removes the head item. ok is false when the queue is empty.
func (q *itemQueue) pop() (v uint64, ok bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	v = q.items[0]
	if len(q.items) == 1 {
		// Reuse the backing array once drained instead of creeping forward.
		q.items = q.items[:0]
	} else {
		q.items = q.items[1:]
	}
	return v, true
}

func (q *itemQueue) len() int {
	return len(q.items)
}

// snapshot returns a copy of the queued items, head first.
func (q *itemQueue) snapshot() []uint64 {
	out := make([]uint64, len(q.items))
	copy(out, q.items)
	return out
}
