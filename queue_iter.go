package fifo

import "iter"

// All returns an iterator over the values currently in the Queue,
// from head to tail. It does not use or move the cursor, so any
// number of iterators returned by All can be in progress at once.
//
// The Queue must not be modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.list.All()
}

// Drain returns an iterator that dequeues and yields values until
// either the Queue is empty or the loop is exited. A value is removed
// from the Queue before it is yielded, so breaking out of the loop
// leaves the remaining values in place.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
