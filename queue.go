package fifo

import "deedles.dev/fifo/internal/list"

// A Queue collects values and returns them in FIFO order. A zero
// value Queue is empty and ready to use.
//
// Besides the usual enqueue and dequeue operations, a Queue carries a
// single traversal cursor driven by [Queue.Iterate], [Queue.Next],
// [Queue.Item], and [Queue.HasNext]. There is only one cursor per
// Queue, so starting a new traversal discards the position of any
// previous one. For independent traversals, use [Queue.All].
//
// If the cursor is positioned on the head of the Queue when that head
// is dequeued, the cursor is reset as though the traversal had run
// off the end of the Queue. A cursor positioned anywhere else is left
// alone.
//
// A Queue must not be copied after first use.
type Queue[T any] struct {
	_ noCopy

	list list.Single[T]
	cur  *list.SingleNode[T]
}

// New returns a new, empty Queue. It is equivalent to new(Queue[T]).
func New[T any]() *Queue[T] {
	return new(Queue[T])
}

// Enqueue adds v to the tail of the Queue. It does not affect the
// cursor.
func (q *Queue[T]) Enqueue(v T) {
	q.list.Enqueue(v)
}

// Dequeue removes the value at the head of the Queue and returns it.
// If the Queue is empty, it returns the zero value and false.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.cur != nil && q.cur == q.list.Head() {
		q.cur = nil
	}
	return q.list.Pop()
}

// First returns the value at the head of the Queue without removing
// it. If the Queue is empty, it returns the zero value and false.
func (q *Queue[T]) First() (v T, ok bool) {
	return q.list.Peek()
}

// Last returns the value at the tail of the Queue without removing
// it. If the Queue is empty, it returns the zero value and false.
func (q *Queue[T]) Last() (v T, ok bool) {
	return q.list.PeekTail()
}

// IsEmpty returns true if the Queue contains no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.list.Len() == 0
}

// Size returns the number of values in the Queue.
func (q *Queue[T]) Size() int {
	return q.list.Len()
}

// Clear removes every value from the Queue and resets the cursor.
func (q *Queue[T]) Clear() {
	q.cur = nil
	q.list.Clear()
}

// Iterate positions the cursor at the head of the Queue. If the Queue
// is empty, the cursor has no position and HasNext will return false.
func (q *Queue[T]) Iterate() {
	q.cur = q.list.Head()
}

// Next moves the cursor to the following value. Once the cursor
// passes the tail it has no position, after which Next does nothing.
func (q *Queue[T]) Next() {
	if q.cur != nil {
		q.cur = q.cur.Next()
	}
}

// Item returns the value under the cursor. If the cursor has no
// position, it returns the zero value and false.
func (q *Queue[T]) Item() (v T, ok bool) {
	if q.cur == nil {
		return v, false
	}
	return q.cur.Val, true
}

// HasNext returns true if the cursor is positioned on a value, i.e.
// if Item will return one.
func (q *Queue[T]) HasNext() bool {
	return q.cur != nil
}
