package list

import "iter"

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at the tail and removals at the
// head. A zero value Single is an empty list.
type Single[T any] struct {
	head, tail *SingleNode[T]
	len        int
}

// Enqueue adds v as a new node at the tail of the list.
func (ls *Single[T]) Enqueue(v T) {
	n := ls.tail.insert()
	n.Val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	ls.len++
}

// Peek returns the value of the head node. It returns false if the
// list is empty.
func (ls *Single[T]) Peek() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// PeekTail returns the value of the tail node. It returns false if
// the list is empty.
func (ls *Single[T]) PeekTail() (v T, ok bool) {
	if ls.tail == nil {
		return v, false
	}
	return ls.tail.Val, true
}

// Pop removes the current head node from the list and returns its
// value. It returns false if the list was already empty.
func (ls *Single[T]) Pop() (v T, ok bool) {
	n := ls.head
	if n == nil {
		return v, false
	}

	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}
	ls.len--

	v = n.Val
	n.detach()
	return v, true
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.len
}

// Head returns the first node of the list, or nil if the list is
// empty.
func (ls *Single[T]) Head() *SingleNode[T] {
	return ls.head
}

// Clear removes every node from the list.
func (ls *Single[T]) Clear() {
	for cur := ls.head; cur != nil; {
		next := cur.next
		cur.detach()
		cur = next
	}
	*ls = Single[T]{}
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}

// Next returns the node following n, or nil if n is the tail.
func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}

func (n *SingleNode[T]) insert() *SingleNode[T] {
	if n == nil {
		return new(SingleNode[T])
	}

	n.next = &SingleNode[T]{next: n.next}
	return n.next
}

// detach drops everything n references so that a node that is still
// held somewhere else doesn't keep the rest of the chain or its value
// alive.
func (n *SingleNode[T]) detach() {
	var zero T
	n.Val = zero
	n.next = nil
}
