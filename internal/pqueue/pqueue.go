// Package pqueue provides an indexed binary heap.
//
// Every item's array slot is tracked in a position index, so the priority of
// an arbitrary item can be restored in O(log n) after its key changes
// (decrease-key) instead of pushing a duplicate entry.
package pqueue

import "errors"

// ErrEmpty is the panic value of Peek and ExtractTop on an empty queue.
var ErrEmpty = errors.New("pqueue: queue is empty")

// Queue is a binary heap over comparable items ordered by a strict
// "higher priority" relation.
// Not safe for concurrent use.
type Queue[T comparable] struct {
	items  []T
	index  map[T]int // item → slot in items
	higher func(a, b T) bool
}

// New creates an empty queue. higher(a, b) must report whether a strictly
// outranks b; the root is always an item no other item outranks.
func New[T comparable](higher func(a, b T) bool) *Queue[T] {
	return &Queue[T]{
		index:  make(map[T]int),
		higher: higher,
	}
}

// NewMin creates a queue that extracts the item with the lowest key first.
func NewMin[T comparable](key func(T) int) *Queue[T] {
	return New(func(a, b T) bool { return key(a) < key(b) })
}

// NewMax creates a queue that extracts the item with the highest key first.
func NewMax[T comparable](key func(T) int) *Queue[T] {
	return New(func(a, b T) bool { return key(a) > key(b) })
}

// Size returns the number of queued items.
func (q *Queue[T]) Size() int { return len(q.items) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Contains reports whether item is currently queued.
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.index[item]
	return ok
}

// Insert adds item to the queue. Inserting an item that is already queued
// does nothing; use UpdatePriority after changing its key instead.
func (q *Queue[T]) Insert(item T) {
	if _, ok := q.index[item]; ok {
		return
	}
	q.items = append(q.items, item)
	q.index[item] = len(q.items) - 1
	q.up(len(q.items) - 1)
}

// Peek returns the top item without removing it.
// It panics with ErrEmpty if the queue is empty.
func (q *Queue[T]) Peek() T {
	if len(q.items) == 0 {
		panic(ErrEmpty)
	}
	return q.items[0]
}

// ExtractTop removes and returns the top item.
// It panics with ErrEmpty if the queue is empty.
func (q *Queue[T]) ExtractTop() T {
	if len(q.items) == 0 {
		panic(ErrEmpty)
	}
	last := len(q.items) - 1
	q.swap(0, last)

	top := q.items[last]
	var zero T
	q.items[last] = zero
	q.items = q.items[:last]
	delete(q.index, top)

	q.down(0)
	return top
}

// UpdatePriority restores heap order after item's key moved toward the top
// (a decrease-key on a min queue). Items that are not queued are ignored.
func (q *Queue[T]) UpdatePriority(item T) {
	i, ok := q.index[item]
	if !ok {
		return
	}
	q.up(i)
}

func (q *Queue[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.higher(q.items[i], q.items[parent]) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue[T]) down(i int) {
	n := len(q.items)
	for {
		top := i
		left, right := 2*i+1, 2*i+2
		if left < n && q.higher(q.items[left], q.items[top]) {
			top = left
		}
		if right < n && q.higher(q.items[right], q.items[top]) {
			top = right
		}
		if top == i {
			return
		}
		q.swap(i, top)
		i = top
	}
}

func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.index[q.items[i]] = i
	q.index[q.items[j]] = j
}
