package queue

import (
	"github.com/scusemua/containers/common/chain"
	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/types"
)

// Queue implements a first-in first-out (FIFO) queue on a chain of owned nodes.
//
// Elements are enqueued at the tail and dequeued at the head, both in O(1).
type Queue[T any] struct {
	nodes chain.Chain[T]
}

// New creates a new, empty Queue and returns a pointer to it.
//
// A nil equals defaults to types.Equal; a nil alloc defaults to memory.Heap.
func New[T any](equals types.Equals[T], alloc memory.Allocator) *Queue[T] {
	q := &Queue[T]{}
	q.nodes.Init(true, chain.WithEquals[T](equals), chain.WithAllocator[T](alloc))
	return q
}

// Enqueue adds the specified element to the back of the queue.
func (q *Queue[T]) Enqueue(elem T) error {
	return q.nodes.PushBack(elem)
}

// Dequeue removes and returns the next element in the queue.
//
// If the queue is empty, Dequeue returns an error wrapping types.ErrEmpty.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.nodes.PopFront()
}

// Peek returns but does not remove the next element in the queue.
func (q *Queue[T]) Peek() (T, error) {
	return q.nodes.Front()
}

// Contains returns true if any element in the queue is equal to elem.
func (q *Queue[T]) Contains(elem T) bool {
	return q.nodes.Contains(elem)
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.nodes.Len()
}

func (q *Queue[T]) Empty() bool {
	return q.nodes.Empty()
}

// Clear releases every element in the queue.
func (q *Queue[T]) Clear() {
	q.nodes.Clear()
}

// Free releases every element in the queue. The queue must not be used afterwards.
func (q *Queue[T]) Free() {
	q.nodes.Free()
}
