// Package list implements LinkedList, a singly-linked list of owned nodes.
package list

import (
	"github.com/scusemua/containers/common/chain"
	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/types"
)

// LinkedList is a singly-linked list that tracks only its head.
//
// Operations on the front are O(1). AddBack, RemoveBack and Back walk the whole list and are O(n): the list
// does not keep a tail reference. Use queue.Queue when O(1) insertion at the back is needed.
type LinkedList[T any] struct {
	nodes chain.Chain[T]
}

// New creates a new, empty LinkedList and returns a pointer to it.
//
// A nil equals defaults to types.Equal; a nil alloc defaults to memory.Heap.
func New[T any](equals types.Equals[T], alloc memory.Allocator) *LinkedList[T] {
	l := &LinkedList[T]{}
	l.nodes.Init(false, chain.WithEquals[T](equals), chain.WithAllocator[T](alloc))
	return l
}

// AddFront inserts item at the head of the list.
func (l *LinkedList[T]) AddFront(item T) error {
	return l.nodes.PushFront(item)
}

// AddBack appends item after the last element of the list.
func (l *LinkedList[T]) AddBack(item T) error {
	return l.nodes.PushBack(item)
}

// RemoveFront removes and returns the first element.
func (l *LinkedList[T]) RemoveFront() (T, error) {
	return l.nodes.PopFront()
}

// RemoveBack removes and returns the last element.
func (l *LinkedList[T]) RemoveBack() (T, error) {
	return l.nodes.PopBack()
}

func (l *LinkedList[T]) Front() (T, error) {
	return l.nodes.Front()
}

func (l *LinkedList[T]) Back() (T, error) {
	return l.nodes.Back()
}

func (l *LinkedList[T]) Contains(item T) bool {
	return l.nodes.Contains(item)
}

func (l *LinkedList[T]) Len() int {
	return l.nodes.Len()
}

func (l *LinkedList[T]) Empty() bool {
	return l.nodes.Empty()
}

// Values returns a copy of the list's elements, front to back.
func (l *LinkedList[T]) Values() []T {
	return l.nodes.Values()
}

// Clear releases every node in the list.
func (l *LinkedList[T]) Clear() {
	l.nodes.Clear()
}

// Free releases every node in the list. The list must not be used afterwards.
func (l *LinkedList[T]) Free() {
	l.nodes.Free()
}
