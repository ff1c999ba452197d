package stack

import (
	"github.com/pkg/errors"

	"github.com/scusemua/containers/common/array"
	"github.com/scusemua/containers/common/types"
)

// Stack represents an array-backed stack data structure. The top of the stack is the last element of
// the underlying ArrayList, so Push and Pop are amortized O(1).
type Stack[T any] struct {
	elements *array.ArrayList[T]
}

// New creates a new, empty Stack with the specified initial capacity and returns a pointer to it.
// A capacity <= 0 is replaced by array.DefaultCapacity.
func New[T any](capacity int, opts ...array.Option[T]) (*Stack[T], error) {
	elements, err := array.New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{elements: elements}, nil
}

// Push adds an element to the top of the stack, doubling the stack's capacity if it is full.
func (s *Stack[T]) Push(element T) error {
	return s.elements.Append(element)
}

// Pop removes and returns the top element of the stack. It returns an error if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.elements.Empty() {
		var zero T
		return zero, errors.Wrap(types.ErrEmpty, "cannot pop from an empty stack")
	}

	return s.elements.RemoveAt(s.elements.Len() - 1)
}

// Peek returns the top element of the stack without removing it. It returns an error if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if s.elements.Empty() {
		var zero T
		return zero, errors.Wrap(types.ErrEmpty, "cannot peek at an empty stack")
	}

	return s.elements.Get(s.elements.Len() - 1)
}

// Contains returns true if any element on the stack is equal to element.
func (s *Stack[T]) Contains(element T) bool {
	return s.elements.Contains(element)
}

// IsEmpty checks if the stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return s.elements.Empty()
}

// Size returns the number of elements in the stack
func (s *Stack[T]) Size() int {
	return s.elements.Len()
}

// Cap returns the number of element slots currently allocated.
func (s *Stack[T]) Cap() int {
	return s.elements.Cap()
}

// Resize reallocates the stack's storage. The capacity may not be less than Size().
func (s *Stack[T]) Resize(capacity int) error {
	return s.elements.Resize(capacity)
}

// Compress shrinks the stack's storage to its size.
func (s *Stack[T]) Compress() error {
	return s.elements.Compress()
}

// Clear removes every element. The capacity is unchanged.
func (s *Stack[T]) Clear() {
	s.elements.Clear()
}

// Free releases the stack's storage. The stack must not be used afterwards.
func (s *Stack[T]) Free() {
	s.elements.Free()
}
