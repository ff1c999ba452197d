// Package array implements ArrayList, a contiguous growable buffer with explicit ownership of its storage.
package array

import (
	"fmt"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"

	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/types"
	"github.com/scusemua/containers/common/utils"
)

const (
	// DefaultCapacity is used when an ArrayList is created with a capacity of 0.
	DefaultCapacity = 4
)

// Option configures an ArrayList.
type Option[T any] func(*ArrayList[T])

// WithEquals sets the equality used by Find, Contains, Count and RemoveValue.
func WithEquals[T any](equals types.Equals[T]) Option[T] {
	return func(l *ArrayList[T]) {
		l.equals = equals
	}
}

// WithAllocator sets the Allocator that the list's buffer slots are reserved from.
func WithAllocator[T any](alloc memory.Allocator) Option[T] {
	return func(l *ArrayList[T]) {
		l.alloc = alloc
	}
}

// ArrayList is a dynamic array. The list exclusively owns its buffer; len(buffer) is the list's capacity
// and only the first length slots hold elements.
//
// ArrayList is not safe for concurrent use.
type ArrayList[T any] struct {
	log logger.Logger

	buffer []T
	length int

	alloc  memory.Allocator
	equals types.Equals[T]
}

// New creates a new, empty ArrayList with the specified initial capacity and returns a pointer to it.
//
// A capacity <= 0 is replaced by DefaultCapacity. If the buffer's slots cannot be reserved, New returns
// an error wrapping types.ErrAllocation.
func New[T any](capacity int, opts ...Option[T]) (*ArrayList[T], error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	l := &ArrayList[T]{}
	for _, opt := range opts {
		opt(l)
	}

	if l.alloc == nil {
		l.alloc = memory.Heap
	}
	if l.equals == nil {
		l.equals = types.Equal[T]
	}

	if err := l.alloc.Reserve(capacity); err != nil {
		return nil, errors.Wrapf(err, "could not allocate ArrayList with capacity %d", capacity)
	}

	l.buffer = make([]T, capacity)
	config.InitLogger(&l.log, l)

	return l, nil
}

// From creates a new ArrayList holding a copy of values, with capacity equal to len(values).
func From[T any](values []T, opts ...Option[T]) (*ArrayList[T], error) {
	l, err := New[T](len(values), opts...)
	if err != nil {
		return nil, err
	}

	l.length = copy(l.buffer, values)
	return l, nil
}

// Len returns the number of elements in the list.
func (l *ArrayList[T]) Len() int {
	return l.length
}

// Cap returns the number of element slots currently allocated.
func (l *ArrayList[T]) Cap() int {
	return len(l.buffer)
}

// Empty returns true if the list holds no elements.
func (l *ArrayList[T]) Empty() bool {
	return l.length == 0
}

// Insert places item at index, shifting the elements at [index, Len()) one slot to the right.
//
// The index must be within [0, Len()]. If the buffer is full, its capacity is doubled first; if that
// fails, Insert returns an error wrapping types.ErrAllocation and the list is unchanged.
func (l *ArrayList[T]) Insert(index int, item T) error {
	if index < 0 || index > l.length {
		return errors.Wrapf(types.ErrIndexOutOfRange, "cannot insert at index %d into list of length %d", index, l.length)
	}

	if l.length == len(l.buffer) {
		if err := l.grow(); err != nil {
			return err
		}
	}

	copy(l.buffer[index+1:l.length+1], l.buffer[index:l.length])
	l.buffer[index] = item
	l.length++

	return nil
}

// Append places item at the end of the list.
func (l *ArrayList[T]) Append(item T) error {
	return l.Insert(l.length, item)
}

func (l *ArrayList[T]) grow() error {
	capacity := 2 * len(l.buffer)
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	l.log.Debug("Growing ArrayList from capacity %d to %d.", len(l.buffer), capacity)
	if err := l.Resize(capacity); err != nil {
		l.log.Warn(utils.OrangeStyle.Render("Failed to grow ArrayList from capacity %d to %d: %v"),
			len(l.buffer), capacity, err)
		return err
	}

	return nil
}

// RemoveAt removes and returns the element at index, shifting the following elements one slot to the left.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, errors.Wrapf(types.ErrIndexOutOfRange, "cannot remove index %d from list of length %d", index, l.length)
	}

	item := l.buffer[index]
	copy(l.buffer[index:l.length-1], l.buffer[index+1:l.length])
	l.length--

	var zero T
	l.buffer[l.length] = zero // avoid memory leak

	return item, nil
}

// RemoveValue removes the first element equal to value.
func (l *ArrayList[T]) RemoveValue(value T) error {
	index, err := l.Find(value)
	if err != nil {
		return err
	}

	_, err = l.RemoveAt(index)
	return err
}

// Get returns the element at index.
func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, errors.Wrapf(types.ErrIndexOutOfRange, "cannot get index %d of list with length %d", index, l.length)
	}

	return l.buffer[index], nil
}

// Set overwrites the element at index.
func (l *ArrayList[T]) Set(index int, item T) error {
	if index < 0 || index >= l.length {
		return errors.Wrapf(types.ErrIndexOutOfRange, "cannot set index %d of list with length %d", index, l.length)
	}

	l.buffer[index] = item
	return nil
}

// Find returns the index of the first element equal to value.
func (l *ArrayList[T]) Find(value T) (int, error) {
	for i := 0; i < l.length; i++ {
		if l.equals(l.buffer[i], value) {
			return i, nil
		}
	}

	return -1, errors.Wrapf(types.ErrNotFound, "value %v is not in the list", value)
}

// Contains returns true if the list holds an element equal to value.
func (l *ArrayList[T]) Contains(value T) bool {
	_, err := l.Find(value)
	return err == nil
}

// Count returns the number of elements equal to value.
func (l *ArrayList[T]) Count(value T) int {
	count := 0
	for i := 0; i < l.length; i++ {
		if l.equals(l.buffer[i], value) {
			count++
		}
	}

	return count
}

// Resize reallocates the buffer with the specified capacity, preserving every element and its order.
//
// The capacity may not be less than Len(). A capacity of 0 on an empty list is raised to 1, so that a list
// always owns at least one slot.
func (l *ArrayList[T]) Resize(capacity int) error {
	if capacity < l.length {
		return errors.Wrapf(types.ErrIndexOutOfRange, "cannot resize list of length %d to capacity %d", l.length, capacity)
	}

	if capacity == 0 {
		capacity = 1
	}

	delta := capacity - len(l.buffer)
	if delta == 0 {
		return nil
	}

	if delta > 0 {
		if err := l.alloc.Reserve(delta); err != nil {
			return errors.Wrapf(err, "could not resize list from capacity %d to %d", len(l.buffer), capacity)
		}
	}

	buffer := make([]T, capacity)
	copy(buffer, l.buffer[:l.length])
	l.buffer = buffer

	if delta < 0 {
		l.alloc.Release(-delta)
	}

	return nil
}

// Compress shrinks the buffer to the list's length.
func (l *ArrayList[T]) Compress() error {
	return l.Resize(l.length)
}

// Reverse reverses the order of the elements in place.
func (l *ArrayList[T]) Reverse() {
	for i, j := 0, l.length-1; i < j; i, j = i+1, j-1 {
		l.buffer[i], l.buffer[j] = l.buffer[j], l.buffer[i]
	}
}

// Clear removes every element. The capacity is unchanged.
func (l *ArrayList[T]) Clear() {
	var zero T
	for i := 0; i < l.length; i++ {
		l.buffer[i] = zero
	}
	l.length = 0
}

// Range calls fn on each index and element in order until fn returns false.
func (l *ArrayList[T]) Range(fn func(int, T) bool) {
	for i := 0; i < l.length; i++ {
		if !fn(i, l.buffer[i]) {
			return
		}
	}
}

// Values returns a copy of the list's elements.
func (l *ArrayList[T]) Values() []T {
	values := make([]T, l.length)
	copy(values, l.buffer[:l.length])
	return values
}

// Free releases the list's buffer back to its Allocator. The list must not be used afterwards.
func (l *ArrayList[T]) Free() {
	if l.buffer == nil {
		return
	}

	l.alloc.Release(len(l.buffer))
	l.buffer = nil
	l.length = 0
}

func (l *ArrayList[T]) String() string {
	return fmt.Sprintf("ArrayList[Len=%d, Cap=%d]", l.length, len(l.buffer))
}
