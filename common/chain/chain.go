// Package chain implements the singly-linked node chain shared by the linked list, the queue,
// the node-backed stack, and the hash map's buckets.
package chain

import (
	"github.com/pkg/errors"

	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/types"
)

// Option configures a Chain.
type Option[T any] func(*Chain[T])

// WithEquals sets the equality used by Contains.
func WithEquals[T any](equals types.Equals[T]) Option[T] {
	return func(c *Chain[T]) {
		c.equals = equals
	}
}

// WithAllocator sets the Allocator that node slots are reserved from.
func WithAllocator[T any](alloc memory.Allocator) Option[T] {
	return func(c *Chain[T]) {
		c.alloc = alloc
	}
}

// Chain is a singly-linked sequence of owned nodes.
//
// If tail tracking is enabled, the Chain keeps a non-owning reference to its last node so that
// PushBack is O(1). Otherwise PushBack, PopBack and Back walk the whole chain.
//
// The zero value is a usable, untracked Chain that allocates from memory.Heap.
type Chain[T any] struct {
	head      *node[T]
	tail      *node[T]
	size      int
	trackTail bool

	alloc  memory.Allocator
	equals types.Equals[T]
}

// New creates a new, empty Chain and returns a pointer to it.
func New[T any](trackTail bool, opts ...Option[T]) *Chain[T] {
	c := &Chain[T]{trackTail: trackTail}
	c.Init(trackTail, opts...)
	return c
}

// Init (re)initializes c as an empty Chain. It must only be called on a zero or freed Chain.
func (c *Chain[T]) Init(trackTail bool, opts ...Option[T]) {
	c.head, c.tail, c.size = nil, nil, 0
	c.trackTail = trackTail

	for _, opt := range opts {
		opt(c)
	}

	if c.alloc == nil {
		c.alloc = memory.Heap
	}
	if c.equals == nil {
		c.equals = types.Equal[T]
	}
}

func (c *Chain[T]) allocator() memory.Allocator {
	if c.alloc == nil {
		c.alloc = memory.Heap
	}
	return c.alloc
}

func (c *Chain[T]) equal(a, b T) bool {
	if c.equals == nil {
		return types.Equal(a, b)
	}
	return c.equals(a, b)
}

// Len returns the number of nodes in the chain.
func (c *Chain[T]) Len() int {
	return c.size
}

// Empty returns true if the chain holds no nodes.
func (c *Chain[T]) Empty() bool {
	return c.size == 0
}

// TracksTail returns true if the chain keeps a reference to its last node.
func (c *Chain[T]) TracksTail() bool {
	return c.trackTail
}

// PushFront links a new node holding item as the head of the chain.
func (c *Chain[T]) PushFront(item T) error {
	n, err := newNode(item, c.allocator())
	if err != nil {
		return err
	}

	n.next = c.head
	c.head = n
	if c.trackTail && c.tail == nil {
		c.tail = n
	}
	c.size++

	return nil
}

// PushBack links a new node holding item after the last node of the chain.
func (c *Chain[T]) PushBack(item T) error {
	n, err := newNode(item, c.allocator())
	if err != nil {
		return err
	}

	if c.head == nil {
		// Empty to one element: there is no tail to link from yet.
		c.head = n
		if c.trackTail {
			c.tail = n
		}
		c.size++
		return nil
	}

	if c.trackTail {
		c.tail.next = n
		c.tail = n
	} else {
		c.last().next = n
	}
	c.size++

	return nil
}

// PopFront unlinks the head node and returns its value.
func (c *Chain[T]) PopFront() (T, error) {
	if c.size == 0 {
		var zero T
		return zero, errors.Wrap(types.ErrEmpty, "cannot remove the front of an empty chain")
	}

	n := c.head
	value := n.value

	c.head = n.next
	c.size--
	if c.size == 0 {
		c.tail = nil
	}
	n.release(c.allocator())

	return value, nil
}

// PopBack unlinks the last node and returns its value. PopBack is O(n) whether or not the tail is
// tracked, since the second-to-last node has to be found.
func (c *Chain[T]) PopBack() (T, error) {
	if c.size == 0 {
		var zero T
		return zero, errors.Wrap(types.ErrEmpty, "cannot remove the back of an empty chain")
	}

	if c.size == 1 {
		return c.PopFront()
	}

	prev := c.head
	for prev.next.next != nil {
		prev = prev.next
	}

	n := prev.next
	value := n.value

	prev.next = nil
	if c.trackTail {
		c.tail = prev
	}
	c.size--
	n.release(c.allocator())

	return value, nil
}

// Front returns the value held by the head node.
func (c *Chain[T]) Front() (T, error) {
	if c.head == nil {
		var zero T
		return zero, errors.Wrap(types.ErrEmpty, "chain has no front")
	}

	return c.head.value, nil
}

// Back returns the value held by the last node.
func (c *Chain[T]) Back() (T, error) {
	if c.head == nil {
		var zero T
		return zero, errors.Wrap(types.ErrEmpty, "chain has no back")
	}

	return c.last().value, nil
}

func (c *Chain[T]) last() *node[T] {
	if c.trackTail {
		return c.tail
	}

	current := c.head
	for current != nil && current.next != nil {
		current = current.next
	}
	return current
}

// Contains returns true if any node, the last one included, holds a value equal to item.
func (c *Chain[T]) Contains(item T) bool {
	_, found := c.Find(func(value T) bool {
		return c.equal(value, item)
	})
	return found
}

// Find returns the value of the first node, from the head, that satisfies pred.
func (c *Chain[T]) Find(pred func(T) bool) (T, bool) {
	for current := c.head; current != nil; current = current.next {
		if pred(current.value) {
			return current.value, true
		}
	}

	var zero T
	return zero, false
}

// Update replaces the value of the first node that satisfies pred with fn(value).
// Returns false if no node satisfies pred.
func (c *Chain[T]) Update(pred func(T) bool, fn func(T) T) bool {
	for current := c.head; current != nil; current = current.next {
		if pred(current.value) {
			current.value = fn(current.value)
			return true
		}
	}

	return false
}

// RemoveFirst unlinks the first node that satisfies pred and returns its value.
func (c *Chain[T]) RemoveFirst(pred func(T) bool) (T, bool) {
	var prev *node[T]
	for current := c.head; current != nil; prev, current = current, current.next {
		if !pred(current.value) {
			continue
		}

		value := current.value
		c.unlink(prev, current)
		return value, true
	}

	var zero T
	return zero, false
}

// RemoveAll unlinks every node that satisfies pred and returns how many were removed.
func (c *Chain[T]) RemoveAll(pred func(T) bool) int {
	removed := 0

	var prev *node[T]
	current := c.head
	for current != nil {
		next := current.next
		if pred(current.value) {
			c.unlink(prev, current)
			removed++
		} else {
			prev = current
		}
		current = next
	}

	return removed
}

// unlink removes n, whose predecessor is prev (nil if n is the head), and releases it.
func (c *Chain[T]) unlink(prev *node[T], n *node[T]) {
	if prev == nil {
		c.head = n.next
	} else {
		prev.next = n.next
	}

	if c.trackTail && c.tail == n {
		c.tail = prev
	}

	c.size--
	n.release(c.allocator())
}

// Range calls fn on each value from head to tail until fn returns false.
func (c *Chain[T]) Range(fn func(T) bool) {
	for current := c.head; current != nil; current = current.next {
		if !fn(current.value) {
			return
		}
	}
}

// Values returns a copy of the chain's values, from head to tail.
func (c *Chain[T]) Values() []T {
	values := make([]T, 0, c.size)
	c.Range(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Clear releases every node. It is safe to call on an empty chain.
func (c *Chain[T]) Clear() {
	for c.head != nil {
		n := c.head
		c.head = n.next
		n.release(c.allocator())
	}

	c.tail = nil
	c.size = 0
}

// Free releases every node owned by the chain. The chain must not be used afterwards.
func (c *Chain[T]) Free() {
	c.Clear()
}
