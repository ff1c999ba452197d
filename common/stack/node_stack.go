package stack

import (
	"github.com/scusemua/containers/common/chain"
	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/types"
)

// NodeStack is a stack built on a chain of owned nodes. The top of the stack is the head of the chain.
//
// Unlike Stack, a NodeStack never reallocates: each Push costs exactly one node.
type NodeStack[T any] struct {
	nodes chain.Chain[T]
}

// NewNodeStack creates a new, empty NodeStack and returns a pointer to it.
//
// A nil equals defaults to types.Equal; a nil alloc defaults to memory.Heap.
func NewNodeStack[T any](equals types.Equals[T], alloc memory.Allocator) *NodeStack[T] {
	s := &NodeStack[T]{}
	s.nodes.Init(false, chain.WithEquals[T](equals), chain.WithAllocator[T](alloc))
	return s
}

// Push adds an element to the top of the stack.
func (s *NodeStack[T]) Push(element T) error {
	return s.nodes.PushFront(element)
}

// Pop removes and returns the top element of the stack. It returns an error if the stack is empty.
func (s *NodeStack[T]) Pop() (T, error) {
	return s.nodes.PopFront()
}

// Peek returns the top element of the stack without removing it. It returns an error if the stack is empty.
func (s *NodeStack[T]) Peek() (T, error) {
	return s.nodes.Front()
}

func (s *NodeStack[T]) Contains(element T) bool {
	return s.nodes.Contains(element)
}

func (s *NodeStack[T]) IsEmpty() bool {
	return s.nodes.Empty()
}

func (s *NodeStack[T]) Size() int {
	return s.nodes.Len()
}

// Clear releases every node on the stack.
func (s *NodeStack[T]) Clear() {
	s.nodes.Clear()
}

// Free releases every node on the stack. The stack must not be used afterwards.
func (s *NodeStack[T]) Free() {
	s.nodes.Free()
}
