package chain

import (
	"github.com/scusemua/containers/common/memory"
)

// node is a single link cell. The Chain holding the head owns every node reachable from it.
type node[T any] struct {
	value T
	next  *node[T]
}

// newNode reserves a slot for and allocates a new, unlinked node.
func newNode[T any](value T, alloc memory.Allocator) (*node[T], error) {
	if err := alloc.Reserve(1); err != nil {
		return nil, err
	}

	return &node[T]{value: value}, nil
}

// release unlinks the node, drops its value and returns its slot.
func (n *node[T]) release(alloc memory.Allocator) {
	var zero T
	n.value = zero
	n.next = nil
	alloc.Release(1)
}
