package chain

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// checkInvariants verifies that size matches the reachable nodes and, if tracked, that the tail is the
// last reachable node.
func checkInvariants[T any](c *Chain[T]) {
	count := 0
	var last *node[T]
	for current := c.head; current != nil; current = current.next {
		last = current
		count++
	}

	Expect(count).To(Equal(c.size))
	Expect(c.size == 0).To(Equal(c.head == nil))

	if c.trackTail {
		Expect(c.tail).To(BeIdenticalTo(last))
	} else {
		Expect(c.tail).To(BeNil())
	}
}

var _ = Describe("Chain invariants", func() {
	It("should keep the tail on the last reachable node through every mutation", func() {
		c := New[int](true)
		checkInvariants(c)

		Expect(c.PushBack(1)).To(Succeed())
		checkInvariants(c)
		Expect(c.PushFront(0)).To(Succeed())
		checkInvariants(c)
		Expect(c.PushBack(2)).To(Succeed())
		checkInvariants(c)

		_, _ = c.PopBack()
		checkInvariants(c)
		_, _ = c.RemoveFirst(func(v int) bool { return v == 1 })
		checkInvariants(c)
		_, _ = c.PopFront()
		checkInvariants(c)
		Expect(c.tail).To(BeNil())

		Expect(c.PushBack(3)).To(Succeed())
		Expect(c.PushBack(3)).To(Succeed())
		c.RemoveAll(func(v int) bool { return v == 3 })
		checkInvariants(c)

		Expect(c.PushFront(4)).To(Succeed())
		checkInvariants(c)
		c.Clear()
		checkInvariants(c)
	})

	It("should never set a tail on an untracked chain", func() {
		c := New[int](false)
		Expect(c.PushBack(1)).To(Succeed())
		Expect(c.PushFront(0)).To(Succeed())
		checkInvariants(c)
		_, _ = c.PopBack()
		checkInvariants(c)
	})

	It("should clear a released node's value and link", func() {
		c := New[*int](false)
		v := 5
		Expect(c.PushFront(&v)).To(Succeed())
		n := c.head

		_, err := c.PopFront()
		Expect(err).ToNot(HaveOccurred())
		Expect(n.value).To(BeNil())
		Expect(n.next).To(BeNil())
	})
})
