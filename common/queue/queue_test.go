package queue_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/queue"
	"github.com/scusemua/containers/common/types"
)

var _ = Describe("Queue Tests", func() {
	var budget *memory.Budget

	BeforeEach(func() {
		budget = memory.NewBudget(0)
	})

	It("Will create a new, empty queue correctly", func() {
		q := queue.New[string](nil, budget)
		Expect(q).ToNot(BeNil())
		Expect(q.Len()).To(Equal(0))
		Expect(q.Empty()).To(BeTrue())

		val, err := q.Dequeue()
		Expect(errors.Is(err, types.ErrEmpty)).To(BeTrue())
		Expect(val).To(Equal(""))

		val, err = q.Peek()
		Expect(errors.Is(err, types.ErrEmpty)).To(BeTrue())
		Expect(val).To(Equal(""))
	})

	It("Will handle the first enqueue into an empty queue", func() {
		q := queue.New[int](nil, budget)

		Expect(q.Enqueue(1)).To(Succeed())
		Expect(q.Len()).To(Equal(1))

		val, err := q.Peek()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal(1))
	})

	It("Will dequeue the first of two enqueued elements", func() {
		q := queue.New[int](nil, budget)
		Expect(q.Enqueue(1)).To(Succeed())
		Expect(q.Enqueue(2)).To(Succeed())

		val, err := q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal(1))

		front, err := q.Peek()
		Expect(err).ToNot(HaveOccurred())
		Expect(front).To(Equal(2))
		Expect(q.Len()).To(Equal(1))
	})

	It("Will handle a series of 'enqueue' operations followed by a series of 'dequeue' operations", func() {
		q := queue.New[string](nil, budget)
		alphabet := "abcdefghijklmnopqrstuvwxyz"

		for i := 0; i < len(alphabet); i++ {
			letter := alphabet[i : i+1]
			Expect(q.Enqueue(letter)).To(Succeed())
			Expect(q.Len()).To(Equal(i + 1))

			val, err := q.Peek()
			Expect(err).ToNot(HaveOccurred())
			Expect(val).To(Equal("a"))
		}

		Expect(q.Len()).To(Equal(len(alphabet)))
		Expect(budget.InUse()).To(Equal(len(alphabet)))

		length := len(alphabet)
		for i := 0; i < len(alphabet); i++ {
			Expect(q.Len()).To(Equal(length))

			val, err := q.Dequeue()
			Expect(err).ToNot(HaveOccurred())
			Expect(val).To(Equal(alphabet[i : i+1]))

			length -= 1
		}

		Expect(budget.InUse()).To(Equal(0))
	})

	It("Will correctly handle a series of intermingled 'enqueue' and 'dequeue' operations", func() {
		q := queue.New[string](nil, budget)

		Expect(q.Enqueue("a")).To(Succeed())
		Expect(q.Enqueue("b")).To(Succeed())
		Expect(q.Enqueue("c")).To(Succeed())

		val, err := q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal("a"))

		val, err = q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal("b"))

		Expect(q.Enqueue("d")).To(Succeed())
		Expect(q.Len()).To(Equal(2))

		val, err = q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal("c"))

		val, err = q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal("d"))
		Expect(q.Len()).To(Equal(0))

		_, err = q.Dequeue()
		Expect(errors.Is(err, types.ErrEmpty)).To(BeTrue())

		// Emptied queues must accept a new first element.
		Expect(q.Enqueue("g")).To(Succeed())
		Expect(q.Enqueue("h")).To(Succeed())
		Expect(q.Len()).To(Equal(2))

		val, err = q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal("g"))

		val, err = q.Peek()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal("h"))
	})

	It("Will find every element, including the last one", func() {
		q := queue.New[float64](nil, budget)
		Expect(q.Contains(1)).To(BeFalse())

		Expect(q.Enqueue(1)).To(Succeed())
		Expect(q.Contains(1)).To(BeTrue())

		Expect(q.Enqueue(2.5)).To(Succeed())
		Expect(q.Contains(2.5)).To(BeTrue())
		Expect(q.Contains(3)).To(BeFalse())
	})

	It("Will clear every element and accept new ones afterwards", func() {
		q := queue.New[int](nil, budget)
		for i := 0; i < 10; i++ {
			Expect(q.Enqueue(i)).To(Succeed())
		}

		q.Clear()
		Expect(q.Len()).To(Equal(0))
		Expect(budget.InUse()).To(Equal(0))
		q.Clear()

		Expect(q.Enqueue(42)).To(Succeed())
		val, err := q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal(42))

		q.Free()
	})

	It("Will reject an enqueue when no node can be allocated", func() {
		q := queue.New[int](nil, memory.NewBudget(1))
		Expect(q.Enqueue(1)).To(Succeed())

		err := q.Enqueue(2)
		Expect(errors.Is(err, types.ErrAllocation)).To(BeTrue())
		Expect(q.Len()).To(Equal(1))

		val, err := q.Dequeue()
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(Equal(1))
		Expect(q.Enqueue(3)).To(Succeed())
	})
})
