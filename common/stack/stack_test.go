package stack_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/containers/common/array"
	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/stack"
	"github.com/scusemua/containers/common/types"
)

// lifo is the surface shared by Stack and NodeStack.
type lifo[T any] interface {
	Push(T) error
	Pop() (T, error)
	Peek() (T, error)
	Contains(T) bool
	IsEmpty() bool
	Size() int
	Clear()
	Free()
}

var _ = Describe("Stack", func() {
	var budget *memory.Budget

	BeforeEach(func() {
		budget = memory.NewBudget(0)
	})

	constructors := map[string]func() lifo[int]{
		"Stack": func() lifo[int] {
			s, err := stack.New[int](2, array.WithAllocator[int](budget))
			Expect(err).ToNot(HaveOccurred())
			return s
		},
		"NodeStack": func() lifo[int] {
			return stack.NewNodeStack[int](nil, budget)
		},
	}

	for name, newStack := range constructors {
		name, newStack := name, newStack

		Describe(name, func() {
			var intStack lifo[int]

			BeforeEach(func() {
				intStack = newStack()
			})

			Describe("Push", func() {
				It("should add elements to the stack", func() {
					Expect(intStack.Push(10)).To(Succeed())
					Expect(intStack.Push(20)).To(Succeed())
					Expect(intStack.Push(30)).To(Succeed())
					Expect(intStack.Size()).To(Equal(3))
				})
			})

			Describe("Pop", func() {
				It("should remove and return the top element of the stack", func() {
					Expect(intStack.Push(10)).To(Succeed())
					Expect(intStack.Push(20)).To(Succeed())

					value, err := intStack.Pop()
					Expect(err).ToNot(HaveOccurred())
					Expect(value).To(Equal(20))
					Expect(intStack.Size()).To(Equal(1))

					value, err = intStack.Pop()
					Expect(err).ToNot(HaveOccurred())
					Expect(value).To(Equal(10))
					Expect(intStack.IsEmpty()).To(BeTrue())
				})

				It("should return an error if the stack is empty", func() {
					value, err := intStack.Pop()
					Expect(err).To(HaveOccurred())
					Expect(errors.Is(err, types.ErrEmpty)).To(BeTrue())
					Expect(value).To(BeZero())
				})
			})

			Describe("Peek", func() {
				It("should return the top element without removing it", func() {
					Expect(intStack.Push(1)).To(Succeed())
					Expect(intStack.Push(2)).To(Succeed())

					value, err := intStack.Peek()
					Expect(err).ToNot(HaveOccurred())
					Expect(value).To(Equal(2))
					Expect(intStack.Size()).To(Equal(2))
				})

				It("should return an error if the stack is empty", func() {
					value, err := intStack.Peek()
					Expect(errors.Is(err, types.ErrEmpty)).To(BeTrue())
					Expect(value).To(BeZero())
				})
			})

			Describe("Contains", func() {
				It("should find the bottom and top elements", func() {
					Expect(intStack.Push(1)).To(Succeed())
					Expect(intStack.Push(2)).To(Succeed())
					Expect(intStack.Contains(1)).To(BeTrue())
					Expect(intStack.Contains(2)).To(BeTrue())
					Expect(intStack.Contains(3)).To(BeFalse())
				})
			})

			Describe("Clear and Free", func() {
				It("should empty the stack and release its storage", func() {
					for i := 0; i < 5; i++ {
						Expect(intStack.Push(i)).To(Succeed())
					}

					intStack.Clear()
					Expect(intStack.IsEmpty()).To(BeTrue())
					intStack.Clear()

					intStack.Free()
					Expect(budget.InUse()).To(Equal(0))
				})
			})
		})
	}

	Describe("Array-backed capacity", func() {
		It("should double its capacity when full", func() {
			s, err := stack.New[string](2)
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Cap()).To(Equal(2))

			Expect(s.Push("a")).To(Succeed())
			Expect(s.Push("b")).To(Succeed())
			Expect(s.Push("c")).To(Succeed())
			Expect(s.Cap()).To(Equal(4))

			top, err := s.Peek()
			Expect(err).ToNot(HaveOccurred())
			Expect(top).To(Equal("c"))
		})

		It("should resize and compress without losing elements", func() {
			s, err := stack.New[int](0, array.WithAllocator[int](budget))
			Expect(err).ToNot(HaveOccurred())
			Expect(s.Cap()).To(Equal(array.DefaultCapacity))

			Expect(s.Push(1)).To(Succeed())
			Expect(s.Push(2)).To(Succeed())

			Expect(s.Resize(10)).To(Succeed())
			Expect(s.Cap()).To(Equal(10))

			Expect(s.Compress()).To(Succeed())
			Expect(s.Cap()).To(Equal(2))
			Expect(budget.InUse()).To(Equal(2))

			err = s.Resize(1)
			Expect(errors.Is(err, types.ErrIndexOutOfRange)).To(BeTrue())

			value, err := s.Pop()
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal(2))
		})

		It("should fail to push when growth cannot be reserved", func() {
			s, err := stack.New[int](1, array.WithAllocator[int](memory.NewBudget(1)))
			Expect(err).ToNot(HaveOccurred())

			Expect(s.Push(1)).To(Succeed())
			err = s.Push(2)
			Expect(errors.Is(err, types.ErrAllocation)).To(BeTrue())
			Expect(s.Size()).To(Equal(1))
		})
	})
})
