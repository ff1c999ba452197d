package memory_test

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/types"
)

var _ = Describe("Budget", func() {
	Context("Unbounded", func() {
		It("should accept any reservation and track usage", func() {
			budget := memory.NewBudget(0)
			Expect(budget.Limit()).To(Equal(0))
			Expect(budget.Available()).To(Equal(-1))

			Expect(budget.Reserve(1 << 20)).To(Succeed())
			Expect(budget.InUse()).To(Equal(1 << 20))

			budget.Release(1 << 20)
			Expect(budget.InUse()).To(Equal(0))
		})
	})

	Context("Bounded", func() {
		var budget *memory.Budget

		BeforeEach(func() {
			budget = memory.NewBudget(8)
		})

		It("should allow reservations up to the limit", func() {
			Expect(budget.Reserve(4)).To(Succeed())
			Expect(budget.Reserve(4)).To(Succeed())
			Expect(budget.InUse()).To(Equal(8))
			Expect(budget.Available()).To(Equal(0))
		})

		It("should reject a reservation that would exceed the limit without claiming anything", func() {
			Expect(budget.Reserve(6)).To(Succeed())

			err := budget.Reserve(3)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, types.ErrAllocation)).To(BeTrue())
			Expect(status.Code(err)).To(Equal(codes.ResourceExhausted))
			Expect(budget.InUse()).To(Equal(6))
		})

		It("should make released slots available again", func() {
			Expect(budget.Reserve(8)).To(Succeed())
			Expect(budget.Reserve(1)).ToNot(Succeed())

			budget.Release(2)
			Expect(budget.Reserve(2)).To(Succeed())
		})

		It("should reject negative reservations", func() {
			err := budget.Reserve(-1)
			Expect(errors.Is(err, types.ErrAllocation)).To(BeTrue())
		})

		It("should clamp over-release at zero", func() {
			Expect(budget.Reserve(2)).To(Succeed())
			budget.Release(5)
			Expect(budget.InUse()).To(Equal(0))
		})

		It("should count reservations made after a clamped release", func() {
			budget.Release(3)
			Expect(budget.InUse()).To(Equal(0))

			Expect(budget.Reserve(8)).To(Succeed())
			Expect(budget.Reserve(1)).ToNot(Succeed())
		})

		It("should stay within zero and its limit while over-releases race with reservations", func() {
			var (
				wg       sync.WaitGroup
				done     = make(chan struct{})
				observed = make(chan int, 1)
			)

			go func() {
				lowest, highest := 0, 0
				for {
					select {
					case <-done:
						observed <- lowest
						observed <- highest
						return
					default:
						inUse := budget.InUse()
						lowest = min(lowest, inUse)
						highest = max(highest, inUse)
					}
				}
			}()

			for i := 0; i < 64; i++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					_ = budget.Reserve(1)
				}()
				go func() {
					defer wg.Done()
					budget.Release(3)
				}()
			}

			wg.Wait()
			close(done)

			Expect(<-observed).To(BeNumerically(">=", 0))
			Expect(<-observed).To(BeNumerically("<=", 8))
			Expect(budget.InUse()).To(And(BeNumerically(">=", 0), BeNumerically("<=", 8)))
		})

		It("should never exceed its limit under concurrent reservations", func() {
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				succeeded int
			)

			for i := 0; i < 32; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()

					if budget.Reserve(1) == nil {
						mu.Lock()
						succeeded++
						mu.Unlock()
					}
				}()
			}

			wg.Wait()
			Expect(succeeded).To(Equal(8))
			Expect(budget.InUse()).To(Equal(8))
		})
	})
})
