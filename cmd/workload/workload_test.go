package main

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/containers/common/configuration"
	"github.com/scusemua/containers/common/types"
)

var _ = Describe("Workload", func() {
	var opts *configuration.ContainerOptions

	BeforeEach(func() {
		opts = configuration.DefaultContainerOptions()
		opts.NumOperations = 300
		opts.BucketCount = 8
	})

	It("should run every phase and release every slot", func() {
		w := NewWorkload(opts)
		Expect(w.Run()).To(Succeed())

		Expect(w.Report().Keys()).To(Equal([]string{
			"sort", "ledger", "churn", "hash-map", "synchronized", "decimal-keys",
		}))
		Expect(w.Budget().InUse()).To(Equal(0))

		result, ok := w.Report().Get("hash-map")
		Expect(ok).To(BeTrue())
		Expect(result.Operations).To(Equal(400))
		Expect(result.PeakSlots).To(Equal(8 + 300))
	})

	It("should be deterministic for a given seed", func() {
		first := NewWorkload(opts)
		Expect(first.Run()).To(Succeed())

		second := NewWorkload(opts.Clone())
		Expect(second.Run()).To(Succeed())

		for _, name := range []string{"sort", "ledger", "churn"} {
			a, _ := first.Report().Get(name)
			b, _ := second.Report().Get(name)
			Expect(a.PeakSlots).To(Equal(b.PeakSlots), name)
		}
	})

	It("should fail with an allocation error when the budget is too small", func() {
		opts.MaxSlots = 64

		w := NewWorkload(opts)
		err := w.Run()
		Expect(errors.Is(err, types.ErrAllocation)).To(BeTrue())
		Expect(w.Report().Len()).To(Equal(0))
		Expect(w.Budget().InUse()).To(Equal(0))
	})

	It("should wait for every worker before freeing the shared map", func() {
		opts.MaxSlots = opts.BucketCount + 64
		opts.Workers = 16
		opts.NumOperations = 200_000

		w := NewWorkload(opts)
		_, _, err := w.synchronizedPhase()
		Expect(errors.Is(err, types.ErrAllocation)).To(BeTrue())
		Expect(w.Budget().InUse()).To(Equal(0))

		// A worker still running after the map was freed would reserve or release slots here.
		Consistently(w.Budget().InUse, "50ms", "5ms").Should(Equal(0))
	})

	It("should report a ledger that sorts without drift", func() {
		w := NewWorkload(opts)
		ops, peak, err := w.ledgerPhase()
		Expect(err).ToNot(HaveOccurred())
		Expect(ops).To(Equal(300))
		Expect(peak).To(BeNumerically(">=", 300))
		Expect(w.Budget().InUse()).To(Equal(0))
	})

	It("should run with a single worker", func() {
		opts.Workers = 1
		opts.NumOperations = 50

		w := NewWorkload(opts)
		Expect(w.Run()).To(Succeed())
	})
})
