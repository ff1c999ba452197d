package main

import (
	"fmt"
	"time"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/scusemua/containers/common/array"
	"github.com/scusemua/containers/common/configuration"
	"github.com/scusemua/containers/common/list"
	"github.com/scusemua/containers/common/memory"
	"github.com/scusemua/containers/common/queue"
	"github.com/scusemua/containers/common/stack"
	"github.com/scusemua/containers/common/types"
	"github.com/scusemua/containers/common/utils"
	"github.com/scusemua/containers/common/utils/hashmap"
)

var (
	ErrMismatch = errors.New("container disagrees with its reference")
	ErrLeak     = errors.New("storage slots still reserved after every container was freed")
)

// PhaseResult summarizes one phase of the workload.
type PhaseResult struct {
	Operations int           `json:"operations"`
	PeakSlots  int           `json:"peak_slots"`
	Duration   time.Duration `json:"duration"`
}

func (r *PhaseResult) String() string {
	return fmt.Sprintf("PhaseResult[Operations=%d, PeakSlots=%d, Duration=%v]", r.Operations, r.PeakSlots, r.Duration)
}

type phase struct {
	name string
	run  func() (int, int, error)
}

// Workload drives every container type through a seeded sequence of operations and checks the results
// against plain Go reference structures.
//
// Every container reserves its storage from a single memory.Budget. Each phase must release everything
// it reserved; the budget's usage is checked after every phase.
type Workload struct {
	log logger.Logger

	opts   *configuration.ContainerOptions
	budget *memory.Budget
	rng    *rand.Rand

	report *orderedmap.OrderedMap[string, *PhaseResult]
}

func NewWorkload(opts *configuration.ContainerOptions) *Workload {
	w := &Workload{
		opts:   opts,
		budget: memory.NewBudget(opts.MaxSlots),
		rng:    rand.New(rand.NewSource(uint64(opts.Seed))),
		report: orderedmap.NewOrderedMap[string, *PhaseResult](),
	}
	config.InitLogger(&w.log, w)

	return w
}

// Report returns the results of the phases that have completed, in the order in which they ran.
func (w *Workload) Report() *orderedmap.OrderedMap[string, *PhaseResult] {
	return w.report
}

// Budget returns the budget that every container of the workload reserves from.
func (w *Workload) Budget() *memory.Budget {
	return w.budget
}

// Run executes every phase in order and stops at the first one that fails.
func (w *Workload) Run() error {
	phases := []phase{
		{"sort", w.sortPhase},
		{"ledger", w.ledgerPhase},
		{"churn", w.churnPhase},
		{"hash-map", w.hashMapPhase},
		{"synchronized", w.synchronizedPhase},
		{"decimal-keys", w.decimalKeysPhase},
	}

	for i, p := range phases {
		style := utils.PhaseStyles[i%len(utils.PhaseStyles)]
		w.log.Debug(style.Render("Starting phase \"%s\"."), p.name)

		start := time.Now()
		ops, peak, err := p.run()
		if err != nil {
			w.log.Error(utils.RedStyle.Render("Phase \"%s\" failed: %v"), p.name, err)
			return errors.Wrapf(err, "phase %s", p.name)
		}

		if inUse := w.budget.InUse(); inUse != 0 {
			return errors.Wrapf(ErrLeak, "phase %s left %d slot(s) reserved", p.name, inUse)
		}

		result := &PhaseResult{Operations: ops, PeakSlots: peak, Duration: time.Since(start)}
		w.report.Set(p.name, result)

		w.log.Debug(utils.GreenStyle.Render("Completed phase \"%s\": %v"), p.name, result)
	}

	return nil
}

// sortPhase fills a list with random integers and sorts three copies of it, one per sort routine.
func (w *Workload) sortPhase() (int, int, error) {
	n := w.opts.NumOperations

	source, err := array.New[int](w.opts.InitialCapacity, array.WithAllocator[int](w.budget))
	if err != nil {
		return 0, 0, err
	}
	defer source.Free()

	for i := 0; i < n; i++ {
		if err = source.Append(w.rng.Intn(n)); err != nil {
			return 0, 0, err
		}
	}

	copies := make([]*array.ArrayList[int], 3)
	for i := range copies {
		copies[i], err = array.From(source.Values(), array.WithAllocator[int](w.budget))
		if err != nil {
			return 0, 0, err
		}
		defer copies[i].Free()
	}
	peak := w.budget.InUse()

	copies[0].InsertionSort(types.Ascending[int])
	if err = copies[1].MergeSort(types.Ascending[int]); err != nil {
		return 0, 0, err
	}
	copies[2].QuickSort(types.Ascending[int])

	reference := copies[1].Values()
	for i := 1; i < len(reference); i++ {
		if reference[i-1] > reference[i] {
			return 0, 0, errors.Wrapf(ErrMismatch, "merge sort left %d before %d", reference[i-1], reference[i])
		}
	}

	for _, sorted := range []*array.ArrayList[int]{copies[0], copies[2]} {
		for i, value := range sorted.Values() {
			if value != reference[i] {
				return 0, 0, errors.Wrapf(ErrMismatch, "sorted lists differ at index %d: %d != %d", i, value, reference[i])
			}
		}
	}

	return n, peak, nil
}

// ledgerPhase sorts a list of decimal amounts and checks that sorting neither lost nor changed any amount.
func (w *Workload) ledgerPhase() (int, int, error) {
	n := w.opts.NumOperations

	ledger, err := array.New[decimal.Decimal](w.opts.InitialCapacity,
		array.WithEquals[decimal.Decimal](utils.EqualWithTolerance),
		array.WithAllocator[decimal.Decimal](w.budget))
	if err != nil {
		return 0, 0, err
	}
	defer ledger.Free()

	total := decimal.Zero
	for i := 0; i < n; i++ {
		amount := decimal.New(w.rng.Int63n(2_000_000)-1_000_000, -2)
		total = total.Add(amount)

		if err = ledger.Append(amount); err != nil {
			return 0, 0, err
		}
	}

	probe, err := ledger.Get(w.rng.Intn(n))
	if err != nil {
		return 0, 0, err
	}
	peak := w.budget.InUse()

	ledger.QuickSort(utils.CompareDecimals)

	sum := decimal.Zero
	var prev decimal.Decimal
	ledger.Range(func(i int, amount decimal.Decimal) bool {
		if i > 0 && prev.GreaterThan(amount) {
			err = errors.Wrapf(ErrMismatch, "ledger out of order at index %d: %v > %v", i, prev, amount)
			return false
		}

		sum = sum.Add(amount)
		prev = amount
		return true
	})
	if err != nil {
		return 0, 0, err
	}

	if drift := utils.TryRoundToZero(sum.Sub(total)); !drift.IsZero() {
		return 0, 0, errors.Wrapf(ErrMismatch, "ledger total changed from %v to %v (drift %v)", total, sum, drift)
	}

	if !ledger.Contains(probe) {
		return 0, 0, errors.Wrapf(ErrMismatch, "ledger lost amount %v", probe)
	}

	return n, peak, nil
}

// churnPhase interleaves pushes and pops on every node-based and array-based sequence container and checks
// each against a slice holding the same elements.
func (w *Workload) churnPhase() (int, int, error) {
	n := w.opts.NumOperations

	q := queue.New[int](nil, w.budget)
	defer q.Free()

	ns := stack.NewNodeStack[int](nil, w.budget)
	defer ns.Free()

	as, err := stack.New[int](w.opts.InitialCapacity, array.WithAllocator[int](w.budget))
	if err != nil {
		return 0, 0, err
	}
	defer as.Free()

	l := list.New[int](nil, w.budget)
	defer l.Free()

	var (
		fifo []int
		lifo []int
		deq  []int
		peak int
	)

	// The linked list walks to its back on every RemoveBack, so it only sees a bounded share of the churn.
	listOps := min(n, 512)

	for i := 0; i < n; i++ {
		value := w.rng.Int()

		if len(fifo) == 0 || w.rng.Intn(3) > 0 {
			if err = q.Enqueue(value); err != nil {
				return 0, 0, err
			}
			if err = ns.Push(value); err != nil {
				return 0, 0, err
			}
			if err = as.Push(value); err != nil {
				return 0, 0, err
			}
			fifo = append(fifo, value)
			lifo = append(lifo, value)
		} else {
			got, err := q.Dequeue()
			if err != nil {
				return 0, 0, err
			}
			if got != fifo[0] {
				return 0, 0, errors.Wrapf(ErrMismatch, "queue returned %d, expected %d", got, fifo[0])
			}
			fifo = fifo[1:]

			top := lifo[len(lifo)-1]
			lifo = lifo[:len(lifo)-1]
			for _, s := range []interface{ Pop() (int, error) }{ns, as} {
				got, err = s.Pop()
				if err != nil {
					return 0, 0, err
				}
				if got != top {
					return 0, 0, errors.Wrapf(ErrMismatch, "stack returned %d, expected %d", got, top)
				}
			}
		}

		if i < listOps {
			if err = w.churnList(l, &deq, value); err != nil {
				return 0, 0, err
			}
		}

		peak = max(peak, w.budget.InUse())
	}

	if q.Len() != len(fifo) || ns.Size() != len(lifo) || as.Size() != len(lifo) || l.Len() != len(deq) {
		return 0, 0, errors.Wrapf(ErrMismatch, "sizes diverged: queue=%d/%d, stacks=%d,%d/%d, list=%d/%d",
			q.Len(), len(fifo), ns.Size(), as.Size(), len(lifo), l.Len(), len(deq))
	}

	return n, peak, nil
}

func (w *Workload) churnList(l *list.LinkedList[int], deq *[]int, value int) error {
	switch w.rng.Intn(4) {
	case 0:
		*deq = append([]int{value}, *deq...)
		return l.AddFront(value)
	case 1:
		*deq = append(*deq, value)
		return l.AddBack(value)
	case 2:
		got, err := l.RemoveFront()
		if len(*deq) == 0 {
			if !errors.Is(err, types.ErrEmpty) {
				return errors.Wrapf(ErrMismatch, "empty list returned %d, %v", got, err)
			}
			return nil
		}
		if err != nil {
			return err
		}
		if got != (*deq)[0] {
			return errors.Wrapf(ErrMismatch, "list front was %d, expected %d", got, (*deq)[0])
		}
		*deq = (*deq)[1:]
	default:
		got, err := l.RemoveBack()
		if len(*deq) == 0 {
			if !errors.Is(err, types.ErrEmpty) {
				return errors.Wrapf(ErrMismatch, "empty list returned %d, %v", got, err)
			}
			return nil
		}
		if err != nil {
			return err
		}
		last := (*deq)[len(*deq)-1]
		if got != last {
			return errors.Wrapf(ErrMismatch, "list back was %d, expected %d", got, last)
		}
		*deq = (*deq)[:len(*deq)-1]
	}

	return nil
}

// hashMapPhase inserts uuid keys into a HashMap, removes a third of them, and compares the result with a
// concurrent-map holding the same entries.
func (w *Workload) hashMapPhase() (int, int, error) {
	n := w.opts.NumOperations

	m, err := hashmap.New[string, int](w.opts.BucketCount, nil, nil, hashmap.WithAllocator(w.budget))
	if err != nil {
		return 0, 0, err
	}
	defer m.Free()

	reference := cmap.New[int]()
	keys := make([]string, 0, n)

	for i := 0; i < n; i++ {
		key := uuid.NewString()
		if err = m.InsertIfAbsent(key, i); err != nil {
			return 0, 0, err
		}
		reference.Set(key, i)
		keys = append(keys, key)
	}
	peak := w.budget.InUse()

	for _, idx := range w.rng.Perm(n)[:n/3] {
		value, err := m.Remove(keys[idx])
		if err != nil {
			return 0, 0, err
		}

		expected, _ := reference.Get(keys[idx])
		if value != expected {
			return 0, 0, errors.Wrapf(ErrMismatch, "removed %s=%d, expected %d", keys[idx], value, expected)
		}
		reference.Remove(keys[idx])
	}

	if err = compareWithReference(m, reference); err != nil {
		return 0, 0, err
	}

	w.log.Debug("Hash map holds %d entries in %d buckets (load factor %.2f).", m.Len(), m.Buckets(), m.LoadFactor())

	return n + n/3, peak, nil
}

// synchronizedPhase shares one Synchronized map between several goroutines, each owning a disjoint range of
// keys, and mirrors every write into a concurrent-map.
func (w *Workload) synchronizedPhase() (int, int, error) {
	n := w.opts.NumOperations
	workers := w.opts.Workers

	inner, err := hashmap.New[string, int](w.opts.BucketCount, nil, nil, hashmap.WithAllocator(w.budget))
	if err != nil {
		return 0, 0, err
	}
	m := hashmap.NewSynchronized(inner)
	defer m.Free()

	reference := cmap.New[int]()

	// Every worker must return before m is freed, including when one of them fails.
	var g errgroup.Group
	for worker := 0; worker < workers; worker++ {
		g.Go(func() error {
			for i := worker; i < n; i += workers {
				key := fmt.Sprintf("%d-%d", worker, i)
				if err := m.Insert(key, i); err != nil {
					return err
				}
				reference.Set(key, i)

				if i%5 == 0 {
					if _, err := m.Remove(key); err != nil {
						return err
					}
					reference.Remove(key)
				}
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return 0, 0, err
	}
	peak := w.budget.InUse()

	if err = compareWithReference(m, reference); err != nil {
		return 0, 0, err
	}

	return n, peak, nil
}

// decimalKeysPhase keys a HashMap by decimal prices using a custom hash and equality, so that prices that
// differ only in their exponent collapse onto one entry.
func (w *Workload) decimalKeysPhase() (int, int, error) {
	n := w.opts.NumOperations

	m, err := hashmap.New[decimal.Decimal, string](w.opts.BucketCount, utils.HashDecimal, utils.DecimalsEqual,
		hashmap.WithAllocator(w.budget))
	if err != nil {
		return 0, 0, err
	}
	defer m.Free()

	distinct := make(map[string]struct{})
	duplicates := 0

	for i := 0; i < n; i++ {
		cents := w.rng.Int63n(int64(n))
		price := decimal.New(cents, -2)
		if i%2 == 1 {
			// Same value, different exponent.
			price = decimal.New(cents*10, -3)
		}

		err = m.InsertIfAbsent(price, uuid.NewString())
		if errors.Is(err, types.ErrDuplicateKey) {
			duplicates++
			continue
		} else if err != nil {
			return 0, 0, err
		}

		distinct[price.String()] = struct{}{}
	}
	peak := w.budget.InUse()

	if m.Len() != len(distinct) || m.Len()+duplicates != n {
		return 0, 0, errors.Wrapf(ErrMismatch, "decimal map holds %d entries, expected %d (%d duplicates)",
			m.Len(), len(distinct), duplicates)
	}

	for key := range distinct {
		if !m.Contains(decimal.RequireFromString(key)) {
			return 0, 0, errors.Wrapf(ErrMismatch, "decimal map lost key %s", key)
		}
	}

	return n, peak, nil
}

func compareWithReference(m hashmap.Map[string, int], reference cmap.ConcurrentMap[string, int]) error {
	if m.Len() != reference.Count() {
		return errors.Wrapf(ErrMismatch, "map holds %d entries, reference holds %d", m.Len(), reference.Count())
	}

	for item := range reference.IterBuffered() {
		value, err := m.Get(item.Key)
		if err != nil {
			return err
		}

		if value != item.Val {
			return errors.Wrapf(ErrMismatch, "%v=%d, reference has %d", item.Key, value, item.Val)
		}
	}

	return nil
}
