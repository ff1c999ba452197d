// Package memory accounts for the storage owned by containers.
//
// Every container reserves element slots from an Allocator before it grows a buffer, links a
// node, or builds a bucket array, and hands them back when it shrinks or is freed. A rejected
// reservation is how a container observes that storage "could not be obtained".
package memory

import (
	"fmt"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/scusemua/containers/common/types"
	"github.com/scusemua/containers/common/utils"
)

// Heap is the unbounded Budget used by containers that are not given an Allocator.
var Heap = NewBudget(0)

// Allocator hands out element slots to containers.
type Allocator interface {
	// Reserve claims n slots. If they cannot be obtained, Reserve returns an error wrapping
	// types.ErrAllocation and claims nothing.
	Reserve(n int) error

	// Release returns n previously-reserved slots.
	Release(n int)

	// InUse returns the number of slots currently reserved.
	InUse() int

	// Limit returns the maximum number of slots that may be reserved at once, or 0 if unbounded.
	Limit() int
}

// Budget is an Allocator with an optional upper bound on the number of slots reserved at once.
//
// A single Budget may be shared by containers owned by different goroutines.
type Budget struct {
	log   logger.Logger
	limit int64
	inUse *atomic.Int64
}

// NewBudget creates a new Budget. A limit <= 0 means the Budget is unbounded.
func NewBudget(limit int) *Budget {
	if limit < 0 {
		limit = 0
	}

	budget := &Budget{
		limit: int64(limit),
		inUse: atomic.NewInt64(0),
	}
	config.InitLogger(&budget.log, budget)
	return budget
}

func (b *Budget) Reserve(n int) error {
	if n < 0 {
		return errors.Wrapf(types.ErrAllocation, "cannot reserve a negative number of slots (%d)", n)
	}

	if b.limit == 0 {
		b.inUse.Add(int64(n))
		return nil
	}

	for {
		current := b.inUse.Load()
		if current+int64(n) > b.limit {
			b.log.Warn(utils.OrangeStyle.Render("Rejecting reservation of %d slot(s): %d/%d already in use."),
				n, current, b.limit)
			return errors.Wrapf(types.ErrAllocation, "reserving %d slot(s) would exceed limit of %d (%d in use)",
				n, b.limit, current)
		}

		if b.inUse.CompareAndSwap(current, current+int64(n)) {
			return nil
		}
	}
}

func (b *Budget) Release(n int) {
	if n <= 0 {
		return
	}

	for {
		current := b.inUse.Load()
		remaining := current - int64(n)
		if remaining >= 0 {
			if b.inUse.CompareAndSwap(current, remaining) {
				return
			}
			continue
		}

		// Releasing more than was reserved is a caller bug. Clamp so the budget stays usable.
		if b.inUse.CompareAndSwap(current, 0) {
			b.log.Error("Released %d slot(s) with only %d in use; clamping to 0.", n, current)
			return
		}
	}
}

func (b *Budget) InUse() int {
	return int(b.inUse.Load())
}

func (b *Budget) Limit() int {
	return int(b.limit)
}

// Available returns the number of slots that can still be reserved, or -1 if the Budget is unbounded.
func (b *Budget) Available() int {
	if b.limit == 0 {
		return -1
	}

	return int(b.limit - b.inUse.Load())
}

func (b *Budget) String() string {
	if b.limit == 0 {
		return fmt.Sprintf("Budget[InUse=%d, Limit=unbounded]", b.InUse())
	}

	return fmt.Sprintf("Budget[InUse=%d, Limit=%d]", b.InUse(), b.limit)
}
