package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	Epsilon = 1.0e-6
)

var (
	EpsilonDecimal = decimal.NewFromFloat(Epsilon)
)

// EqualWithTolerance compares two decimal.Decimal values and returns true if they are equal within
// the tolerance defined by the EpsilonDecimal variable (which is created from the Epsilon constant).
func EqualWithTolerance(d1 decimal.Decimal, d2 decimal.Decimal) bool {
	diff := d1.Sub(d2)
	absDiff := diff.Abs()

	return absDiff.LessThanOrEqual(EpsilonDecimal)
}

// TryRoundToZero returns decimal.Zero if d is EqualWithTolerance to zero. Otherwise, d is returned unchanged.
func TryRoundToZero(d decimal.Decimal) decimal.Decimal {
	if EqualWithTolerance(d, decimal.Zero) {
		return decimal.Zero
	}

	return d
}

// CompareDecimals orders decimal.Decimal values in ascending order.
// It can be passed anywhere a container expects a comparator.
func CompareDecimals(d1 decimal.Decimal, d2 decimal.Decimal) int {
	return d1.Cmp(d2)
}

// DecimalsEqual is an exact equality predicate for decimal.Decimal keys. Use it together with HashDecimal;
// EqualWithTolerance is not compatible with any hash function, since values within Epsilon of one another
// may still have different integer parts.
func DecimalsEqual(d1 decimal.Decimal, d2 decimal.Decimal) bool {
	return d1.Equal(d2)
}

// HashDecimal maps a decimal.Decimal to a bucket in [0, buckets) using the absolute value of its integer part.
// Integer parts beyond the range of an int64 are reduced with decimal.Decimal.Mod.
func HashDecimal(d decimal.Decimal, buckets int) int {
	integral := d.Truncate(0).Abs()

	if integral.LessThanOrEqual(maxInt64Decimal) {
		return int(integral.IntPart() % int64(buckets))
	}

	return int(integral.Mod(decimal.NewFromInt(int64(buckets))).IntPart())
}

var maxInt64Decimal = decimal.NewFromInt(math.MaxInt64)
