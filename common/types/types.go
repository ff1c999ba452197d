package types

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Epsilon is the absolute tolerance used when comparing floating-point elements (2^-20).
const Epsilon = 1.0 / 1048576.0

// Equals reports whether two elements should be treated as the same value.
type Equals[T any] func(a, b T) bool

// Comparator is a 3-way ordering: negative if a < b, zero if a == b, positive if a > b.
type Comparator[T any] func(a, b T) int

// ApproxEqual returns true if |a - b| < Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// NumericEqual is ApproxEqual for any integer or floating-point element type.
func NumericEqual[T constraints.Integer | constraints.Float](a, b T) bool {
	return ApproxEqual(float64(a), float64(b))
}

// Equal is the default element equality.
//
// Floating-point values are compared with ApproxEqual. Everything else is compared exactly,
// using reflect.DeepEqual so that element types which are not comparable still work.
func Equal[T any](a, b T) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.Float32, reflect.Float64:
			return ApproxEqual(va.Float(), vb.Float())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return va.Int() == vb.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return va.Uint() == vb.Uint()
		case reflect.String:
			return va.String() == vb.String()
		}
	}

	return reflect.DeepEqual(a, b)
}

// Ascending is the natural ascending Comparator for ordered types.
func Ascending[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Descending reverses Ascending.
func Descending[T constraints.Ordered](a, b T) int {
	return Ascending(b, a)
}
