package hashmap

import (
	"math"
	"math/bits"
	"reflect"

	"golang.org/x/exp/constraints"
)

// HashFunc maps a key to a bucket index in [0, buckets).
//
// A HashFunc must be consistent with the map's equality: keys that are equal must hash to the same index for
// every bucket count. The map cannot verify this.
type HashFunc[K any] func(key K, buckets int) int

// IntHash returns |key| mod buckets.
func IntHash[K constraints.Integer](key K, buckets int) int {
	var abs uint64
	if key < 0 {
		// Negate via +1 so that the most negative value does not overflow.
		abs = uint64(-(int64(key) + 1)) + 1
	} else {
		abs = uint64(key)
	}

	return int(abs % uint64(buckets))
}

// FloatHash returns |trunc(key)| mod buckets. NaN and infinities hash to bucket 0.
func FloatHash[K constraints.Float](key K, buckets int) int {
	f := float64(key)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(math.Mod(math.Trunc(math.Abs(f)), float64(buckets)))
}

// RuneHash returns the character's code point mod buckets.
func RuneHash(key rune, buckets int) int {
	return IntHash(key, buckets)
}

// StringHash returns the polynomial hash sum(key[i] * 2^i) mod buckets over the bytes of key.
//
// Each term is reduced with a 128-bit intermediate product, so the result is the exact residue of the sum for
// keys of any length.
func StringHash(key string, buckets int) int {
	n := uint64(buckets)

	var hash uint64
	power := 1 % n
	for i := 0; i < len(key); i++ {
		hi, lo := bits.Mul64(uint64(key[i]), power)
		hash = (hash + bits.Rem64(hi, lo, n)) % n

		hi, lo = bits.Mul64(power, 2)
		power = bits.Rem64(hi, lo, n)
	}

	return int(hash)
}

// DefaultHash returns the default HashFunc for K's kind: IntHash for integers, FloatHash for floating-point
// numbers, and StringHash for strings. It returns nil for any other kind of key.
func DefaultHash[K any]() HashFunc[K] {
	var zero K

	switch reflect.TypeOf(&zero).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(key K, buckets int) int {
			return IntHash(reflect.ValueOf(key).Int(), buckets)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(key K, buckets int) int {
			return IntHash(reflect.ValueOf(key).Uint(), buckets)
		}
	case reflect.Float32, reflect.Float64:
		return func(key K, buckets int) int {
			return FloatHash(reflect.ValueOf(key).Float(), buckets)
		}
	case reflect.String:
		return func(key K, buckets int) int {
			return StringHash(reflect.ValueOf(key).String(), buckets)
		}
	default:
		return nil
	}
}
