package array

import (
	"github.com/pkg/errors"

	"github.com/scusemua/containers/common/types"
)

// InsertionSort sorts the list in place. It is stable, and O(n) on input that is already sorted.
func (l *ArrayList[T]) InsertionSort(cmp types.Comparator[T]) {
	for i := 1; i < l.length; i++ {
		item := l.buffer[i]

		j := i - 1
		for j >= 0 && cmp(l.buffer[j], item) > 0 {
			l.buffer[j+1] = l.buffer[j]
			j--
		}
		l.buffer[j+1] = item
	}
}

// MergeSort sorts the list. It is stable and O(n log n).
//
// The two halves are copied into scratch ArrayLists reserved from the list's Allocator, sorted recursively,
// and merged back, taking from the left half on ties. Scratch lists are freed before MergeSort returns.
// If scratch space cannot be reserved, MergeSort returns an error wrapping types.ErrAllocation and the list
// is unchanged.
func (l *ArrayList[T]) MergeSort(cmp types.Comparator[T]) error {
	if l.length < 2 {
		return nil
	}

	mid := l.length / 2

	left, err := l.scratch(0, mid)
	if err != nil {
		return err
	}
	defer left.Free()

	right, err := l.scratch(mid, l.length)
	if err != nil {
		return err
	}
	defer right.Free()

	if err = left.MergeSort(cmp); err != nil {
		return err
	}
	if err = right.MergeSort(cmp); err != nil {
		return err
	}

	i, j, k := 0, 0, 0
	for i < left.length && j < right.length {
		if cmp(left.buffer[i], right.buffer[j]) <= 0 {
			l.buffer[k] = left.buffer[i]
			i++
		} else {
			l.buffer[k] = right.buffer[j]
			j++
		}
		k++
	}

	k += copy(l.buffer[k:], left.buffer[i:left.length])
	copy(l.buffer[k:], right.buffer[j:right.length])

	return nil
}

// scratch returns a new ArrayList holding a copy of the elements in [lo, hi).
func (l *ArrayList[T]) scratch(lo int, hi int) (*ArrayList[T], error) {
	if err := l.alloc.Reserve(hi - lo); err != nil {
		return nil, errors.Wrapf(err, "could not reserve %d slot(s) of merge sort scratch space", hi-lo)
	}

	s := &ArrayList[T]{
		log:    l.log,
		buffer: make([]T, hi-lo),
		alloc:  l.alloc,
		equals: l.equals,
	}
	s.length = copy(s.buffer, l.buffer[lo:hi])

	return s, nil
}

// QuickSort sorts the list in place. It is not stable; average O(n log n), worst case O(n^2).
//
// The pivot is the median of the first, middle and last elements of each partition. Partitioning is
// three-way: elements equal to the pivot are gathered in the middle and never revisited, so runs of
// duplicates do not degrade the sort. The smaller side is sorted recursively and the larger side
// iteratively, which bounds the recursion depth by O(log n).
func (l *ArrayList[T]) QuickSort(cmp types.Comparator[T]) {
	quickSort(l.buffer[:l.length], cmp)
}

func quickSort[T any](s []T, cmp types.Comparator[T]) {
	for len(s) > 1 {
		lt, gt := partition(s, cmp)

		if lt < len(s)-gt {
			quickSort(s[:lt], cmp)
			s = s[gt:]
		} else {
			quickSort(s[gt:], cmp)
			s = s[:lt]
		}
	}
}

// partition rearranges s into elements less than, equal to and greater than the median-of-three pivot.
// It returns the bounds of the middle run: s[lt:gt] holds the elements equal to the pivot.
func partition[T any](s []T, cmp types.Comparator[T]) (int, int) {
	last := len(s) - 1
	mid := last / 2

	if cmp(s[mid], s[0]) < 0 {
		s[0], s[mid] = s[mid], s[0]
	}
	if cmp(s[last], s[0]) < 0 {
		s[0], s[last] = s[last], s[0]
	}
	if cmp(s[mid], s[last]) < 0 {
		s[mid], s[last] = s[last], s[mid]
	}

	pivot := s[last]
	lt, i, gt := 0, 0, len(s)
	for i < gt {
		switch c := cmp(s[i], pivot); {
		case c < 0:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case c > 0:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}

	return lt, gt
}
