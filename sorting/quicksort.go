// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcoll/collection"
	"github.com/katalvlaran/lvcoll/compare"
)

// Sentinel errors for sorting routines.
var (
	// ErrNilSequence is returned when the sequence is a nil interface. A typed
	// nil such as a nil *dynarray.Array is not detected; it sorts as empty.
	ErrNilSequence = errors.New("sorting: sequence is nil")

	// ErrNilComparator is returned when the comparison function is nil.
	ErrNilComparator = errors.New("sorting: comparator is nil")
)

// Quicksort sorts s ascending by the natural order of T.
func Quicksort[T cmp.Ordered](s collection.Indexable[T]) error {
	return QuicksortFunc(s, compare.Natural[T]())
}

// QuicksortFunc sorts s ascending by c.
// Complexity: O(n log n) average, O(n²) worst case.
func QuicksortFunc[T any](s collection.Indexable[T], c compare.Func[T]) error {
	if s == nil {
		return ErrNilSequence
	}
	if c == nil {
		return ErrNilComparator
	}
	if s.Len() <= 1 {
		return nil
	}

	q := quicksorter[T]{s: s, cmp: c}
	if err := q.sort(0, s.Len()-1); err != nil {
		return fmt.Errorf("sorting: Quicksort: %w", err)
	}

	return nil
}

// quicksorter carries the sequence and comparator through the recursion.
type quicksorter[T any] struct {
	s   collection.Indexable[T]
	cmp compare.Func[T]
}

// sort orders s[left..right] inclusive.
func (q quicksorter[T]) sort(left, right int) error {
	if left >= right {
		return nil
	}

	p, err := q.partition(left, right)
	if err != nil {
		return err
	}
	if err = q.sort(left, p-1); err != nil {
		return err
	}

	return q.sort(p+1, right)
}

// partition moves every element ≤ s[right] in front of it and returns the
// pivot's final index.
func (q quicksorter[T]) partition(left, right int) (int, error) {
	pivot, err := q.s.Get(right)
	if err != nil {
		return 0, err
	}

	swap := left
	var v T
	for i := left; i < right; i++ {
		if v, err = q.s.Get(i); err != nil {
			return 0, err
		}
		if q.cmp(v, pivot) <= 0 {
			if err = collection.Swap(q.s, i, swap); err != nil {
				return 0, err
			}
			swap++
		}
	}
	if err = collection.Swap(q.s, right, swap); err != nil {
		return 0, err
	}

	return swap, nil
}

// IsSorted reports whether s is in ascending order by c.
// Complexity: O(n).
func IsSorted[T any](s collection.Reader[T], c compare.Func[T]) (bool, error) {
	if s == nil {
		return false, ErrNilSequence
	}
	if c == nil {
		return false, ErrNilComparator
	}

	n := s.Len()
	if n <= 1 {
		return true, nil
	}
	prev, err := s.Get(0)
	if err != nil {
		return false, err
	}
	for i := 1; i < n; i++ {
		cur, err := s.Get(i)
		if err != nil {
			return false, err
		}
		if c(prev, cur) > 0 {
			return false, nil
		}
		prev = cur
	}

	return true, nil
}
