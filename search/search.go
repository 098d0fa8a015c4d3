// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcoll/collection"
	"github.com/katalvlaran/lvcoll/compare"
	"github.com/katalvlaran/lvcoll/linkedlist"
)

// validate checks the arguments shared by every routine over a Reader.
func validate[T any](seq collection.Reader[T], cmp compare.Func[T]) error {
	if seq == nil {
		return ErrNilSequence
	}
	if cmp == nil {
		return ErrNilComparator
	}

	return nil
}

// Linear returns the first index i with cmp(seq[i], key) == 0, or -1.
// Complexity: O(n) comparisons.
func Linear[T any](seq collection.Reader[T], key T, cmp compare.Func[T]) (int, error) {
	if err := validate(seq, cmp); err != nil {
		return -1, err
	}

	n := seq.Len()
	for i := 0; i < n; i++ {
		v, err := seq.Get(i)
		if err != nil {
			return -1, fmt.Errorf("search: Linear: %w", err)
		}
		if cmp(v, key) == 0 {
			return i, nil
		}
	}

	return -1, nil
}

// LinearList walks l from head to tail and returns every value comparing equal
// to key, in list order. It returns ErrNotFound when nothing matches.
// Complexity: O(n) comparisons.
func LinearList[T any](l *linkedlist.List[T], key T, cmp compare.Func[T]) ([]T, error) {
	if l == nil {
		return nil, ErrNilSequence
	}
	if cmp == nil {
		return nil, ErrNilComparator
	}

	var found []T
	for n := l.Head(); n != nil; n = n.Next() {
		if cmp(n.Value, key) == 0 {
			found = append(found, n.Value)
		}
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	return found, nil
}

// jumpStep returns ⌊√n⌋, at least 1 for n ≥ 1.
func jumpStep(n int) int {
	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}

	return step
}

// locateBlock jumps through sorted in blocks of ⌊√n⌋ and returns the start of
// the first block whose last element does not compare less than key.
// ok is false when every element compares less than key.
func locateBlock[T any](sorted collection.Reader[T], key T, cmp compare.Func[T]) (prev, step int, ok bool, err error) {
	n := sorted.Len()
	if n == 0 {
		return 0, 0, false, nil
	}

	step = jumpStep(n)
	for {
		last, err := sorted.Get(min(prev+step, n) - 1)
		if err != nil {
			return 0, step, false, err
		}
		if cmp(last, key) >= 0 {
			return prev, step, true, nil
		}
		prev += step
		if prev >= n {
			return prev, step, false, nil
		}
	}
}

// Jump returns the index of an element comparing equal to key in a sequence
// sorted ascending by cmp, or -1.
// Complexity: O(√n) comparisons.
func Jump[T any](sorted collection.Reader[T], key T, cmp compare.Func[T]) (int, error) {
	if err := validate(sorted, cmp); err != nil {
		return -1, err
	}

	prev, step, ok, err := locateBlock(sorted, key, cmp)
	if err != nil {
		return -1, fmt.Errorf("search: Jump: %w", err)
	}
	if !ok {
		return -1, nil
	}

	end := min(prev+step, sorted.Len())
	for i := prev; i < end; i++ {
		v, err := sorted.Get(i)
		if err != nil {
			return -1, fmt.Errorf("search: Jump: %w", err)
		}
		c := cmp(v, key)
		if c == 0 {
			return i, nil
		}
		if c > 0 {
			break // passed the key
		}
	}

	return -1, nil
}

// JumpAll returns every element comparing equal to key in a sequence sorted
// ascending by cmp. The scan starts at the block located by jumping and stops
// at the first element greater than key, so runs of equal keys that cross a
// block boundary are returned whole. Zero matches yield an empty, non-nil slice.
// Complexity: O(√n + k) comparisons for k matches.
func JumpAll[T any](sorted collection.Reader[T], key T, cmp compare.Func[T]) ([]T, error) {
	if err := validate(sorted, cmp); err != nil {
		return nil, err
	}

	found := make([]T, 0)
	prev, _, ok, err := locateBlock(sorted, key, cmp)
	if err != nil {
		return nil, fmt.Errorf("search: JumpAll: %w", err)
	}
	if !ok {
		return found, nil
	}

	n := sorted.Len()
	for i := prev; i < n; i++ {
		v, err := sorted.Get(i)
		if err != nil {
			return nil, fmt.Errorf("search: JumpAll: %w", err)
		}
		c := cmp(v, key)
		if c > 0 {
			break
		}
		if c == 0 {
			found = append(found, v)
		}
	}

	return found, nil
}

// JumpRange returns every element e with lo ≤ e ≤ hi in a sequence sorted
// ascending by cmp, in sequence order. Zero matches yield an empty, non-nil slice.
// Complexity: O(√n + k) comparisons for k matches.
func JumpRange[T any](sorted collection.Reader[T], lo, hi T, cmp compare.Func[T]) ([]T, error) {
	if err := validate(sorted, cmp); err != nil {
		return nil, err
	}
	if cmp(lo, hi) > 0 {
		return nil, ErrInvalidRange
	}

	found := make([]T, 0)
	prev, _, ok, err := locateBlock(sorted, lo, cmp)
	if err != nil {
		return nil, fmt.Errorf("search: JumpRange: %w", err)
	}
	if !ok {
		return found, nil
	}

	n := sorted.Len()
	for i := prev; i < n; i++ {
		v, err := sorted.Get(i)
		if err != nil {
			return nil, fmt.Errorf("search: JumpRange: %w", err)
		}
		if cmp(v, hi) > 0 {
			break
		}
		if cmp(v, lo) >= 0 {
			found = append(found, v)
		}
	}

	return found, nil
}
