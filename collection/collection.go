// SPDX-License-Identifier: MIT

package collection

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates that an index is outside [0, Len()).
var ErrIndexOutOfRange = errors.New("collection: index out of range")

// Reader is an indexable, read-only view of a sequence.
type Reader[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Get returns the element at i, or an out-of-range error.
	Get(i int) (T, error)
}

// Indexable is a Reader whose elements can be overwritten in place.
type Indexable[T any] interface {
	Reader[T]
	// Set overwrites the element at i, or returns an out-of-range error.
	Set(i int, v T) error
}

// Slice adapts a Go slice to Indexable. Its length is fixed: Set never grows it.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// Get returns s[i].
func (s Slice[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(s) {
		var zero T

		return zero, fmt.Errorf("Slice.Get(%d): %w", i, ErrIndexOutOfRange)
	}

	return s[i], nil
}

// Set assigns s[i] = v.
func (s Slice[T]) Set(i int, v T) error {
	if i < 0 || i >= len(s) {
		return fmt.Errorf("Slice.Set(%d): %w", i, ErrIndexOutOfRange)
	}
	s[i] = v

	return nil
}

// Swap exchanges the elements at i and j through the Indexable interface.
// Complexity: O(1) plus the cost of two Get and two Set calls.
func Swap[T any](s Indexable[T], i, j int) error {
	if i == j {
		return nil
	}
	a, err := s.Get(i)
	if err != nil {
		return err
	}
	b, err := s.Get(j)
	if err != nil {
		return err
	}
	if err = s.Set(i, b); err != nil {
		return err
	}

	return s.Set(j, a)
}

// ToSlice copies every element of r into a new slice in index order.
func ToSlice[T any](r Reader[T]) ([]T, error) {
	out := make([]T, r.Len())
	var err error
	for i := range out {
		if out[i], err = r.Get(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}
