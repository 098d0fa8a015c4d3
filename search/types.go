// SPDX-License-Identifier: MIT

package search

import "errors"

// Sentinel errors for search routines.
var (
	// ErrNilSequence is returned when the sequence argument is a nil interface
	// or the list argument is a nil *linkedlist.List. A typed nil stored in a
	// Reader, such as a nil *dynarray.Array, is not detected; it reads as empty.
	ErrNilSequence = errors.New("search: sequence is nil")

	// ErrNilComparator is returned when the comparison function is nil.
	ErrNilComparator = errors.New("search: comparator is nil")

	// ErrNotFound is returned by LinearList when no element matches the key.
	ErrNotFound = errors.New("search: key not found")

	// ErrInvalidRange is returned by JumpRange when lo compares greater than hi.
	ErrInvalidRange = errors.New("search: lower bound greater than upper bound")
)
