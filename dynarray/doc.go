// SPDX-License-Identifier: MIT

// Package dynarray implements Array[T], a growable, index-addressable
// sequence with amortized O(1) append.
//
// Storage model:
//
//   - A backing slice whose length is the capacity; only [0, Len()) is live.
//   - Capacity starts at 4 on first growth and doubles whenever an insert would
//     exceed it (or jumps straight to the requested minimum if doubling is not
//     enough). Capacity never shrinks.
//   - Vacated slots are reset to the zero value so removed elements can be
//     garbage collected.
//
// Core methods:
//
//	Add(v) int                  // O(1) amortized, returns the new index
//	Insert(i, v) error          // O(n), 0 ≤ i ≤ Len()
//	RemoveAt(i) error           // O(n), 0 ≤ i < Len()
//	Remove(v, eq) bool          // O(n), first match
//	Get(i) / Set(i, v)          // O(1), 0 ≤ i < Len()
//	IndexOf(v, eq) int          // O(n), -1 when absent
//	Clear()                     // O(n), capacity kept
//	All() / Values()            // lazy, restartable iterators
//
// Array satisfies collection.Indexable, so it can be passed directly to the
// search and sorting packages.
//
// Change notification:
//
//	cancel := a.OnChange(func(e dynarray.Event[T]) { ... })
//
// Callbacks run synchronously after Add, Insert, RemoveAt, Set and Clear,
// in registration order. There is no package-level state.
//
// Array is not safe for concurrent use; mutating it while ranging over All or
// Values has unspecified results.
//
// Errors:
//
//	ErrIndexOutOfRange     - index outside the valid bound for the operation.
//	ErrNegativeIndex       - CopyTo start index < 0.
//	ErrDestinationTooSmall - CopyTo destination cannot hold Len() elements.
package dynarray
