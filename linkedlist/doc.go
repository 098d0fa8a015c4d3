// SPDX-License-Identifier: MIT

// Package linkedlist implements List[T], a doubly linked list with O(1)
// append at either end and O(1) removal given a node handle.
//
// Invariants (hold after every exported call):
//
//   - Head().Prev() == nil and Tail().Next() == nil.
//   - An empty list has Head() == Tail() == nil.
//   - Walking Next from Head visits exactly Len() nodes and ends at Tail.
//
// The list is the only entry point to its nodes. Every node records the list
// it belongs to, so RemoveNode rejects handles from another list or handles
// that were already removed.
//
// Core methods:
//
//	Add(v) / AddFirst(v)   // O(1), return the new node
//	Remove(v, eq) bool     // O(n), first match from Head
//	RemoveNode(n) error    // O(1)
//	Find / Contains        // O(n)
//	CopyTo(dst, start)     // O(n), all-or-nothing
//	All() / Backward()     // lazy head→tail / tail→head iterators
//
// Errors:
//
//	ErrNilDestination      - CopyTo with a nil destination.
//	ErrNegativeIndex       - CopyTo start index < 0.
//	ErrDestinationTooSmall - CopyTo destination cannot hold Len() values.
//	ErrNilNode             - RemoveNode(nil).
//	ErrForeignNode         - RemoveNode with a node not owned by this list.
package linkedlist
