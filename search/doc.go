// SPDX-License-Identifier: MIT

// Package search implements comparison-based lookups over any
// collection.Reader and over linkedlist.List.
//
// Routines:
//
//	Linear(seq, key, cmp)        // first index with cmp == 0, else -1      O(n)
//	LinearList(list, key, cmp)   // every match, ErrNotFound when none       O(n)
//	Jump(sorted, key, cmp)       // index or -1                              O(√n)
//	JumpAll(sorted, key, cmp)    // every element equal to key, may be empty O(√n + k)
//	JumpRange(sorted, lo, hi, cmp) // every element in [lo, hi]              O(√n + k)
//
// Jump search:
//
//	step := ⌊√n⌋
//	advance prev by step while seq[min(prev+step, n)-1] < key
//	scan [prev, min(prev+step, n)) linearly
//
// The jump routines require the sequence to be sorted ascending by cmp; this is
// a precondition and is not checked.
//
// Zero matches are reported differently on purpose: Linear and Jump return -1,
// JumpAll and JumpRange return an empty slice, and LinearList returns
// ErrNotFound because its callers treat the key as one that must exist.
//
// Errors:
//
//	ErrNilSequence   - seq or list is nil.
//	ErrNilComparator - cmp is nil.
//	ErrNotFound      - LinearList found no match.
//	ErrInvalidRange  - JumpRange with lo > hi.
//	any error returned by seq.Get.
package search
