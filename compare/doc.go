// SPDX-License-Identifier: MIT

// Package compare defines the ordering, equality and hashing contract shared
// by every generic container and algorithm in lvcoll.
//
// A Func is a three-way comparison: negative when a < b, zero when a == b and
// positive when a > b. Search and sort routines take a Func instead of relying
// on a type constraint, so the same record type can be ordered by different
// keys (e.g. by date for a range search, by ticker for a lookup).
//
// Constructors:
//
//	Natural[T cmp.Ordered]()      // cmp.Compare for built-in ordered types
//	Method[T Comparable[T]]()     // a.Compare(b) for record types
//	Reverse(f)                    // descending order
//	Then(f, g)                    // tie-break f with g
//
// Equality:
//
//	Eq[T]                         // two-way equality predicate
//	Equal[T comparable]           // ==
//	EqualBy(f)                    // f(a, b) == 0, consistent with f
//
// Hashing (map keys only):
//
//	Hasher[K]                     // deterministic for the lifetime of a map
//	StringHasher                  // xxhash64 of the string bytes
//	Default[K comparable]()       // xxhash for strings, maphash otherwise
package compare
