// SPDX-License-Identifier: MIT

// Package collection declares the minimal capabilities that search and sort
// routines need from a container, so they can run over a dynarray.Array, a
// plain slice or any user type without depending on a concrete base type.
//
//	Reader[T]     Len() + Get(i)        (read-only, used by search)
//	Indexable[T]  Reader[T] + Set(i, v) (read-write, used by sort)
//
// Slice[T] adapts an ordinary Go slice to both interfaces.
//
// Errors:
//
//	ErrIndexOutOfRange - Get/Set called with i outside [0, Len()).
package collection
