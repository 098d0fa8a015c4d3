// SPDX-License-Identifier: MIT

package compare

import "cmp"

// Func is a three-way comparison returning a negative number when a < b,
// zero when a == b and a positive number when a > b.
// Implementations must define a total order.
type Func[T any] func(a, b T) int

// Comparable is implemented by record types that carry their own natural order.
type Comparable[T any] interface {
	Compare(other T) int
}

// Eq reports whether a and b are equal.
type Eq[T any] func(a, b T) bool

// Natural returns cmp.Compare for any built-in ordered type.
// NaN sorts before every other float, as in cmp.Compare.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Method returns a Func that delegates to T's Compare method.
func Method[T Comparable[T]]() Func[T] {
	return func(a, b T) int { return a.Compare(b) }
}

// Reverse inverts f, turning an ascending order into a descending one.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int { return f(b, a) }
}

// Then returns a Func that orders by f and breaks ties with g.
func Then[T any](f, g Func[T]) Func[T] {
	return func(a, b T) int {
		if c := f(a, b); c != 0 {
			return c
		}

		return g(a, b)
	}
}

// Equal is the == predicate for comparable types.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// EqualBy derives an equality predicate from f so that equality is always
// consistent with the ordering: a and b are equal iff f(a, b) == 0.
func EqualBy[T any](f Func[T]) Eq[T] {
	return func(a, b T) bool { return f(a, b) == 0 }
}

// Sign clamps a comparison result to -1, 0 or +1.
func Sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
