// SPDX-License-Identifier: MIT

// Package sorting implements an in-place recursive quicksort over any
// collection.Indexable.
//
// Algorithm (Lomuto partition):
//
//	pivot := s[right]
//	swap := left
//	for i in [left, right): if s[i] ≤ pivot { s[i] ↔ s[swap]; swap++ }
//	s[right] ↔ s[swap]        // pivot lands on its final index
//	recurse on [left, swap-1] and [swap+1, right]
//
// Properties:
//
//   - In place: O(1) extra memory per frame, O(depth) stack.
//   - Not stable.
//   - O(n log n) on average, O(n²) on already sorted or adversarial input;
//     there is no randomisation or median-of-three pivot.
//   - Length ≤ 1 returns immediately with a nil error.
//
// Errors:
//
//	ErrNilSequence   - s is nil.
//	ErrNilComparator - cmp is nil (QuicksortFunc, IsSorted).
//	any error returned by s.Get / s.Set.
package sorting
