// SPDX-License-Identifier: MIT

package linkedlist

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvcoll/compare"
)

// Sentinel errors for List operations.
var (
	ErrNilDestination      = errors.New("linkedlist: destination is nil")
	ErrNegativeIndex       = errors.New("linkedlist: negative start index")
	ErrDestinationTooSmall = errors.New("linkedlist: destination too small")
	ErrNilNode             = errors.New("linkedlist: node is nil")
	ErrForeignNode         = errors.New("linkedlist: node does not belong to this list")
)

// Node is an element of a List.
type Node[T any] struct {
	Value T

	next, prev *Node[T]
	list       *List[T] // owner; nil once removed
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *Node[T]
	count      int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From returns a List holding values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Add(v)
	}

	return l
}

// Len returns the number of nodes. A nil *List has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.count
}

// Head returns the first node, or nil when empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil when empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Add appends v at the tail and returns its node.
// Complexity: O(1).
func (l *List[T]) Add(v T) *Node[T] {
	n := &Node[T]{Value: v, list: l}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.count++

	return n
}

// AddFirst prepends v at the head and returns its node.
// Complexity: O(1).
func (l *List[T]) AddFirst(v T) *Node[T] {
	n := &Node[T]{Value: v, list: l}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.count++

	return n
}

// Find returns the first node whose value equals v, scanning from the head.
// Returns nil when absent or when eq is nil.
// Complexity: O(n).
func (l *List[T]) Find(v T, eq compare.Eq[T]) *Node[T] {
	if eq == nil {
		return nil
	}
	for n := l.head; n != nil; n = n.next {
		if eq(n.Value, v) {
			return n
		}
	}

	return nil
}

// Contains reports whether a value equal to v is present.
// Complexity: O(n).
func (l *List[T]) Contains(v T, eq compare.Eq[T]) bool {
	return l.Find(v, eq) != nil
}

// Remove unlinks the first node whose value equals v and reports whether one
// was found.
// Complexity: O(n).
func (l *List[T]) Remove(v T, eq compare.Eq[T]) bool {
	n := l.Find(v, eq)
	if n == nil {
		return false
	}
	l.unlink(n)

	return true
}

// RemoveNode unlinks n.
// Complexity: O(1).
func (l *List[T]) RemoveNode(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.list != l {
		return ErrForeignNode
	}
	l.unlink(n)

	return nil
}

// unlink re-points n's neighbours around it, fixing head and tail at the edges.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.next, n.prev, n.list = nil, nil, nil
	l.count--
}

// Clear drops every node.
// Complexity: O(n); nodes are detached so stale handles are rejected by RemoveNode.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev, n.list = nil, nil, nil
		n = next
	}
	l.head, l.tail, l.count = nil, nil, 0
}

// CopyTo copies the values into dst starting at dst[start], in head→tail order.
// Nothing is copied on error.
// Complexity: O(n).
func (l *List[T]) CopyTo(dst []T, start int) error {
	if dst == nil {
		return ErrNilDestination
	}
	if start < 0 {
		return fmt.Errorf("List.CopyTo(%d): %w", start, ErrNegativeIndex)
	}
	if len(dst)-start < l.count {
		return fmt.Errorf("List.CopyTo(%d): need %d slots, have %d: %w",
			start, l.count, len(dst)-start, ErrDestinationTooSmall)
	}

	i := start
	for n := l.head; n != nil; n = n.next {
		dst[i] = n.Value
		i++
	}

	return nil
}

// ToSlice returns the values in head→tail order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}

	return out
}

// All yields values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward yields values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}
