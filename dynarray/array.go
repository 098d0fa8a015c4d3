// SPDX-License-Identifier: MIT

package dynarray

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvcoll/compare"
)

// Array is a growable sequence backed by a contiguous slice.
// len(items) is the capacity; count is the number of live elements.
type Array[T any] struct {
	items []T // backing store, [count, len(items)) holds zero values
	count int // live elements

	listeners []listener[T] // OnChange callbacks in registration order
	nextID    int           // id for the next listener
}

// New returns an empty Array configured by opts.
// Complexity: O(capacity).
func New[T any](opts ...Option) *Array[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Array[T]{}
	if cfg.capacity > 0 {
		a.items = make([]T, cfg.capacity)
	}

	return a
}

// From returns an Array holding values in order.
// Complexity: O(len(values)).
func From[T any](values ...T) *Array[T] {
	a := New[T](WithCapacity(len(values)))
	copy(a.items, values)
	a.count = len(values)

	return a
}

// Len returns the number of live elements.
// A nil *Array has length 0.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}

	return a.count
}

// Cap returns the size of the backing store.
func (a *Array[T]) Cap() int { return len(a.items) }

// ensureCapacity grows the backing store so that it holds at least min elements.
// Growth doubles the current capacity (4 when empty) and falls back to min when
// doubling is insufficient.
func (a *Array[T]) ensureCapacity(min int) {
	if len(a.items) >= min {
		return
	}

	newCap := len(a.items) * 2
	if newCap == 0 {
		newCap = minCapacity
	}
	if newCap < min {
		newCap = min
	}

	grown := make([]T, newCap)
	copy(grown, a.items[:a.count])
	a.items = grown
}

// Add appends v and returns its index.
// Complexity: O(1) amortized.
func (a *Array[T]) Add(v T) int {
	a.ensureCapacity(a.count + 1)
	a.items[a.count] = v
	idx := a.count
	a.count++
	a.notify(Event[T]{Op: OpAdd, Index: idx, Value: v})

	return idx
}

// Insert places v at index i, shifting [i, Len()) one slot to the right.
// i == Len() appends.
// Complexity: O(n).
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.count {
		return arrayErrorf("Insert", i, ErrIndexOutOfRange)
	}

	a.ensureCapacity(a.count + 1)
	copy(a.items[i+1:a.count+1], a.items[i:a.count])
	a.items[i] = v
	a.count++
	a.notify(Event[T]{Op: OpInsert, Index: i, Value: v})

	return nil
}

// RemoveAt deletes the element at i, shifting the tail one slot to the left
// and clearing the vacated last slot.
// Complexity: O(n).
func (a *Array[T]) RemoveAt(i int) error {
	if i < 0 || i >= a.count {
		return arrayErrorf("RemoveAt", i, ErrIndexOutOfRange)
	}

	removed := a.items[i]
	a.count--
	if i < a.count {
		copy(a.items[i:a.count], a.items[i+1:a.count+1])
	}
	var zero T
	a.items[a.count] = zero
	a.notify(Event[T]{Op: OpRemove, Index: i, Value: removed})

	return nil
}

// Remove deletes the first element equal to v and reports whether one was found.
// Complexity: O(n).
func (a *Array[T]) Remove(v T, eq compare.Eq[T]) bool {
	i := a.IndexOf(v, eq)
	if i < 0 {
		return false
	}

	// i is in range by construction.
	_ = a.RemoveAt(i)

	return true
}

// Get returns the element at i.
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.count {
		var zero T

		return zero, arrayErrorf("Get", i, ErrIndexOutOfRange)
	}

	return a.items[i], nil
}

// Set overwrites the element at i.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.count {
		return arrayErrorf("Set", i, ErrIndexOutOfRange)
	}
	a.items[i] = v
	a.notify(Event[T]{Op: OpSet, Index: i, Value: v})

	return nil
}

// IndexOf returns the index of the first element equal to v, or -1.
// Only live slots are compared. A nil eq matches nothing.
// Complexity: O(n).
func (a *Array[T]) IndexOf(v T, eq compare.Eq[T]) int {
	if eq == nil {
		return -1
	}
	for i := 0; i < a.count; i++ {
		if eq(a.items[i], v) {
			return i
		}
	}

	return -1
}

// Contains reports whether an element equal to v is present.
func (a *Array[T]) Contains(v T, eq compare.Eq[T]) bool {
	return a.IndexOf(v, eq) >= 0
}

// Clear removes every element. Live slots are zeroed; capacity is kept.
// No event is emitted when the Array is already empty.
// Complexity: O(n).
func (a *Array[T]) Clear() {
	if a.count == 0 {
		return
	}
	clear(a.items[:a.count])
	a.count = 0
	a.notify(Event[T]{Op: OpClear, Index: -1})
}

// Clone returns an independent copy with the same elements and capacity.
// Listeners are not copied.
// Complexity: O(capacity).
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{count: a.count}
	if a.items != nil {
		c.items = make([]T, len(a.items))
		copy(c.items, a.items[:a.count])
	}

	return c
}

// CopyTo copies the live elements into dst starting at dst[start].
// Nothing is copied on error.
// Complexity: O(n).
func (a *Array[T]) CopyTo(dst []T, start int) error {
	if start < 0 {
		return arrayErrorf("CopyTo", start, ErrNegativeIndex)
	}
	if len(dst)-start < a.count {
		return arrayErrorf("CopyTo", start, ErrDestinationTooSmall)
	}
	copy(dst[start:], a.items[:a.count])

	return nil
}

// ToSlice returns a fresh slice holding the live elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.count)
	copy(out, a.items[:a.count])

	return out
}

// All yields (index, element) pairs in index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Values yields the elements in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// OnChange registers fn to be called after every structural mutation and
// returns a function that unregisters it. A nil fn is ignored.
func (a *Array[T]) OnChange(fn func(Event[T])) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	id := a.nextID
	a.nextID++
	a.listeners = append(a.listeners, listener[T]{id: id, fn: fn})

	return func() {
		// A fresh slice keeps a notify loop already in progress intact.
		a.listeners = slices.DeleteFunc(slices.Clone(a.listeners), func(l listener[T]) bool {
			return l.id == id
		})
	}
}

// notify delivers e to every listener.
func (a *Array[T]) notify(e Event[T]) {
	for _, l := range a.listeners {
		l.fn(e)
	}
}
