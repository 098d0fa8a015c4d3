// SPDX-License-Identifier: MIT

package dynarray

import (
	"errors"
	"fmt"
)

// Sentinel errors for Array operations.
var (
	// ErrIndexOutOfRange indicates an index outside the valid bound of the call.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrNegativeIndex indicates a negative destination start index in CopyTo.
	ErrNegativeIndex = errors.New("dynarray: negative start index")

	// ErrDestinationTooSmall indicates the CopyTo destination lacks room for Len() elements.
	ErrDestinationTooSmall = errors.New("dynarray: destination too small")
)

// minCapacity is the capacity allocated on the first growth of an empty Array.
const minCapacity = 4

// arrayErrorf wraps err with the Array method name and offending index.
func arrayErrorf(method string, index int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, index, err)
}

// Op identifies the structural mutation reported by an Event.
type Op int

const (
	OpAdd    Op = iota // element appended
	OpInsert           // element inserted before the end
	OpRemove           // element removed
	OpSet              // element overwritten
	OpClear            // all elements removed
)

// String returns the lower-case name of the operation.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Event describes one structural mutation of an Array.
// Index is -1 for OpClear. Value holds the added, inserted, removed or newly
// set element; it is the zero value for OpClear.
type Event[T any] struct {
	Op    Op
	Index int
	Value T
}

// listener is a registered OnChange callback.
type listener[T any] struct {
	id int
	fn func(Event[T])
}

// Option configures an Array at construction time.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity preallocates room for n elements.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dynarray: WithCapacity(%d): capacity must be non-negative", n))
	}

	return func(c *config) { c.capacity = n }
}
