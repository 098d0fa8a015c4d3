// SPDX-License-Identifier: MIT

package hashmap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Map operations.
var (
	// ErrDuplicateKey indicates Add was called with a key that is already live.
	ErrDuplicateKey = errors.New("hashmap: duplicate key")

	// ErrKeyNotFound indicates Get was called with a key that is not live.
	ErrKeyNotFound = errors.New("hashmap: key not found")
)

// Defaults.
const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 1.0
)

// slotState is the life-cycle state of a table slot.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// entry is one table slot. hash is cached so resize never rehashes keys.
type entry[K comparable, V any] struct {
	hash  uint64
	key   K
	value V
	state slotState
}

// Option configures a Map at construction time.
type Option func(*config)

type config struct {
	capacity   int
	loadFactor float64
}

// WithCapacity sets the initial slot count.
// Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("hashmap: WithCapacity(%d): capacity must be >= 1", n))
	}

	return func(c *config) { c.capacity = n }
}

// WithLoadFactor sets the occupancy ratio that triggers a resize.
// Panics unless 0 < f <= 1.
func WithLoadFactor(f float64) Option {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		panic(fmt.Sprintf("hashmap: WithLoadFactor(%v): must be in (0, 1]", f))
	}

	return func(c *config) { c.loadFactor = f }
}

// Stats is a snapshot of table occupancy.
type Stats struct {
	Len        int // live entries
	Tombstones int // deleted slots awaiting the next resize
	Capacity   int // slot count
	Threshold  int // occupancy that triggers the next resize
}
