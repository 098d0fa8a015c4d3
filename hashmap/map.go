// SPDX-License-Identifier: MIT

package hashmap

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvcoll/compare"
	"github.com/katalvlaran/lvcoll/dynarray"
)

// Map is an open-addressing hash table with linear probing.
// Removed keys leave tombstones that count toward the resize threshold until
// the next rebuild.
type Map[K comparable, V any] struct {
	entries    []entry[K, V] // len(entries) is the capacity
	count      int           // live entries
	used       int           // live entries + tombstones
	threshold  int           // resize when used reaches this
	loadFactor float64
	hasher     compare.Hasher[K]

	// Insertion-ordered views; keys[i] and values[i] belong to the same entry.
	keys   *dynarray.Array[K]
	values *dynarray.Array[V]
}

// New returns an empty Map using compare.Default[K]() as the hasher.
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	return NewWithHasher[K, V](compare.Default[K](), opts...)
}

// NewWithHasher returns an empty Map that hashes keys with h.
// Panics if h is nil.
func NewWithHasher[K comparable, V any](h compare.Hasher[K], opts ...Option) *Map[K, V] {
	if h == nil {
		panic("hashmap: NewWithHasher: hasher is nil")
	}

	cfg := config{capacity: DefaultCapacity, loadFactor: DefaultLoadFactor}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Map[K, V]{
		entries:    make([]entry[K, V], cfg.capacity),
		loadFactor: cfg.loadFactor,
		hasher:     h,
		keys:       dynarray.New[K](),
		values:     dynarray.New[V](),
	}
	m.threshold = m.thresholdFor(cfg.capacity)

	return m
}

// thresholdFor returns floor(capacity × loadFactor), at least 1.
func (m *Map[K, V]) thresholdFor(capacity int) int {
	t := int(float64(capacity) * m.loadFactor)
	if t < 1 {
		t = 1
	}

	return t
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.count }

// Cap returns the number of slots.
func (m *Map[K, V]) Cap() int { return len(m.entries) }

// Tombstones returns the number of deleted slots not yet reclaimed.
func (m *Map[K, V]) Tombstones() int { return m.used - m.count }

// Stats returns a snapshot of table occupancy.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Len:        m.count,
		Tombstones: m.used - m.count,
		Capacity:   len(m.entries),
		Threshold:  m.threshold,
	}
}

// bucket maps a hash to its home slot.
func (m *Map[K, V]) bucket(h uint64) int {
	return int(h % uint64(len(m.entries)))
}

// probe walks the chain starting at key's home slot, passing through
// tombstones, and stops at the first live match (found == true) or the first
// EMPTY slot (found == false). slot is -1 when the whole table was scanned
// without meeting either.
// Complexity: O(capacity) worst case.
func (m *Map[K, V]) probe(key K, h uint64) (slot int, found bool) {
	capacity := len(m.entries)
	i := m.bucket(h)
	for n := 0; n < capacity; n++ {
		e := &m.entries[i]
		switch e.state {
		case slotEmpty:
			return i, false
		case slotOccupied:
			if e.hash == h && e.key == key {
				return i, true
			}
		}
		i++
		if i == capacity {
			i = 0
		}
	}

	return -1, false
}

// Add inserts key with value. It fails with ErrDuplicateKey when key is live.
// The table is rebuilt first when occupancy has reached the threshold.
// Complexity: O(1) expected, O(capacity) worst case.
func (m *Map[K, V]) Add(key K, value V) error {
	if m.used >= m.threshold {
		m.resize()
	}

	h := m.hasher(key)
	slot, found := m.probe(key, h)
	if found {
		return fmt.Errorf("Map.Add(%v): %w", key, ErrDuplicateKey)
	}
	m.insertAt(slot, key, value, h)

	return nil
}

// Set stores value under key, overwriting a live entry in place or inserting a
// new one. It never fails.
// Complexity: O(1) expected for the table, O(n) to update the Values view on overwrite.
func (m *Map[K, V]) Set(key K, value V) {
	h := m.hasher(key)
	if slot, found := m.probe(key, h); found {
		m.entries[slot].value = value
		if i := m.keys.IndexOf(key, compare.Equal[K]); i >= 0 {
			_ = m.values.Set(i, value)
		}

		return
	}

	if m.used >= m.threshold {
		m.resize()
	}
	slot, _ := m.probe(key, h)
	m.insertAt(slot, key, value, h)
}

// insertAt writes a new live entry into slot, which must be EMPTY. A slot of -1
// (no EMPTY slot left) forces a rebuild before writing.
func (m *Map[K, V]) insertAt(slot int, key K, value V, h uint64) {
	for slot < 0 {
		m.resize()
		slot, _ = m.probe(key, h)
	}

	m.entries[slot] = entry[K, V]{hash: h, key: key, value: value, state: slotOccupied}
	m.count++
	m.used++
	m.keys.Add(key)
	m.values.Add(value)
}

// Lookup returns the value stored under key and whether it was found.
// Complexity: O(1) expected.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if slot, found := m.probe(key, m.hasher(key)); found {
		return m.entries[slot].value, true
	}
	var zero V

	return zero, false
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return v, fmt.Errorf("Map.Get(%v): %w", key, ErrKeyNotFound)
	}

	return v, nil
}

// ContainsKey reports whether key is live.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, found := m.probe(key, m.hasher(key))

	return found
}

// Remove turns key's slot into a tombstone and reports whether key was live.
// The slot is reclaimed on the next resize.
// Complexity: O(1) expected for the table, O(n) for the views.
func (m *Map[K, V]) Remove(key K) bool {
	slot, found := m.probe(key, m.hasher(key))
	if !found {
		return false
	}

	e := &m.entries[slot]
	var (
		zk K
		zv V
	)
	e.key, e.value = zk, zv
	e.state = slotTombstone
	m.count--

	if i := m.keys.IndexOf(key, compare.Equal[K]); i >= 0 {
		_ = m.keys.RemoveAt(i)
		_ = m.values.RemoveAt(i)
	}

	return true
}

// resize rebuilds the table, re-inserting every live entry using its cached
// hash. Tombstones are dropped, so every probe in the new table stops at the
// first EMPTY slot. The capacity doubles, except when live entries fill at
// most a quarter of the threshold: then the occupancy is mostly tombstones and
// the table is rebuilt at its current capacity, so add/remove churn on a small
// map does not grow it without bound.
// Complexity: O(capacity).
func (m *Map[K, V]) resize() {
	newCap := len(m.entries)
	if m.count > m.threshold/4 {
		newCap *= 2
	}
	fresh := make([]entry[K, V], newCap)

	for i := range m.entries {
		e := m.entries[i]
		if e.state != slotOccupied {
			continue
		}
		j := int(e.hash % uint64(newCap))
		for fresh[j].state != slotEmpty {
			j++
			if j == newCap {
				j = 0
			}
		}
		fresh[j] = e
	}

	m.entries = fresh
	m.used = m.count
	m.threshold = m.thresholdFor(newCap)
}

// Clear removes every entry and tombstone. Capacity is kept.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.count, m.used = 0, 0
	m.keys.Clear()
	m.values.Clear()
}

// All yields live entries in physical slot order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			e := &m.entries[i]
			if e.state != slotOccupied {
				continue
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns the live keys in insertion order.
func (m *Map[K, V]) Keys() []K { return m.keys.ToSlice() }

// Values returns the live values in key insertion order.
func (m *Map[K, V]) Values() []V { return m.values.ToSlice() }
