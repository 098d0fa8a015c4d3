// SPDX-License-Identifier: MIT

// Package hashmap implements Map[K,V], a hash table with open addressing,
// linear probing, tombstone deletion and capacity doubling.
//
// Slot life cycle:
//
//	EMPTY ──Add──▶ OCCUPIED ──Remove──▶ TOMBSTONE
//	   ▲                                    │
//	   └──────────── resize (rebuild) ◀─────┘
//
// A tombstone keeps probe chains intact: lookups pass through it and only an
// EMPTY slot ends a probe. Tombstones are reclaimed only when the table is
// rebuilt, which happens when occupancy (live + tombstones) reaches the
// threshold = capacity × load factor. The default load factor is 1.0, so the
// table grows once every slot has been used. Every probe is bounded by the
// capacity, so a table without EMPTY slots never loops.
//
// Bucket index: hash(key) mod capacity, where hash is an unsigned 64-bit value
// cached per entry and reused on resize.
//
// Two insertion entry points:
//
//	Add(k, v) error  // ErrDuplicateKey when k is live
//	Set(k, v)        // overwrite when k is live, insert otherwise
//
// Lookups:
//
//	Lookup(k) (V, bool)   // miss is not an error
//	Get(k) (V, error)     // miss is ErrKeyNotFound
//
// Keys() and Values() are insertion-ordered views kept alongside the table.
// All() yields live entries in physical slot order.
//
// Hashing defaults to compare.Default[K](): xxhash64 for string keys and
// hash/maphash for any other comparable key. NewWithHasher installs a custom one.
//
// Map is not safe for concurrent use.
package hashmap
