// SPDX-License-Identifier: MIT

package compare

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a 64-bit hash. It must return the same value for equal
// keys for as long as the keys live in a map; keys must not be mutated in a
// way that changes their hash after insertion.
type Hasher[K any] func(key K) uint64

// StringHasher hashes the string bytes with xxhash64. The result is stable
// across processes, which keeps slot layouts reproducible in tests.
func StringHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Default returns the hasher used by hashmap.New when none is supplied:
// StringHasher for string keys, maphash.Comparable with a per-hasher seed for
// any other comparable type.
func Default[K comparable]() Hasher[K] {
	var zero K
	if _, ok := any(zero).(string); ok {
		return func(key K) uint64 {
			return xxhash.Sum64String(any(key).(string))
		}
	}

	seed := maphash.MakeSeed()

	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}
