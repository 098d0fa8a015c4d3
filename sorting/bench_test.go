package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcoll/collection"
	"github.com/katalvlaran/lvcoll/sorting"
)

// BenchmarkQuicksort_Random10k sorts a fresh copy of 10k shuffled ints per iteration.
func BenchmarkQuicksort_Random10k(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	base := make([]int, 10_000)
	for i := range base {
		base[i] = rng.Int()
	}
	work := make(collection.Slice[int], len(base))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, base)
		_ = sorting.Quicksort[int](work)
	}
}
