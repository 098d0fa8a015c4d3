package dynarray_test

import (
	"testing"

	"github.com/katalvlaran/lvcoll/dynarray"
)

func BenchmarkArray_Add(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := dynarray.New[int]()
		for j := 0; j < 1024; j++ {
			a.Add(j)
		}
	}
}

func BenchmarkArray_AddPresized(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a := dynarray.New[int](dynarray.WithCapacity(1024))
		for j := 0; j < 1024; j++ {
			a.Add(j)
		}
	}
}
