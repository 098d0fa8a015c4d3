package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvcoll/collection"
	"github.com/katalvlaran/lvcoll/compare"
	"github.com/katalvlaran/lvcoll/search"
)

// ExampleJumpAll returns a run of equal keys even when it spans blocks.
func ExampleJumpAll() {
	sorted := collection.Slice[int]{1, 2, 3, 3, 3, 3, 4, 6, 8}

	i, _ := search.Jump[int](sorted, 6, compare.Natural[int]())
	all, _ := search.JumpAll[int](sorted, 3, compare.Natural[int]())
	rng, _ := search.JumpRange[int](sorted, 4, 7, compare.Natural[int]())
	fmt.Println(i, all, rng)
	// Output:
	// 7 [3 3 3 3] [4 6]
}
