package linkedlist_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcoll/linkedlist"
)

// ExampleList_RemoveNode removes a node by handle in O(1) and walks the list
// in both directions.
func ExampleList_RemoveNode() {
	l := linkedlist.From(1, 2, 3)
	mid := l.Head().Next()
	l.AddFirst(0)

	if err := l.RemoveNode(mid); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(slices.Collect(l.All()))
	fmt.Println(slices.Collect(l.Backward()))
	// Output:
	// [0 1 3]
	// [3 1 0]
}
