package hashmap_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcoll/hashmap"
)

// ExampleMap shows Add, Set and Remove together with the insertion-ordered
// key view.
func ExampleMap() {
	m := hashmap.New[string, int]()
	_ = m.Add("apple", 1)
	_ = m.Add("pear", 2)

	if err := m.Add("apple", 9); errors.Is(err, hashmap.ErrDuplicateKey) {
		fmt.Println("duplicate rejected")
	}
	m.Set("apple", 10)
	m.Remove("pear")
	m.Set("plum", 3)

	fmt.Println(m.Keys(), m.Values())
	fmt.Println(m.Len(), "live,", m.Tombstones(), "tombstone")
	// Output:
	// duplicate rejected
	// [apple plum] [10 3]
	// 2 live, 1 tombstone
}
