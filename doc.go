// Package lvcoll is a small set of generic containers and the search and sort
// routines that run over them.
//
// 🚀 What is in lvcoll?
//
//	A single-threaded, allocation-aware collections library:
//		• Containers: dynamic array, doubly linked list, open-addressing hash map
//		• Search: linear (array or list), jump search, all-matches and range variants
//		• Sort: in-place Lomuto quicksort over any indexable sequence
//		• Ordering & hashing: comparator combinators, xxhash/maphash hashers
//		• Records: stock price model with a JSON codec and a synthetic generator
//
// Under the hood, everything is organized by concern:
//
//	compare/    - Func/Eq comparators, Natural, Reverse, Then; key hashers
//	collection/ - Reader / Indexable views shared by search and sorting
//	dynarray/   - Array[T]: amortized O(1) append, index access, change events
//	linkedlist/ - List[T]: O(1) insert/remove at both ends and at a node
//	hashmap/    - Map[K,V]: linear probing, tombstones, doubling resize
//	search/     - Linear, LinearList, Jump, JumpAll, JumpRange
//	sorting/    - Quicksort, QuicksortFunc, IsSorted
//	stock/      - Record, Load/Write, Book, Generate
//	cmd/stockbench - CLI timing every routine over a record file
//
// Quick example:
//
//	a := dynarray.From(5, 2, 9, 1)
//	_ = sorting.Quicksort[int](a)                            // 1 2 5 9
//	i, _ := search.Jump[int](a, 5, compare.Natural[int]())   // i == 2
//
// None of the containers lock; share them across goroutines only behind
// your own synchronization.
//
//	go get github.com/katalvlaran/lvcoll
package lvcoll
