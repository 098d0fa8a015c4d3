package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcoll/collection"
	"github.com/katalvlaran/lvcoll/compare"
	"github.com/katalvlaran/lvcoll/dynarray"
	"github.com/katalvlaran/lvcoll/linkedlist"
	"github.com/katalvlaran/lvcoll/search"
)

var intCmp = compare.Natural[int]()

// failingReader reports a length but fails every Get.
type failingReader struct{ n int }

var errBroken = errors.New("broken reader")

func (f failingReader) Len() int             { return f.n }
func (f failingReader) Get(int) (int, error) { return 0, errBroken }

func TestLinear(t *testing.T) {
	seq := collection.Slice[int]{4, 2, 7, 2, 9}

	tests := []struct {
		key  int
		want int
	}{
		{4, 0},
		{2, 1}, // first match
		{9, 4},
		{5, -1},
	}
	for _, tc := range tests {
		got, err := search.Linear[int](seq, tc.key, intCmp)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "key %d", tc.key)
	}

	got, err := search.Linear[int](collection.Slice[int]{}, 1, intCmp)
	require.NoError(t, err)
	assert.Equal(t, -1, got)
}

func TestLinear_OverDynArray(t *testing.T) {
	a := dynarray.From("b", "a", "c")
	got, err := search.Linear[string](a, "c", compare.Natural[string]())
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestLinear_Errors(t *testing.T) {
	_, err := search.Linear[int](nil, 1, intCmp)
	assert.ErrorIs(t, err, search.ErrNilSequence)

	_, err = search.Linear[int](collection.Slice[int]{1}, 1, nil)
	assert.ErrorIs(t, err, search.ErrNilComparator)

	_, err = search.Linear[int](failingReader{n: 2}, 1, intCmp)
	assert.ErrorIs(t, err, errBroken)
}

func TestLinearList(t *testing.T) {
	type rec struct {
		key string
		val int
	}
	byKey := func(a, b rec) int { return compare.Natural[string]()(a.key, b.key) }

	l := linkedlist.From(rec{"x", 1}, rec{"y", 2}, rec{"x", 3})

	got, err := search.LinearList(l, rec{key: "x"}, byKey)
	require.NoError(t, err)
	assert.Equal(t, []rec{{"x", 1}, {"x", 3}}, got, "all matches in list order")

	_, err = search.LinearList(l, rec{key: "z"}, byKey)
	assert.ErrorIs(t, err, search.ErrNotFound)

	_, err = search.LinearList(linkedlist.New[rec](), rec{key: "x"}, byKey)
	assert.ErrorIs(t, err, search.ErrNotFound)

	_, err = search.LinearList[rec](nil, rec{}, byKey)
	assert.ErrorIs(t, err, search.ErrNilSequence)
	_, err = search.LinearList(l, rec{}, nil)
	assert.ErrorIs(t, err, search.ErrNilComparator)
}

func TestJump(t *testing.T) {
	seq := collection.Slice[int]{1, 3, 5, 7, 9, 11}

	tests := []struct {
		key  int
		want int
	}{
		{7, 3},
		{4, -1},
		{1, 0},
		{11, 5},
		{0, -1},
		{12, -1},
	}
	for _, tc := range tests {
		got, err := search.Jump[int](seq, tc.key, intCmp)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "key %d", tc.key)
	}
}

func TestJump_EveryPositionAndSize(t *testing.T) {
	for n := 0; n <= 40; n++ {
		seq := make(collection.Slice[int], n)
		for i := range seq {
			seq[i] = i * 2 // even numbers only
		}
		for i := 0; i < n; i++ {
			got, err := search.Jump[int](seq, i*2, intCmp)
			require.NoError(t, err)
			require.Equal(t, i, got, "n=%d key=%d", n, i*2)

			got, err = search.Jump[int](seq, i*2+1, intCmp)
			require.NoError(t, err)
			require.Equal(t, -1, got, "n=%d odd key=%d", n, i*2+1)
		}
	}
}

func TestJump_Errors(t *testing.T) {
	_, err := search.Jump[int](nil, 1, intCmp)
	assert.ErrorIs(t, err, search.ErrNilSequence)
	_, err = search.Jump[int](collection.Slice[int]{1}, 1, nil)
	assert.ErrorIs(t, err, search.ErrNilComparator)
	_, err = search.Jump[int](failingReader{n: 9}, 1, intCmp)
	assert.ErrorIs(t, err, errBroken)
}

func TestJumpAll(t *testing.T) {
	// Run of 3s crosses the block boundary (n=9, step=3: blocks [0,3) [3,6) [6,9)).
	seq := collection.Slice[int]{1, 2, 3, 3, 3, 3, 4, 6, 8}

	got, err := search.JumpAll[int](seq, 3, intCmp)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3, 3}, got)

	got, err = search.JumpAll[int](seq, 5, intCmp)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got, "no match is an empty result, not an error")

	got, err = search.JumpAll[int](seq, 100, intCmp)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = search.JumpAll[int](collection.Slice[int]{}, 1, intCmp)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJumpRange(t *testing.T) {
	seq := collection.Slice[int]{1, 3, 5, 7, 9, 11, 13, 15, 17}

	got, err := search.JumpRange[int](seq, 4, 12, intCmp)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7, 9, 11}, got)

	got, err = search.JumpRange[int](seq, 5, 5, intCmp)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, got, "bounds are inclusive")

	got, err = search.JumpRange[int](seq, 0, 100, intCmp)
	require.NoError(t, err)
	assert.Equal(t, []int(seq), got)

	got, err = search.JumpRange[int](seq, 18, 20, intCmp)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = search.JumpRange[int](seq, 9, 1, intCmp)
	assert.ErrorIs(t, err, search.ErrInvalidRange)
}

func TestSearch_TypedNilArray(t *testing.T) {
	var a *dynarray.Array[int]

	got, err := search.Linear[int](a, 1, intCmp)
	require.NoError(t, err)
	assert.Equal(t, -1, got, "a nil *Array reads as empty")

	got, err = search.Jump[int](a, 1, intCmp)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	all, err := search.JumpAll[int](a, 1, intCmp)
	require.NoError(t, err)
	assert.Empty(t, all)
}
