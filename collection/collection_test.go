package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcoll/collection"
)

func TestSlice_GetSet(t *testing.T) {
	s := collection.Slice[string]{"a", "b"}
	assert.Equal(t, 2, s.Len())

	v, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	require.NoError(t, s.Set(0, "z"))
	assert.Equal(t, "z", s[0])

	_, err = s.Get(2)
	assert.ErrorIs(t, err, collection.ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Set(-1, "x"), collection.ErrIndexOutOfRange)
}

func TestSwapAndToSlice(t *testing.T) {
	s := collection.Slice[int]{1, 2, 3}
	require.NoError(t, collection.Swap[int](s, 0, 2))
	require.NoError(t, collection.Swap[int](s, 1, 1))
	assert.Equal(t, collection.Slice[int]{3, 2, 1}, s)

	assert.ErrorIs(t, collection.Swap[int](s, 0, 3), collection.ErrIndexOutOfRange)

	out, err := collection.ToSlice[int](s)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, out)
}
