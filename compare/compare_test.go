package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvcoll/compare"
)

type version struct{ major, minor int }

func (v version) Compare(o version) int {
	if c := compare.Natural[int]()(v.major, o.major); c != 0 {
		return c
	}

	return compare.Natural[int]()(v.minor, o.minor)
}

func TestNaturalAndReverse(t *testing.T) {
	c := compare.Natural[int]()
	assert.Negative(t, c(1, 2))
	assert.Zero(t, c(2, 2))
	assert.Positive(t, c(3, 2))

	r := compare.Reverse(c)
	assert.Positive(t, r(1, 2))
	assert.Zero(t, r(2, 2))
}

func TestMethod(t *testing.T) {
	c := compare.Method[version]()
	assert.Negative(t, c(version{1, 2}, version{1, 3}))
	assert.Positive(t, c(version{2, 0}, version{1, 9}))
	assert.Zero(t, c(version{1, 1}, version{1, 1}))
}

func TestThen(t *testing.T) {
	type pair struct {
		a string
		b int
	}
	byA := func(x, y pair) int { return compare.Natural[string]()(x.a, y.a) }
	byB := func(x, y pair) int { return compare.Natural[int]()(x.b, y.b) }
	c := compare.Then[pair](byA, byB)

	assert.Negative(t, c(pair{"a", 9}, pair{"b", 0}))
	assert.Negative(t, c(pair{"a", 1}, pair{"a", 2}), "tie on a broken by b")
	assert.Zero(t, c(pair{"a", 1}, pair{"a", 1}))
}

func TestEqualBy(t *testing.T) {
	eq := compare.EqualBy(compare.Method[version]())
	assert.True(t, eq(version{1, 0}, version{1, 0}))
	assert.False(t, eq(version{1, 0}, version{1, 1}))
	assert.True(t, compare.Equal(3, 3))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, compare.Sign(-42))
	assert.Equal(t, 0, compare.Sign(0))
	assert.Equal(t, 1, compare.Sign(7))
}

func TestHashers_Deterministic(t *testing.T) {
	// xxhash64 of the empty string is a published constant.
	assert.Equal(t, uint64(0xef46db3751d8e999), compare.StringHasher(""))
	assert.Equal(t, compare.StringHasher("AAPL"), compare.StringHasher("AAPL"))
	assert.NotEqual(t, compare.StringHasher("AAPL"), compare.StringHasher("MSFT"))

	hs := compare.Default[string]()
	assert.Equal(t, compare.StringHasher("AAPL"), hs("AAPL"), "string keys use xxhash")

	hi := compare.Default[int]()
	assert.Equal(t, hi(12345), hi(12345), "stable for the hasher's lifetime")

	type key struct {
		s string
		n int
	}
	hk := compare.Default[key]()
	assert.Equal(t, hk(key{"a", 1}), hk(key{"a", 1}))
}
