package stock_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcoll/stock"
)

func TestGenerate_ShapeAndOrder(t *testing.T) {
	tickers := []string{"AAPL", "MSFT", "NVDA"}
	recs, err := stock.Generate(tickers, 10, stock.WithSeed(42),
		stock.WithNames(map[string]string{"AAPL": "Apple"}))
	require.NoError(t, err)
	require.Len(t, recs, 30)

	for i, r := range recs {
		assert.Equal(t, tickers[i%3], r.Ticker, "day-major order")
		assert.Positive(t, r.Price)
		wd := r.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
	assert.Equal(t, "Apple", recs[0].Name)
	assert.Equal(t, "MSFT", recs[1].Name, "ticker is the default name")

	// Dates strictly increase day over day.
	for d := 1; d < 10; d++ {
		assert.True(t, recs[d*3].Date.After(recs[(d-1)*3].Date))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := stock.Generate([]string{"X"}, 20, stock.WithSeed(7))
	require.NoError(t, err)
	b, err := stock.Generate([]string{"X"}, 20, stock.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := stock.Generate([]string{"X"}, 20, stock.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_ZeroVolatilityIsPureDrift(t *testing.T) {
	recs, err := stock.Generate([]string{"X"}, 3,
		stock.WithVolatility(0), stock.WithDrift(0), stock.WithStartPrice(50),
		stock.WithStartDate(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))) // Saturday
	require.NoError(t, err)

	for _, r := range recs {
		assert.Equal(t, 50.0, r.Price)
	}
	assert.Equal(t, time.Monday, recs[0].Date.Weekday(), "weekend start rolls to Monday")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := stock.Generate([]string{"X"}, 0)
	assert.ErrorIs(t, err, stock.ErrBadSize)
	_, err = stock.Generate(nil, 5)
	assert.ErrorIs(t, err, stock.ErrBadSize)
	_, err = stock.Generate([]string{"X", ""}, 5)
	assert.ErrorIs(t, err, stock.ErrEmptyTicker)

	assert.Panics(t, func() { stock.WithStartPrice(0) })
	assert.Panics(t, func() { stock.WithVolatility(-1) })
	assert.Panics(t, func() { stock.WithIntradaySteps(0) })
	assert.Panics(t, func() { stock.WithRand(nil) })
}
