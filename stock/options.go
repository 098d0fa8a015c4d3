// SPDX-License-Identifier: MIT
// Package: lvcoll/stock
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generate itself never panics; it reports ErrBadSize instead.
//   • Determinism is explicit: WithSeed or WithRand. Without either, a fixed
//     default seed is used so two calls with the same arguments agree.
//   • Options apply in order; later options override earlier ones.

package stock

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Defaults for synthetic series.
const (
	defStartPrice    = 100.0  // initial price S0 (> 0)
	defDailyDrift    = 0.0005 // daily drift μ
	defDailyVol      = 0.02   // daily volatility σ (≥ 0)
	defIntradaySteps = 8      // GBM sub-steps per trading day (≥ 1)
	defSeed          = int64(1)
)

// defStartDate is the first trading day of a generated series.
var defStartDate = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

// genConfig carries every Generate knob. It is passed by value.
type genConfig struct {
	rng       *rand.Rand
	start     float64
	drift     float64
	vol       float64
	steps     int
	startDate time.Time
	names     map[string]string
}

// Option customizes Generate.
type Option func(*genConfig)

// newGenConfig applies opts over the documented defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		start:     defStartPrice,
		drift:     defDailyDrift,
		vol:       defDailyVol,
		steps:     defIntradaySteps,
		startDate: defStartDate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defSeed))
	}

	return cfg
}

// WithSeed draws prices from a fresh generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand draws prices from r, letting several calls share one stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stock: WithRand(nil)")
	}

	return func(c *genConfig) { c.rng = r }
}

// WithStartPrice sets the opening price of every ticker. Panics unless p > 0.
func WithStartPrice(p float64) Option {
	if !(p > 0) || math.IsInf(p, 0) {
		panic(fmt.Sprintf("stock: WithStartPrice(%v): must be finite and > 0", p))
	}

	return func(c *genConfig) { c.start = p }
}

// WithDrift sets the daily drift μ. Panics on NaN or Inf.
func WithDrift(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic(fmt.Sprintf("stock: WithDrift(%v): must be finite", mu))
	}

	return func(c *genConfig) { c.drift = mu }
}

// WithVolatility sets the daily volatility σ. Panics unless σ ≥ 0 and finite.
func WithVolatility(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("stock: WithVolatility(%v): must be finite and >= 0", sigma))
	}

	return func(c *genConfig) { c.vol = sigma }
}

// WithIntradaySteps sets the number of GBM sub-steps per day. Panics unless n ≥ 1.
func WithIntradaySteps(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("stock: WithIntradaySteps(%d): must be >= 1", n))
	}

	return func(c *genConfig) { c.steps = n }
}

// WithStartDate sets the first trading day. Weekend dates roll forward to Monday.
func WithStartDate(d time.Time) Option {
	return func(c *genConfig) { c.startDate = d }
}

// WithNames maps tickers to company names. Tickers without an entry use the
// ticker itself as the name.
func WithNames(names map[string]string) Option {
	return func(c *genConfig) { c.names = names }
}
