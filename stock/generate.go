// SPDX-License-Identifier: MIT
// Package: lvcoll/stock
//
// generate.go - deterministic synthetic price records.
//
// Model (discrete GBM per intraday step, Δt = 1/steps):
//
//	S_{t+1} = S_t · exp((μ − ½σ²)Δt + σ√Δt · Z),  Z ~ N(0,1)
//
// The record price for a day is the close after the last intraday step.
// Days advance over Monday–Friday only.
//
// Output order is day-major: all tickers for day 0, then day 1, … which is how
// a daily feed arrives. Sorting by Date therefore groups a day's records, and
// the merge-by-latest policy of Book leaves the last day in Latest.
//
// Complexity: O(days · len(tickers) · steps) time, O(days · len(tickers)) memory.

package stock

import (
	"fmt"
	"math"
	"time"
)

// Generate returns days trading days of records for every ticker.
// Prices are rounded to cents.
func Generate(tickers []string, days int, opts ...Option) ([]Record, error) {
	if days < 1 {
		return nil, fmt.Errorf("stock: Generate(days=%d): %w", days, ErrBadSize)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("stock: Generate: no tickers: %w", ErrBadSize)
	}
	for _, t := range tickers {
		if t == "" {
			return nil, fmt.Errorf("stock: Generate: %w", ErrEmptyTicker)
		}
	}

	cfg := newGenConfig(opts...)

	// Precompute per-step constants once.
	dt := 1.0 / float64(cfg.steps)
	driftTerm := (cfg.drift - 0.5*cfg.vol*cfg.vol) * dt
	noiseScale := cfg.vol * math.Sqrt(dt)

	prices := make([]float64, len(tickers))
	for i := range prices {
		prices[i] = cfg.start
	}

	out := make([]Record, 0, days*len(tickers))
	date := nextTradingDay(cfg.startDate)
	for d := 0; d < days; d++ {
		for i, ticker := range tickers {
			S := prices[i]
			for s := 0; s < cfg.steps; s++ {
				S *= math.Exp(driftTerm + noiseScale*cfg.rng.NormFloat64())
			}
			prices[i] = S

			out = append(out, Record{
				Ticker: ticker,
				Name:   nameFor(cfg.names, ticker),
				Date:   date,
				Price:  math.Round(S*100) / 100,
			})
		}
		date = nextTradingDay(date.AddDate(0, 0, 1))
	}

	return out, nil
}

// nextTradingDay rolls Saturday and Sunday forward to Monday.
func nextTradingDay(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func nameFor(names map[string]string, ticker string) string {
	if n, ok := names[ticker]; ok && n != "" {
		return n
	}

	return ticker
}
