// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcoll/search"
	"github.com/katalvlaran/lvcoll/sorting"
	"github.com/katalvlaran/lvcoll/stock"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic stock document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tickers := a.v.GetStringSlice("tickers")
			days := a.v.GetInt("days")
			price := a.v.GetFloat64("start-price")
			vol := a.v.GetFloat64("volatility")
			if !(price > 0) || math.IsInf(price, 0) {
				return fmt.Errorf("start-price must be finite and > 0, got %v", price)
			}
			if !(vol >= 0) || math.IsInf(vol, 0) {
				return fmt.Errorf("volatility must be finite and >= 0, got %v", vol)
			}

			start := time.Now()
			records, err := stock.Generate(tickers, days,
				stock.WithSeed(a.v.GetInt64("seed")),
				stock.WithStartPrice(price),
				stock.WithVolatility(vol),
			)
			if err != nil {
				return err
			}
			a.log.Infow("generated records", "records", len(records), "elapsed", time.Since(start))

			path := a.v.GetString("file")
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := stock.Write(f, records); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), path)

			return nil
		},
	}

	cmd.Flags().StringSlice("tickers", []string{"AAPL", "MSFT", "NVDA", "AMZN", "GOOG"}, wrapString("tickers to generate"))
	cmd.Flags().Int("days", 250, wrapString("number of trading days per ticker"))
	cmd.Flags().Int64("seed", 1, wrapString("random seed; equal seeds give equal documents"))
	cmd.Flags().Float64("start-price", 100, wrapString("opening price of every ticker"))
	cmd.Flags().Float64("volatility", 0.02, wrapString("daily volatility of the price walk"))

	return cmd
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the document and print the latest record per ticker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d records, %d tickers\n", book.Len(), book.Latest.Len())
			for _, t := range book.Tickers() {
				r, err := book.LatestFor(t)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, r)
			}

			return nil
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Quicksort the records and print the first of them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := comparatorFor(a.v.GetString("by"), a.v.GetBool("desc"))
			if err != nil {
				return err
			}
			book, err := a.loadBook()
			if err != nil {
				return err
			}

			start := time.Now()
			if err := book.Sort(c); err != nil {
				return err
			}
			a.log.Infow("sorted records", "by", a.v.GetString("by"), "records", book.Len(), "elapsed", time.Since(start))
			if ok, err := sorting.IsSorted[stock.Record](book.Array, c); err != nil || !ok {
				return fmt.Errorf("records not sorted after quicksort (err: %v)", err)
			}

			out := cmd.OutOrStdout()
			limit := min(a.v.GetInt("limit"), book.Len())
			for i := 0; i < limit; i++ {
				r, err := book.Array.Get(i)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, r)
			}

			return nil
		},
	}

	cmd.Flags().String("by", "natural", wrapString("sort key: natural, date, ticker or price"))
	cmd.Flags().Bool("desc", false, wrapString("sort in descending order"))
	cmd.Flags().Int("limit", 10, wrapString("number of records to print"))

	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [ticker]",
		Short: "Find every record of a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticker := args[0]
			book, err := a.loadBook()
			if err != nil {
				return err
			}

			start := time.Now()
			first, err := search.Linear[stock.Record](book.Array, stock.Record{Ticker: ticker}, stock.ByTicker)
			if err != nil {
				return err
			}
			a.log.Infow("linear search over array", "ticker", ticker, "index", first, "elapsed", time.Since(start))

			start = time.Now()
			matches, err := book.ByTicker(ticker)
			if err != nil {
				return fmt.Errorf("ticker %s: %w", ticker, err)
			}
			a.log.Infow("linear search over list", "ticker", ticker, "matches", len(matches), "elapsed", time.Since(start))

			start = time.Now()
			latest, err := book.LatestFor(ticker)
			if err != nil {
				return err
			}
			a.log.Infow("hash map lookup", "ticker", ticker, "elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d records, first at index %d\n", ticker, len(matches), first)
			fmt.Fprintf(out, "latest: %s\n", latest)

			return nil
		},
	}
}

func (a *app) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range [from] [to]",
		Short: "Print the records dated within [from, to], or on from alone",
		Long: `Dates use the YYYY-MM-DD layout. With one date, prints the records of
that day; with two, every record in the inclusive range.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(time.DateOnly, args[0])
			if err != nil {
				return fmt.Errorf("from must be YYYY-MM-DD: %w", err)
			}
			to := from
			if len(args) == 2 {
				if to, err = time.Parse(time.DateOnly, args[1]); err != nil {
					return fmt.Errorf("to must be YYYY-MM-DD: %w", err)
				}
			}

			book, err := a.loadBook()
			if err != nil {
				return err
			}

			start := time.Now()
			var found []stock.Record
			if len(args) == 1 {
				found, err = book.OnDate(from)
			} else {
				found, err = book.Between(from, to)
			}
			if err != nil {
				return err
			}
			a.log.Infow("jump search by date", "matches", len(found), "elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			for _, r := range found {
				fmt.Fprintln(out, r)
			}
			fmt.Fprintf(out, "%d records\n", len(found))

			return nil
		},
	}
}
