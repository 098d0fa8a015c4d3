// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcoll/stock"
)

// Version of stockbench.
const Version = "0.3.0"

// app carries the state shared by every command of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop().Sugar()}

	root := &cobra.Command{
		Use:   "stockbench",
		Short: "time collection routines over stock price records",
		Long: fmt.Sprintf(`stockbench (v%s)

Loads a {"Stocks":[...]} document, or generates one, and runs the
dynamic array, linked list, hash map, quicksort and search routines
over it, reporting how long each step took.`, Version),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(a.v, cmd); err != nil {
				return err
			}
			logger, err := newLogger(a.v.GetBool("verbose"))
			if err != nil {
				return err
			}
			a.log = logger.Sugar()

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringP("file", "f", "stocks.json", wrapString("path of the stock document to read or write"))
	root.PersistentFlags().BoolP("verbose", "v", false, wrapString("enable debug logging"))

	root.AddCommand(
		a.generateCmd(),
		a.loadCmd(),
		a.sortCmd(),
		a.searchCmd(),
		a.rangeCmd(),
		versionCmd(),
	)

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of stockbench",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stockbench v%s\n", Version)
		},
	}
}

// loadBook reads the configured file and fills every container, logging the
// time spent in each phase.
func (a *app) loadBook() (*stock.Book, error) {
	path := a.v.GetString("file")

	start := time.Now()
	records, err := stock.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Infow("decoded records", "file", path, "records", len(records), "elapsed", time.Since(start))

	start = time.Now()
	book, err := stock.BuildBook(records)
	if err != nil {
		return nil, err
	}
	a.log.Infow("built book",
		"records", book.Len(),
		"tickers", book.Latest.Len(),
		"elapsed", time.Since(start))
	a.log.Debugw("hash map occupancy", "stats", book.Latest.Stats())

	return book, nil
}
