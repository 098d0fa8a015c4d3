// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcoll/compare"
	"github.com/katalvlaran/lvcoll/stock"
)

const (
	// Wrap is the number of characters help text is wrapped at.
	Wrap int = 50

	envPrefix = "stockbench"
)

// wrapString wraps text at Wrap characters.
func wrapString(text string) string {
	var (
		lines []string
		cur   strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > Wrap {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}

	return strings.Join(lines, "\n")
}

// initConfig loads .env files and makes every flag settable through
// STOCKBENCH_* environment variables.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v.BindPFlags(cmd.Flags())
}

// newLogger builds the process logger and installs it as the zap global.
// Verbose switches to debug level with development output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Development = true
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	return logger, nil
}

// comparatorFor resolves a --by value to a record order.
func comparatorFor(by string, desc bool) (compare.Func[stock.Record], error) {
	var c compare.Func[stock.Record]
	switch by {
	case "natural", "":
		c = stock.Natural
	case "date":
		c = compare.Then(stock.ByDate, stock.ByTicker)
	case "ticker":
		c = compare.Then(stock.ByTicker, stock.ByDate)
	case "price":
		c = stock.ByPrice
	default:
		return nil, fmt.Errorf("invalid sort key %q (natural, date, ticker, price)", by)
	}
	if desc {
		c = compare.Reverse(c)
	}

	return c, nil
}
