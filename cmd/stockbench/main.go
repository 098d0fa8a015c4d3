// SPDX-License-Identifier: MIT

// Command stockbench loads or generates stock price records and times the
// collection routines over them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
