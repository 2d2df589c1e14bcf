// Package main is the entrypoint for the oceanpulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/oceanpulse/oceanpulse/cmd"
	"github.com/oceanpulse/oceanpulse/internal/iocache"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer iocache.CloseCaching()

	// Commands resolve their stores through the global manager once the
	// shared setup has initialized it.
	cmd.SetCacheManager(iocache.Manager)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
