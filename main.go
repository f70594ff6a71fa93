// Package main provides the entry point for the domino-detect command.
package main

import (
	"os"

	"domino-detect/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
