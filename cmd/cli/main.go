// Package main is the entry point for the renovation-cost CLI.
package main

import (
	"os"

	"renovation-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
