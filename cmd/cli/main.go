// Package main is the entry point for the shadowcost CLI.
package main

import (
	"os"

	"shadowcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
