// Package main provides the odilint CLI entry point.
package main

import (
	"os"

	"github.com/odilint/odilint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
