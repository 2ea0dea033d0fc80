// Package main is the entry point for the plateful CLI.
package main

import (
	"os"

	"github.com/plateful/plateful/cmd/plateful/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
