// Package main is the entry point for the unihan CLI.
package main

import (
	"os"

	"github.com/f3rmion/unihan/cmd/unihan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
