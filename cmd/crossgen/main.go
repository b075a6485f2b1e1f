// Command crossgen encodes crossword layouts as boolean satisfiability
// problems and solves them, alongside format conversion utilities for the
// resulting grids.
package main

import (
	"fmt"
	"os"

	"github.com/cwsat/crossword/cmd/crossgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
