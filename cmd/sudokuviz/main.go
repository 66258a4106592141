// Package main provides the sudokuviz CLI: it generates Sudoku
// puzzles and animates solving them in the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
