package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/grid"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku validate <puzzle>

Check an 81-character grid string without solving it.

Reports:
  - whether the string parses (length, characters)
  - number of givens and empty cells
  - whether the givens conflict (duplicate digit in a row/column/box)
  - whether the grid is already completely solved
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle string required")
	}

	g, err := grid.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	fmt.Println(g.Format())
	fmt.Println()
	fmt.Printf("Givens: %d  Empty: %d\n", grid.Cells-g.Empties(), g.Empties())
	fmt.Printf("Valid: %v\n", grid.IsValid(g))
	fmt.Printf("Solved: %v\n", grid.IsSolved(g))
	return nil
}
