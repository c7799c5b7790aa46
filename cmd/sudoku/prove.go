package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/prover"
	"github.com/pflow-xyz/go-sudoku/solver"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	solution := fs.String("solution", "", "81-character solution (solved internally when omitted)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku prove [options] <puzzle>

Generate and verify a Groth16 proof that the puzzle has a valid solution,
without revealing the solution. The puzzle givens are the public inputs.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sudoku prove <puzzle>
  sudoku prove --solution <solved-grid> <puzzle>
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle string required")
	}

	puzzle, err := grid.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("parse puzzle: %w", err)
	}

	var solved grid.Grid
	if *solution != "" {
		solved, err = grid.Parse(*solution)
		if err != nil {
			return fmt.Errorf("parse solution: %w", err)
		}
	} else {
		res := solver.Solve(puzzle)
		if res.Status != solver.StatusSolved {
			return fmt.Errorf("puzzle is unsolvable, nothing to prove")
		}
		solved = res.Solution
	}

	fmt.Println("Compiling circuit and running setup...")
	start := time.Now()
	p, err := prover.New()
	if err != nil {
		return err
	}
	fmt.Printf("Circuit ready: %d constraints (%v)\n", p.Constraints(), time.Since(start))

	assignment, err := prover.NewAssignment(puzzle, solved)
	if err != nil {
		return err
	}

	start = time.Now()
	proof, err := p.Prove(assignment)
	if err != nil {
		return err
	}
	fmt.Printf("Proof generated (%v)\n", time.Since(start))

	start = time.Now()
	if err := p.Verify(proof, prover.NewPublicAssignment(puzzle)); err != nil {
		return err
	}
	fmt.Printf("Proof verified (%v)\n", time.Since(start))
	return nil
}
