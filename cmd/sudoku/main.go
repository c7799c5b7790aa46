package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "batch":
		if err := batch(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "stats":
		if err := stats(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("sudoku version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sudoku - constraint-propagation Sudoku solver

Usage:
  sudoku <command> [options]

Commands:
  solve      Solve a single puzzle
  batch      Solve a file of puzzles, one per line
  validate   Check an 81-character grid string
  stats      Show aggregate statistics from a run database
  prove      Generate a zero-knowledge proof for a solved puzzle
  help       Show this help message
  version    Show version information

Puzzles are 81-character strings scanned row-major, '0' for empty cells:

  sudoku solve 530070000600195000098000060800060003400803001700020006060000280000419005000080079

Examples:
  # Solve one puzzle and append the result line to a file
  sudoku solve --output output.txt <puzzle>

  # Solve a file of puzzles with 4 workers, logging each run
  sudoku batch sudokus_start.txt --workers 4 --log-jsonl runs.jsonl

  # Record runs in SQLite and inspect them later
  sudoku solve --db runs.db <puzzle>
  sudoku stats --db runs.db

For command-specific help, run:
  sudoku <command> --help`)
}
