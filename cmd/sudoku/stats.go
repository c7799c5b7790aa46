package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/storage"
)

func stats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dbPath := fs.String("db", "runs.db", "SQLite run database")
	limit := fs.Int("limit", 10, "Number of recent runs to list (0 = none)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku stats [options]

Show aggregate statistics and recent runs from a run database created with
'sudoku solve --db' or 'sudoku batch --db'.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*dbPath); err != nil {
		return fmt.Errorf("run database %s: %w", *dbPath, err)
	}

	store, err := storage.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("open run database: %w", err)
	}
	defer store.Close()

	st, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Runs: %d  Solved: %d  Unsolvable: %d\n", st.Runs, st.Solved, st.Unsolvable)
	fmt.Printf("Total guesses: %d  Avg time: %v\n", st.TotalGuesses, st.AvgDuration)

	if *limit > 0 {
		runs, err := store.ListRuns(*limit)
		if err != nil {
			return err
		}
		if len(runs) > 0 {
			fmt.Println()
			fmt.Println("Recent runs:")
			for _, r := range runs {
				fmt.Printf("  %s  %-10s  guesses=%-4d  %v  %s\n",
					r.SolvedAt.Format("2006-01-02 15:04:05"), r.Status, r.Guesses, r.Duration, r.RunID)
			}
		}
	}
	return nil
}
