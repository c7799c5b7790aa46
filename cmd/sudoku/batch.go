package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pflow-xyz/go-sudoku/cache"
	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solvelog"
	"github.com/pflow-xyz/go-sudoku/solver"
)

func batch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	output := fs.String("output", "output.txt", "Output file for result lines")
	workers := fs.Int("workers", 1, "Number of concurrent solver workers")
	useCache := fs.Bool("cache", false, "Memoize results for repeated puzzles")
	logCSV := fs.String("log-csv", "", "Write per-run records to a CSV file")
	logJSONL := fs.String("log-jsonl", "", "Write per-run records to a JSONL file")
	dbPath := fs.String("db", "", "Record runs in a SQLite database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku batch <puzzles-file> [options]

Solve every puzzle in a file, one 81-character line per puzzle, and write
the result lines to the output file in input order. Unsolvable puzzles are
echoed back unchanged. Blank lines are skipped; malformed lines are errors.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sudoku batch sudokus_start.txt
  sudoku batch sudokus_start.txt --workers 8 --output solved.txt
  sudoku batch sudokus_start.txt --cache --log-csv runs.csv --db runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzles file required")
	}

	puzzles, err := readPuzzles(fs.Arg(0))
	if err != nil {
		return err
	}
	if len(puzzles) == 0 {
		return fmt.Errorf("no puzzles in %s", fs.Arg(0))
	}

	results := solveAll(puzzles, *workers, *useCache)

	// Result lines in input order, solved or echoed back.
	out, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, res := range results {
		fmt.Fprintln(w, res.Solution.String())
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	log := solvelog.NewLog()
	for _, res := range results {
		log.Add(solvelog.NewRecord(res))
	}

	if *logCSV != "" {
		if err := solvelog.WriteCSVFile(*logCSV, log.Records); err != nil {
			return fmt.Errorf("write CSV log: %w", err)
		}
	}
	if *logJSONL != "" {
		if err := solvelog.WriteJSONLFile(*logJSONL, log.Records); err != nil {
			return fmt.Errorf("write JSONL log: %w", err)
		}
	}
	if *dbPath != "" {
		if err := recordRuns(*dbPath, log.Records...); err != nil {
			return err
		}
	}

	sum := log.Summary()
	fmt.Printf("Puzzles: %d  Solved: %d  Unsolvable: %d\n", sum.Runs, sum.Solved, sum.Unsolvable)
	fmt.Printf("Total guesses: %d  Avg time: %v\n", sum.TotalGuesses, sum.AvgDuration)
	fmt.Printf("Results written to %s\n", *output)
	return nil
}

// readPuzzles parses every non-blank line of the file as a grid.
func readPuzzles(filename string) ([]grid.Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open puzzles file: %w", err)
	}
	defer f.Close()

	var puzzles []grid.Grid
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := grid.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		puzzles = append(puzzles, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read puzzles file: %w", err)
	}
	return puzzles, nil
}

// solveAll solves the puzzles with the requested number of workers. Every
// solve owns independent state, so workers need no synchronization beyond
// the work queue; results land at their input index.
func solveAll(puzzles []grid.Grid, workers int, useCache bool) []solver.Result {
	solveOne := solver.Solve
	if useCache {
		cs := cache.NewCachedSolver(0)
		solveOne = cs.Solve
	}

	results := make([]solver.Result, len(puzzles))
	if workers <= 1 {
		for i, g := range puzzles {
			results[i] = solveOne(g)
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = solveOne(puzzles[i])
			}
		}()
	}
	for i := range puzzles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
