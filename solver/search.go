package solver

import (
	"time"

	"github.com/pflow-xyz/go-sudoku/grid"
)

// Status is the terminal outcome of a solve.
type Status int

const (
	// StatusSolved means a complete valid assignment was found.
	StatusSolved Status = iota
	// StatusUnsolvable means every branch was exhausted without a solution.
	StatusUnsolvable
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	default:
		return "?"
	}
}

// Stats counts the work done during one solve.
type Stats struct {
	Passes       int           // propagation sweeps, across all branches
	Eliminations int           // candidate digits removed
	Guesses      int           // branch points expanded
	MaxDepth     int           // deepest recursion reached
	Duration     time.Duration // wall time for the whole solve
}

// Result is the outcome of one solve call. On failure Solution equals
// Input, so callers never see a partial or corrupted board.
type Result struct {
	Status   Status
	Input    grid.Grid
	Solution grid.Grid
	Stats    Stats
}

// Solve runs the full engine on a puzzle: propagation to fixpoint, then
// guided backtracking if cells remain. The solver is stateless between
// calls; concurrent calls on different puzzles are safe.
func Solve(g grid.Grid) Result {
	start := time.Now()
	res := Result{Input: g, Solution: g}

	// A puzzle whose givens already clash can never be completed; skip the
	// search and fall back to the input immediately.
	if !grid.IsValid(g) {
		res.Status = StatusUnsolvable
		res.Stats.Duration = time.Since(start)
		return res
	}

	s := NewState(g)
	if final, ok := search(s, 0); ok {
		res.Status = StatusSolved
		res.Solution = final.Grid
	} else {
		res.Status = StatusUnsolvable
	}
	res.Stats = *s.stats
	res.Stats.Duration = time.Since(start)
	return res
}

// SolvePuzzle is the board entry point: the solved grid on success, the
// original input grid unchanged on failure.
func SolvePuzzle(g grid.Grid) grid.Grid {
	return Solve(g).Solution
}

// search recursively explores one branch: propagate, classify, and if the
// state is still incomplete, branch on the most constrained cell. The first
// solved descendant wins; discarding a clone is its own rollback.
func search(s *State, depth int) (*State, bool) {
	if s.stats != nil && depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	Propagate(s)

	if grid.IsSolved(s.Grid) {
		return s, true
	}
	if s.Grid.HasConflict() || s.remaining == 0 {
		return nil, false
	}

	idx := s.pickCell()
	candidates := s.domains[idx]
	if candidates == 0 {
		// Unresolved cell with no legal digit left: dead branch.
		return nil, false
	}

	for _, d := range candidates.Digits() {
		if s.stats != nil {
			s.stats.Guesses++
		}
		child := s.Clone()
		child.assign(idx, d)
		if final, ok := search(child, depth+1); ok {
			return final, true
		}
	}
	return nil, false
}

// pickCell selects the unresolved cell with the fewest remaining candidates
// (minimum remaining values). Ties break on the lowest row-major index so
// results are reproducible.
func (s *State) pickCell() int {
	best := -1
	for i := 0; i < grid.Cells; i++ {
		if !s.unresolved[i] {
			continue
		}
		if best < 0 || s.domains[i].Len() < s.domains[best].Len() {
			best = i
		}
	}
	return best
}
