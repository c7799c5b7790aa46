// Package solver implements the Sudoku constraint-satisfaction engine:
// arc-consistency propagation over the 27 row/column/box units, and
// depth-first search with minimum-remaining-values branching for the cases
// propagation alone cannot finish.
package solver

import "github.com/pflow-xyz/go-sudoku/grid"

// The unit tables are cached here so the hot propagation loops index
// package variables instead of copying arrays out of the grid package.
var (
	unitTable    = grid.Units()
	unitsOfTable [grid.Cells][3]grid.Unit
)

func init() {
	for i := range unitsOfTable {
		unitsOfTable[i] = grid.UnitsOf(i)
	}
}

// State is one solver snapshot: the board plus, for every unresolved cell,
// the candidate digits still consistent with its assigned peers. A cell has
// a domain if and only if it is unresolved; the two are kept in lock-step.
//
// Every field is a value-type array, so a struct copy is a full deep copy.
// Search branches clone the state and never share mutable data.
type State struct {
	Grid       grid.Grid
	domains    [grid.Cells]DigitSet
	unresolved [grid.Cells]bool
	remaining  int

	// stats is shared across clones; it counts work, not CSP state.
	stats *Stats
}

// NewState builds a fresh solver state from an input grid, seeding a full
// domain for every empty cell.
func NewState(g grid.Grid) *State {
	s := &State{Grid: g, stats: &Stats{}}
	for i := 0; i < grid.Cells; i++ {
		if g[i] == grid.Empty {
			s.domains[i] = FullSet
			s.unresolved[i] = true
			s.remaining++
		}
	}
	return s
}

// Clone returns an independent copy of the state. Mutating the clone never
// affects the original.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Domain returns the candidate set for a cell, or the empty set if the cell
// is resolved.
func (s *State) Domain(idx int) DigitSet {
	return s.domains[idx]
}

// Unresolved reports whether the cell still lacks an assignment.
func (s *State) Unresolved(idx int) bool {
	return s.unresolved[idx]
}

// Remaining returns the number of unresolved cells.
func (s *State) Remaining() int {
	return s.remaining
}

// resolve removes a cell from the search frontier and drops its domain.
func (s *State) resolve(idx int) {
	s.domains[idx] = 0
	s.unresolved[idx] = false
	s.remaining--
}

// assign commits digit d to a cell after re-validating it against every
// peer in the cell's three units. If any peer already holds d the cell is
// set to the conflict sentinel instead, marking the branch unsatisfiable;
// no error is raised, the caller detects the conflict on the board.
func (s *State) assign(idx, d int) {
	v := grid.CellState(d)
	for _, u := range unitsOfTable[idx] {
		for _, peer := range u {
			if peer != idx && s.Grid[peer] == v {
				v = grid.Conflict
			}
		}
	}
	s.Grid[idx] = v
	s.resolve(idx)
}
