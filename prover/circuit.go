// Package prover builds Groth16 proofs that a complete grid is a valid
// solution to a given puzzle, without revealing the solution. The puzzle
// givens are the public inputs; the solution is the private witness.
package prover

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/pflow-xyz/go-sudoku/grid"
)

// SolutionCircuit asserts that Solution is a fully valid Sudoku grid
// consistent with the public Givens (0 = empty cell).
type SolutionCircuit struct {
	Givens   [grid.Cells]frontend.Variable `gnark:",public"`
	Solution [grid.Cells]frontend.Variable
}

// Define declares the circuit constraints:
//   - every solution cell is a digit 1-9,
//   - every nonzero given matches the solution cell,
//   - within each of the 27 units, all nine cells differ pairwise.
func (c *SolutionCircuit) Define(api frontend.API) error {
	for i := 0; i < grid.Cells; i++ {
		// d in 1..9 <=> d-1 in 0..8
		api.AssertIsLessOrEqual(api.Sub(c.Solution[i], 1), 8)

		// given * (given - solution) == 0: empty givens constrain nothing,
		// nonzero givens must equal the solution cell.
		diff := api.Sub(c.Givens[i], c.Solution[i])
		api.AssertIsEqual(api.Mul(c.Givens[i], diff), 0)
	}

	for _, u := range grid.Units() {
		for a := 0; a < grid.Size; a++ {
			for b := a + 1; b < grid.Size; b++ {
				api.AssertIsDifferent(c.Solution[u[a]], c.Solution[u[b]])
			}
		}
	}
	return nil
}

// NewAssignment builds a witness assignment from a puzzle and its solution.
// The solution must be complete; the puzzle may contain empty cells.
func NewAssignment(puzzle, solution grid.Grid) (*SolutionCircuit, error) {
	if !solution.Complete() {
		return nil, fmt.Errorf("solution grid is incomplete")
	}
	var c SolutionCircuit
	for i := 0; i < grid.Cells; i++ {
		c.Givens[i] = puzzle[i].Digit()
		c.Solution[i] = solution[i].Digit()
	}
	return &c, nil
}

// NewPublicAssignment builds a verification-side assignment carrying only
// the public puzzle givens.
func NewPublicAssignment(puzzle grid.Grid) *SolutionCircuit {
	var c SolutionCircuit
	for i := 0; i < grid.Cells; i++ {
		c.Givens[i] = puzzle[i].Digit()
		c.Solution[i] = 0
	}
	return &c
}
