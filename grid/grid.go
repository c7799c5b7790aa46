// Package grid models the 9x9 Sudoku board: tagged cell states, the fixed
// row/column/box constraint topology, and the 81-character wire format used
// to pass puzzles in and out.
package grid

import (
	"fmt"
	"strings"
)

// Size is the side length of the grid.
const Size = 9

// BoxSize is the side length of each 3x3 box.
const BoxSize = 3

// Cells is the total number of cells.
const Cells = Size * Size

// CellState is the tagged value held by one cell: Empty, Conflict, or an
// assigned digit 1-9. Conflict is produced only by a failed assignment
// during solving; it never appears in a parsed grid.
type CellState int8

const (
	// Empty marks a cell with no assignment yet.
	Empty CellState = 0
	// Conflict marks a cell whose forced assignment clashed with a peer.
	Conflict CellState = -1
)

// Assigned reports whether the cell holds a digit 1-9.
func (c CellState) Assigned() bool {
	return c >= 1 && c <= Size
}

// Digit returns the assigned digit, or 0 if the cell is empty or in conflict.
func (c CellState) Digit() int {
	if c.Assigned() {
		return int(c)
	}
	return 0
}

// String renders the cell for display: "." for empty, "!" for conflict.
func (c CellState) String() string {
	switch {
	case c == Empty:
		return "."
	case c == Conflict:
		return "!"
	default:
		return fmt.Sprintf("%d", int(c))
	}
}

// Index returns the row-major cell index for (row, col).
func Index(row, col int) int {
	return row*Size + col
}

// Grid is a full board: 81 cells in row-major order. It is a value type;
// assigning a Grid copies the whole board.
type Grid [Cells]CellState

// At returns the cell state at (row, col).
func (g Grid) At(row, col int) CellState {
	return g[Index(row, col)]
}

// Set writes the cell state at (row, col).
func (g *Grid) Set(row, col int, v CellState) {
	g[Index(row, col)] = v
}

// Parse reads an 81-character puzzle string scanned row-major, where '0'
// denotes an empty cell and '1'-'9' denote givens. Any other input is
// rejected; validation happens here so the solver can assume a well-formed
// board.
func Parse(s string) (Grid, error) {
	var g Grid
	if len(s) != Cells {
		return g, fmt.Errorf("puzzle must be %d characters, got %d", Cells, len(s))
	}
	for i := 0; i < Cells; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return g, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
		g[i] = CellState(ch - '0')
	}
	return g, nil
}

// String returns the 81-character row-major form of the grid. Empty and
// conflict cells both render as '0', matching the input encoding.
func (g Grid) String() string {
	buf := make([]byte, Cells)
	for i, c := range g {
		if c.Assigned() {
			buf[i] = byte('0' + c)
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Format renders the grid as a bordered 9x9 square for terminal display.
func (g Grid) Format() string {
	var b strings.Builder
	b.WriteString("┌───────┬───────┬───────┐\n")
	for row := 0; row < Size; row++ {
		if row > 0 && row%BoxSize == 0 {
			b.WriteString("├───────┼───────┼───────┤\n")
		}
		b.WriteString("│")
		for col := 0; col < Size; col++ {
			if col > 0 && col%BoxSize == 0 {
				b.WriteString(" │")
			}
			b.WriteString(" ")
			b.WriteString(g.At(row, col).String())
		}
		b.WriteString(" │\n")
	}
	b.WriteString("└───────┴───────┴───────┘")
	return b.String()
}

// Empties returns the number of empty cells.
func (g Grid) Empties() int {
	count := 0
	for _, c := range g {
		if c == Empty {
			count++
		}
	}
	return count
}

// HasConflict reports whether any cell holds the conflict sentinel.
func (g Grid) HasConflict() bool {
	for _, c := range g {
		if c == Conflict {
			return true
		}
	}
	return false
}

// Complete reports whether every cell holds an assigned digit.
func (g Grid) Complete() bool {
	for _, c := range g {
		if !c.Assigned() {
			return false
		}
	}
	return true
}
