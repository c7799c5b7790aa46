package grid

// Unit is one row, column, or 3x3 box: nine cell indexes that must jointly
// contain each digit exactly once.
type Unit [Size]int

// NumUnits is the number of constraint units: 9 rows + 9 columns + 9 boxes.
const NumUnits = 3 * Size

// The topology is fixed, so the unit tables are computed once at package
// init and shared read-only by every solve.
var (
	units   [NumUnits]Unit
	unitsOf [Cells][3]int // indexes into units: row, column, box
)

func init() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			units[row][col] = Index(row, col)
		}
	}
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			units[Size+col][row] = Index(row, col)
		}
	}
	for boxRow := 0; boxRow < BoxSize; boxRow++ {
		for boxCol := 0; boxCol < BoxSize; boxCol++ {
			box := 2*Size + boxRow*BoxSize + boxCol
			n := 0
			for r := 0; r < BoxSize; r++ {
				for c := 0; c < BoxSize; c++ {
					units[box][n] = Index(boxRow*BoxSize+r, boxCol*BoxSize+c)
					n++
				}
			}
		}
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			idx := Index(row, col)
			box := 2*Size + (row/BoxSize)*BoxSize + col/BoxSize
			unitsOf[idx] = [3]int{row, Size + col, box}
		}
	}
}

// Units returns all 27 constraint units.
func Units() [NumUnits]Unit {
	return units
}

// UnitsOf returns the three units containing the given cell index: its row,
// its column, and its box.
func UnitsOf(idx int) [3]Unit {
	return [3]Unit{units[unitsOf[idx][0]], units[unitsOf[idx][1]], units[unitsOf[idx][2]]}
}

// IsValid reports whether no unit contains a duplicate assigned digit.
// Empty and conflict cells are ignored, so a partially filled grid can be
// valid.
func IsValid(g Grid) bool {
	for _, u := range units {
		var seen [Size + 1]bool
		for _, idx := range u {
			d := g[idx].Digit()
			if d == 0 {
				continue
			}
			if seen[d] {
				return false
			}
			seen[d] = true
		}
	}
	return true
}

// IsSolved reports whether the grid is completely and correctly solved:
// every cell assigned and every unit a permutation of 1-9. The check is
// exhaustive over all 27 units.
func IsSolved(g Grid) bool {
	if !g.Complete() {
		return false
	}
	for _, u := range units {
		var seen [Size + 1]bool
		for _, idx := range u {
			d := g[idx].Digit()
			if seen[d] {
				return false
			}
			seen[d] = true
		}
	}
	return true
}
