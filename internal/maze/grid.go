package maze

import "math/rand"

// CellType identifies the contents of one grid cell.
type CellType uint8

const (
	CellWall  CellType = iota // solid, blocks movement
	CellFloor                 // carved corridor, walkable
)

// Point is a grid coordinate. Col runs left to right, Row top to bottom.
type Point struct {
	Col int
	Row int
}

// cardinals lists the 4-adjacent neighbor offsets in BFS visitation
// order: up, down, left, right. Tie-breaking in FarthestFrom depends on
// this order staying fixed.
var cardinals = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is the authoritative per-cell maze representation.
type Grid struct {
	Cols  int
	Rows  int
	Cells []CellType // row-major: index = row*Cols + col
}

// NewGrid creates a grid with every cell solid wall.
func NewGrid(cols, rows int) *Grid {
	return &Grid{Cols: cols, Rows: rows, Cells: make([]CellType, cols*rows)}
}

// InBounds returns true if (col, row) is within the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// At returns the cell type at (col, row). Out of bounds reads as wall.
func (g *Grid) At(col, row int) CellType {
	if !g.InBounds(col, row) {
		return CellWall
	}
	return g.Cells[row*g.Cols+col]
}

// IsPassable returns true if (col, row) is a floor cell a player can occupy.
func (g *Grid) IsPassable(col, row int) bool {
	return g.InBounds(col, row) && g.Cells[row*g.Cols+col] == CellFloor
}

// SetCell writes the cell type at (col, row). Out-of-bounds writes are dropped.
func (g *Grid) SetCell(col, row int, t CellType) {
	if !g.InBounds(col, row) {
		return
	}
	g.Cells[row*g.Cols+col] = t
}

// CountPassable returns the number of floor cells.
func (g *Grid) CountPassable() int {
	n := 0
	for _, c := range g.Cells {
		if c == CellFloor {
			n++
		}
	}
	return n
}

// RandomPassable picks a uniformly random floor cell by rejection
// sampling. The second return is false when the grid has no floor at all.
func (g *Grid) RandomPassable(rng *rand.Rand) (Point, bool) {
	if g.CountPassable() == 0 {
		return Point{}, false
	}
	for {
		col := rng.Intn(g.Cols)
		row := rng.Intn(g.Rows)
		if g.IsPassable(col, row) {
			return Point{Col: col, Row: row}, true
		}
	}
}
