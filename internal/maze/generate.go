package maze

import (
	"fmt"
	"math/rand"
)

// lattice lists the two-step neighbor offsets scanned during carving,
// in the same up/down/left/right order as cardinals.
var lattice = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// Generate carves a maze into a cols x rows grid with an iterative
// randomized backtracker. Cells at even (col, row) pairs form the
// corridor lattice; the wall cell between a lattice cell and its chosen
// two-step neighbor is knocked through, so the floor cells form a
// spanning tree: fully connected, acyclic, a unique simple path between
// any two of them.
//
// Even dimensions leave the trailing row or column solid, which is
// acceptable; dimensions below 1 cannot hold a corridor at all and
// return an error before any game state is built.
func Generate(cols, rows int, rng *rand.Rand) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("maze: invalid dimensions %dx%d", cols, rows)
	}
	g := NewGrid(cols, rows)

	start := Point{
		Col: rng.Intn((cols+1)/2) * 2,
		Row: rng.Intn((rows+1)/2) * 2,
	}
	g.SetCell(start.Col, start.Row, CellFloor)

	stack := []Point{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var next []Point
		for _, d := range lattice {
			n := Point{Col: cur.Col + d.Col, Row: cur.Row + d.Row}
			if g.InBounds(n.Col, n.Row) && g.At(n.Col, n.Row) == CellWall {
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		n := next[rng.Intn(len(next))]
		g.SetCell((cur.Col+n.Col)/2, (cur.Row+n.Row)/2, CellFloor)
		g.SetCell(n.Col, n.Row, CellFloor)
		stack = append(stack, n)
	}
	return g, nil
}
