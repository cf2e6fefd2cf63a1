package maze

import (
	"math/rand"
	"testing"
)

// corridor builds a single-row grid of n floor cells.
func corridor(n int) *Grid {
	g := NewGrid(n, 1)
	for col := 0; col < n; col++ {
		g.SetCell(col, 0, CellFloor)
	}
	return g
}

func TestFarthestFrom_Corridor(t *testing.T) {
	g := corridor(7)
	p, depth := FarthestFrom(g, Point{0, 0})
	if p != (Point{6, 0}) {
		t.Fatalf("expected far end (6,0), got (%d,%d)", p.Col, p.Row)
	}
	if depth != 6 {
		t.Fatalf("expected depth 6, got %d", depth)
	}
}

func TestFarthestFrom_TieBreak(t *testing.T) {
	// A plus shape: four arms at equal depth 1 from the center. The
	// first cell discovered at maximum depth wins, and the visitation
	// order is up, down, left, right.
	g := NewGrid(3, 3)
	g.SetCell(1, 1, CellFloor)
	g.SetCell(1, 0, CellFloor)
	g.SetCell(1, 2, CellFloor)
	g.SetCell(0, 1, CellFloor)
	g.SetCell(2, 1, CellFloor)

	p, depth := FarthestFrom(g, Point{1, 1})
	if depth != 1 {
		t.Fatalf("expected depth 1, got %d", depth)
	}
	if p != (Point{1, 0}) {
		t.Fatalf("expected the up arm (1,0) to win the tie, got (%d,%d)", p.Col, p.Row)
	}
}

func TestFarthestFrom_WallStart(t *testing.T) {
	g := NewGrid(3, 3)
	p, depth := FarthestFrom(g, Point{1, 1})
	if p != (Point{1, 1}) || depth != 0 {
		t.Fatalf("wall start should return itself at depth 0, got (%d,%d) depth %d", p.Col, p.Row, depth)
	}
}

func TestFarthestFrom_IgnoresUnreachable(t *testing.T) {
	// Two corridors separated by a wall column. The far cell must come
	// from the start's component even though the other is longer.
	g := NewGrid(9, 1)
	for _, col := range []int{0, 1, 2} {
		g.SetCell(col, 0, CellFloor)
	}
	for _, col := range []int{4, 5, 6, 7, 8} {
		g.SetCell(col, 0, CellFloor)
	}
	p, depth := FarthestFrom(g, Point{0, 0})
	if p != (Point{2, 0}) || depth != 2 {
		t.Fatalf("expected (2,0) depth 2 within the start component, got (%d,%d) depth %d", p.Col, p.Row, depth)
	}
}

func TestSolve_Corridor(t *testing.T) {
	g := corridor(5)
	path := Solve(g, Point{0, 0}, Point{4, 0})
	if len(path) != 5 {
		t.Fatalf("expected path length 5, got %d", len(path))
	}
	if path[0] != (Point{0, 0}) || path[4] != (Point{4, 0}) {
		t.Fatalf("path endpoints wrong: %v", path)
	}
	for i := 1; i < len(path); i++ {
		dc := path[i].Col - path[i-1].Col
		dr := path[i].Row - path[i-1].Row
		if dc*dc+dr*dr != 1 {
			t.Fatalf("non-adjacent step from %v to %v", path[i-1], path[i])
		}
	}
}

func TestSolve_SameCell(t *testing.T) {
	g := corridor(3)
	path := Solve(g, Point{1, 0}, Point{1, 0})
	if len(path) != 1 || path[0] != (Point{1, 0}) {
		t.Fatalf("expected single-cell path, got %v", path)
	}
}

func TestSolve_Unreachable(t *testing.T) {
	g := NewGrid(5, 1)
	g.SetCell(0, 0, CellFloor)
	g.SetCell(4, 0, CellFloor)
	if path := Solve(g, Point{0, 0}, Point{4, 0}); path != nil {
		t.Fatalf("expected nil path across the wall, got %v", path)
	}
}

func TestSolve_WallEndpoint(t *testing.T) {
	g := corridor(3)
	if path := Solve(g, Point{0, 0}, Point{0, -5}); path != nil {
		t.Fatalf("expected nil path to a wall endpoint, got %v", path)
	}
}

func TestSolve_MatchesFarthestDepth(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, err := Generate(25, 19, rng)
		if err != nil {
			t.Fatal(err)
		}
		start, ok := g.RandomPassable(rng)
		if !ok {
			t.Fatal("expected a floor cell")
		}
		far, depth := FarthestFrom(g, start)
		path := Solve(g, start, far)
		if path == nil {
			t.Fatalf("seed %d: no path from (%d,%d) to (%d,%d)", seed, start.Col, start.Row, far.Col, far.Row)
		}
		if len(path) != depth+1 {
			t.Fatalf("seed %d: shortest path length %d, want depth+1 = %d", seed, len(path), depth+1)
		}
	}
}
