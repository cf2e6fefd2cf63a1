package maze

import "github.com/zyedidia/generic/mapset"

// bfsItem is a dequeued cell with its distance from the search origin.
type bfsItem struct {
	p Point
	d int
}

// FarthestFrom breadth-first searches the floor cells 4-adjacent to
// start and returns the first cell discovered at the maximum depth,
// plus that depth. Cells unreachable from start are never visited and
// can never be returned. A wall start searches nothing and comes back
// as itself at depth 0.
func FarthestFrom(g *Grid, start Point) (Point, int) {
	seen := mapset.New[Point]()
	seen.Put(start)
	queue := []bfsItem{{p: start}}
	far := bfsItem{p: start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.d > far.d {
			far = cur
		}
		for _, d := range cardinals {
			n := Point{Col: cur.p.Col + d.Col, Row: cur.p.Row + d.Row}
			if g.IsPassable(n.Col, n.Row) && !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, bfsItem{p: n, d: cur.d + 1})
			}
		}
	}
	return far.p, far.d
}

// Solve returns the shortest 4-adjacent path from one floor cell to
// another, inclusive of both endpoints. It returns nil when either
// endpoint is a wall or no path exists.
func Solve(g *Grid, from, to Point) []Point {
	if !g.IsPassable(from.Col, from.Row) || !g.IsPassable(to.Col, to.Row) {
		return nil
	}
	if from == to {
		return []Point{from}
	}
	seen := mapset.New[Point]()
	seen.Put(from)
	cameFrom := make(map[Point]Point)
	queue := []Point{from}
	found := false
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range cardinals {
			n := Point{Col: cur.Col + d.Col, Row: cur.Row + d.Row}
			if !g.IsPassable(n.Col, n.Row) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			cameFrom[n] = cur
			if n == to {
				found = true
				break
			}
			queue = append(queue, n)
		}
	}
	if !found {
		return nil
	}

	path := []Point{to}
	for p := cameFrom[to]; ; p = cameFrom[p] {
		path = append(path, p)
		if p == from {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
