package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spakin/disjoint"

	"github.com/cefeida/echo-arcade/internal/echo"
	"github.com/cefeida/echo-arcade/internal/maze"
)

type runStats struct {
	runIndex int
	seed     int64

	cols   int
	rows   int
	floors int

	depth   int // farthest reachable corridor depth from the spawn
	pathLen int // cells on the spawn-to-exit solution, spawn included

	wonFrame int
	pings    int
	blocked  int

	verified  bool
	verifyErr string
}

func main() {
	var runs int
	var cols int
	var rows int
	var seedBase int64
	var ascii bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless maze runs")
	flag.IntVar(&cols, "cols", echo.MazeCols, "maze width in cells")
	flag.IntVar(&rows, "rows", echo.MazeRows, "maze height in cells")
	flag.Int64Var(&seedBase, "seed", 42, "RNG seed for run 1; run i uses seed+i-1")
	flag.BoolVar(&ascii, "ascii", false, "render the first maze as text")
	flag.BoolVar(&verbose, "verbose", false, "log per-frame solver positions")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if cols < 3 || rows < 3 {
		fmt.Println("error: -cols and -rows must be >= 3")
		return
	}

	fmt.Printf("=== Maze Solver Report ===\n")
	fmt.Printf("runs=%d cols=%d rows=%d seed=%d\n\n", runs, cols, rows, seedBase)

	all := make([]runStats, 0, runs)
	failed := 0
	for i := 0; i < runs; i++ {
		stats := runOne(i+1, seedBase+int64(i), cols, rows, ascii && i == 0, verbose)
		all = append(all, stats)
		printRun(stats)
		if !stats.verified || stats.wonFrame < 0 {
			failed++
		}
	}

	printAggregate(all)
	if failed > 0 {
		fmt.Printf("\nFAILED: %d of %d runs did not verify or solve\n", failed, runs)
		os.Exit(1)
	}
}

func runOne(runIndex int, seed int64, cols, rows int, ascii, verbose bool) runStats {
	rs := runStats{runIndex: runIndex, seed: seed, wonFrame: -1}

	probe, err := echo.NewSim(
		echo.WithDims(cols, rows),
		echo.WithSeed(seed),
	)
	if err != nil {
		rs.verifyErr = err.Error()
		return rs
	}

	g := probe.Session.Grid
	rs.cols, rs.rows = g.Cols, g.Rows
	rs.floors = g.CountPassable()
	if err := verifyPerfect(g); err != nil {
		rs.verifyErr = err.Error()
	} else {
		rs.verified = true
	}
	_, rs.depth = maze.FarthestFrom(g, probe.Session.Player)

	path := maze.Solve(g, probe.Session.Player, probe.Session.Exit)
	if path == nil {
		rs.verified = false
		rs.verifyErr = "exit unreachable from spawn"
		return rs
	}
	rs.pathLen = len(path)

	if ascii {
		fmt.Print(renderASCII(g, probe.Session.Player, probe.Session.Exit))
		fmt.Println()
	}

	// A second sim from the same seed rebuilds the identical maze; the
	// scripted solver walks the solution and pings whenever the
	// cooldown allows.
	solver, err := echo.NewSim(
		echo.WithDims(cols, rows),
		echo.WithSeed(seed),
		echo.WithVerbose(verbose),
		echo.WithScript(echo.ScriptPath(path, true)),
	)
	if err != nil {
		rs.verifyErr = err.Error()
		return rs
	}
	rs.wonFrame = solver.RunUntil(func(sim *echo.Sim) bool {
		return sim.Session.State() == echo.Won
	}, len(path)+240)
	rs.pings = solver.Log.Count("ping", "emit")
	rs.blocked = solver.Log.Count("move", "blocked")
	if verbose {
		fmt.Print(solver.Log.Format())
	}
	return rs
}

// verifyPerfect checks the generator output with an independent
// disjoint-set forest: the floor cells must form a single connected
// component whose adjacency count is exactly floors-1, which is the
// tree property that guarantees one corridor between any two cells.
func verifyPerfect(g *maze.Grid) error {
	elems := make(map[maze.Point]*disjoint.Element)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.IsPassable(col, row) {
				elems[maze.Point{Col: col, Row: row}] = disjoint.NewElement()
			}
		}
	}
	if len(elems) < 2 {
		return fmt.Errorf("only %d floor cells carved", len(elems))
	}

	edges := 0
	for p, e := range elems {
		for _, d := range []maze.Point{{Col: 1}, {Row: 1}} {
			if ne, ok := elems[maze.Point{Col: p.Col + d.Col, Row: p.Row + d.Row}]; ok {
				edges++
				disjoint.Union(e, ne)
			}
		}
	}
	if edges != len(elems)-1 {
		return fmt.Errorf("%d floors with %d adjacencies, want %d", len(elems), edges, len(elems)-1)
	}

	var root *disjoint.Element
	for _, e := range elems {
		if root == nil {
			root = e.Find()
			continue
		}
		if e.Find() != root {
			return fmt.Errorf("floor cells split into multiple components")
		}
	}
	return nil
}

func renderASCII(g *maze.Grid, start, exit maze.Point) string {
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := maze.Point{Col: col, Row: row}
			switch {
			case p == start:
				b.WriteByte('S')
			case p == exit:
				b.WriteByte('E')
			case g.IsPassable(col, row):
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	if rs.verifyErr != "" {
		fmt.Printf("verify: FAILED (%s)\n\n", rs.verifyErr)
		return
	}
	fmt.Printf("maze: cols=%d rows=%d floors=%d verified=spanning-tree\n", rs.cols, rs.rows, rs.floors)
	fmt.Printf("solver: depth=%d path_cells=%d won_frame=%d pings=%d blocked=%d\n",
		rs.depth, rs.pathLen, rs.wonFrame, rs.pings, rs.blocked)
	fmt.Println()
}

func printAggregate(all []runStats) {
	verified := 0
	solved := 0
	totalFloors := 0
	totalDepth := 0
	totalPath := 0
	totalWon := 0
	totalPings := 0
	minDepth := -1
	maxDepth := -1

	for _, rs := range all {
		if rs.verified {
			verified++
		}
		if rs.wonFrame >= 0 {
			solved++
			totalWon += rs.wonFrame
			totalPings += rs.pings
		}
		totalFloors += rs.floors
		totalPath += rs.pathLen
		totalDepth += rs.depth
		if minDepth < 0 || rs.depth < minDepth {
			minDepth = rs.depth
		}
		if rs.depth > maxDepth {
			maxDepth = rs.depth
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d verified=%d/%d solved=%d/%d\n", len(all), verified, len(all), solved, len(all))
	fmt.Printf("avg_floors=%.1f avg_depth=%.1f avg_path_cells=%.1f\n",
		avg(totalFloors, len(all)), avg(totalDepth, len(all)), avg(totalPath, len(all)))
	fmt.Printf("avg_won_frame=%.1f avg_pings=%.1f depth_range=%d..%d\n",
		avg(totalWon, solved), avg(totalPings, solved), minDepth, maxDepth)
	if verified == len(all) && solved == len(all) {
		fmt.Println("verdict: OK")
	} else {
		fmt.Println("verdict: FAILED")
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
