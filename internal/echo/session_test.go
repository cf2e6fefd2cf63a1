package echo

import (
	"math/rand"
	"testing"

	"github.com/cefeida/echo-arcade/internal/maze"
)

// openGrid returns a grid with every cell carved to floor.
func openGrid(cols, rows int) *maze.Grid {
	g := maze.NewGrid(cols, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.SetCell(c, r, maze.CellFloor)
		}
	}
	return g
}

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
}

func TestNewSession_InvalidDims(t *testing.T) {
	if _, err := NewSession(0, 10, testRNG(1), 0); err == nil {
		t.Fatal("expected an error for zero columns")
	}
}

func TestSession_MoveAndBlock(t *testing.T) {
	s := NewSessionWith(openGrid(3, 1), testRNG(1), 0)
	s.Player = maze.Point{Col: 0, Row: 0}
	s.Exit = maze.Point{Col: 2, Row: 0}

	res := s.Step(Input{Down: true}, 1.0/TPS)
	if !res.Blocked || res.Moved {
		t.Fatalf("expected a blocked move into the edge, got %+v", res)
	}
	if s.Moves() != 0 {
		t.Fatalf("expected no moves counted, got %d", s.Moves())
	}

	res = s.Step(Input{Right: true}, 2.0/TPS)
	if !res.Moved || res.Blocked {
		t.Fatalf("expected a move onto floor, got %+v", res)
	}
	if s.Player != (maze.Point{Col: 1, Row: 0}) {
		t.Fatalf("expected player at (1,0), got %v", s.Player)
	}
	if s.Moves() != 1 {
		t.Fatalf("expected 1 move counted, got %d", s.Moves())
	}
	if s.State() != Playing {
		t.Fatalf("expected state playing, got %v", s.State())
	}
}

func TestSession_AxisPriority(t *testing.T) {
	g := openGrid(3, 3)

	s := NewSessionWith(g, testRNG(1), 0)
	s.Player = maze.Point{Col: 1, Row: 1}
	s.Exit = maze.Point{Col: 2, Row: 2}
	s.Step(Input{Up: true, Down: true}, 0.1)
	if s.Player != (maze.Point{Col: 1, Row: 0}) {
		t.Fatalf("up should beat down, player at %v", s.Player)
	}

	s = NewSessionWith(g, testRNG(1), 0)
	s.Player = maze.Point{Col: 1, Row: 1}
	s.Exit = maze.Point{Col: 2, Row: 2}
	s.Step(Input{Left: true, Right: true}, 0.1)
	if s.Player != (maze.Point{Col: 0, Row: 1}) {
		t.Fatalf("left should beat right, player at %v", s.Player)
	}

	s = NewSessionWith(g, testRNG(1), 0)
	s.Player = maze.Point{Col: 1, Row: 1}
	s.Exit = maze.Point{Col: 2, Row: 2}
	s.Step(Input{Down: true, Right: true}, 0.1)
	if s.Player != (maze.Point{Col: 1, Row: 2}) {
		t.Fatalf("vertical should beat horizontal, player at %v", s.Player)
	}
}

func TestSession_PingFromPreMoveCell(t *testing.T) {
	s := NewSessionWith(openGrid(5, 1), testRNG(3), 0)
	s.Player = maze.Point{Col: 0, Row: 0}
	s.Exit = maze.Point{Col: 4, Row: 0}

	res := s.Step(Input{Right: true, Ping: true}, 1.0)
	if !res.Pinged || !res.Moved {
		t.Fatalf("expected a ping and a move on the same frame, got %+v", res)
	}
	pulses := s.Vis.Pulses()
	if len(pulses) != 1 {
		t.Fatalf("expected 1 pulse, got %d", len(pulses))
	}
	// The pulse originates from the cell the player left, not the one
	// entered this frame.
	if pulses[0].X != 12 || pulses[0].Y != 12 {
		t.Fatalf("expected the pulse from (12,12)px, got (%v,%v)", pulses[0].X, pulses[0].Y)
	}
	if s.Player != (maze.Point{Col: 1, Row: 0}) {
		t.Fatalf("expected player at (1,0), got %v", s.Player)
	}
	if s.Pings() != 1 {
		t.Fatalf("expected 1 ping counted, got %d", s.Pings())
	}
}

func TestSession_WonOnceThenKeepsMoving(t *testing.T) {
	s := NewSessionWith(openGrid(2, 1), testRNG(2), 0)
	s.Player = maze.Point{Col: 0, Row: 0}
	s.Exit = maze.Point{Col: 1, Row: 0}

	res := s.Step(Input{Right: true}, 0.5)
	if !res.Won {
		t.Fatalf("expected the win transition, got %+v", res)
	}
	if s.State() != Won {
		t.Fatalf("expected state won, got %v", s.State())
	}
	if s.WonAt() != 0.5 {
		t.Fatalf("expected wonAt 0.5, got %v", s.WonAt())
	}

	// Input keeps working after the win; the transition fires once.
	res = s.Step(Input{Left: true}, 1.0)
	if !res.Moved || res.Won {
		t.Fatalf("expected a post-win move without a second transition, got %+v", res)
	}
	res = s.Step(Input{Right: true}, 1.5)
	if res.Won {
		t.Fatal("re-entering the exit must not fire the transition again")
	}
	if s.State() != Won {
		t.Fatalf("expected the state to stay won, got %v", s.State())
	}
}

func TestSession_RegenerateResets(t *testing.T) {
	s, err := NewSession(15, 11, testRNG(9), 0)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	oldID := s.ID
	s.Step(Input{Ping: true}, 0.5)
	if s.Pings() != 1 {
		t.Fatalf("expected 1 ping before regenerate, got %d", s.Pings())
	}

	if err := s.Regenerate(3.0); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if s.ID == oldID {
		t.Fatal("regenerate must mint a fresh session ID")
	}
	if s.Pings() != 0 || s.Moves() != 0 {
		t.Fatalf("expected counters reset, got pings=%d moves=%d", s.Pings(), s.Moves())
	}
	if s.State() != Playing {
		t.Fatalf("expected state playing, got %v", s.State())
	}
	if s.Grid.Cols != 15 || s.Grid.Rows != 11 {
		t.Fatalf("expected dimensions preserved, got %dx%d", s.Grid.Cols, s.Grid.Rows)
	}
	if s.Elapsed(4.5) != 1.5 {
		t.Fatalf("expected the elapsed clock restarted at regenerate, got %v", s.Elapsed(4.5))
	}
	if !s.Grid.IsPassable(s.Player.Col, s.Player.Row) {
		t.Fatalf("expected the spawn on a floor cell, got %v", s.Player)
	}
}
