package echo

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/cefeida/echo-arcade/internal/maze"
)

// Gameplay tuning, fixed at compile time. The harness substitutes grid
// dimensions through its options; nothing else varies at runtime.
const (
	MazeCols = 25
	MazeRows = 19

	// CellSize is the pixel edge of one maze cell.
	CellSize = 24

	// HUDHeight is the strip under the maze reserved for status text.
	HUDHeight = 40

	ScreenW = CellSize * MazeCols
	ScreenH = CellSize*MazeRows + HUDHeight

	// TPS is the fixed update rate of the shell and the harness clock.
	TPS = 60

	// PingCooldown is the minimum interval in seconds between accepted
	// emits.
	PingCooldown = 0.6
	// RevealDuration is how long a stamped cell stays lit and how long
	// a ring draws at full alpha.
	RevealDuration = 1.0
	// PingSpeed is the ring expansion rate in pixels per second.
	PingSpeed = 450.0
	// PingMaxRadius clips ring growth a little past the far window edge.
	PingMaxRadius = max(ScreenW, ScreenH) * 1.1
	// revealSlack widens the reveal test past the ring edge so the
	// leading edge lights whole cells without gaps.
	revealSlack = CellSize * 0.7
)

// State is the session lifecycle.
type State uint8

const (
	Playing State = iota
	Won
)

func (s State) String() string {
	if s == Won {
		return "won"
	}
	return "playing"
}

// Input is one frame of player intent, already resolved from whatever
// device produced it.
type Input struct {
	Up, Down, Left, Right bool
	Ping                  bool
}

// resolve reduces the four direction flags to a single-axis step. Up
// beats down and left beats right within an axis; vertical beats
// horizontal when both axes are held.
func (in Input) resolve() (dc, dr int) {
	if in.Up {
		dr = -1
	} else if in.Down {
		dr = 1
	}
	if in.Left {
		dc = -1
	} else if in.Right {
		dc = 1
	}
	if dr != 0 && dc != 0 {
		dc = 0
	}
	return dc, dr
}

// StepResult reports what one Step actually did, so the shell can drive
// audio, logging and telemetry off it.
type StepResult struct {
	Moved   bool // the player entered a new cell
	Blocked bool // a move was requested and rejected by a wall or edge
	Pinged  bool // an emit was accepted this frame
	Won     bool // the win transition happened this frame
}

// Session is one full game: a maze, a player, an exit and the pulse
// field, advanced frame by frame through Step and replaced wholesale by
// Regenerate.
type Session struct {
	ID     string
	Grid   *maze.Grid
	Player maze.Point
	Exit   maze.Point
	Vis    *VisibilityField

	state     State
	startedAt float64
	wonAt     float64
	moves     int
	rng       *rand.Rand
}

// NewSession carves a cols x rows maze, drops the player on a random
// floor cell and puts the exit at the farthest floor cell from it.
func NewSession(cols, rows int, rng *rand.Rand, now float64) (*Session, error) {
	g, err := maze.Generate(cols, rows, rng)
	if err != nil {
		return nil, err
	}
	s := &Session{rng: rng}
	s.reset(g, now)
	return s, nil
}

// NewSessionWith wraps an already-built grid so tests and the harness
// can drop in hand-made geometry. The grid must contain at least one
// floor cell; the exit differs from the spawn whenever a second
// connected floor cell exists.
func NewSessionWith(g *maze.Grid, rng *rand.Rand, now float64) *Session {
	s := &Session{rng: rng}
	s.reset(g, now)
	return s
}

func (s *Session) reset(g *maze.Grid, now float64) {
	s.ID = uuid.NewString()
	s.Grid = g
	if p, ok := g.RandomPassable(s.rng); ok {
		s.Player = p
	} else {
		s.Player = maze.Point{}
	}
	s.Exit, _ = maze.FarthestFrom(g, s.Player)
	s.Vis = NewVisibilityField(g.Cols, g.Rows)
	s.state = Playing
	s.startedAt = now
	s.wonAt = 0
	s.moves = 0
}

// Step advances one frame: the optional emit first (from the pre-move
// cell, matching the event-before-input ordering of the shell), then
// the move, then pulse bookkeeping, then the win check. Input keeps
// being processed after the win; only Regenerate leaves Won.
func (s *Session) Step(in Input, now float64) StepResult {
	var res StepResult

	if in.Ping {
		cx, cy := CellCenter(s.Player)
		res.Pinged = s.Vis.Emit(cx, cy, now)
	}

	dc, dr := in.resolve()
	if dc != 0 || dr != 0 {
		nc, nr := s.Player.Col+dc, s.Player.Row+dr
		if s.Grid.IsPassable(nc, nr) {
			s.Player = maze.Point{Col: nc, Row: nr}
			s.moves++
			res.Moved = true
		} else {
			res.Blocked = true
		}
	}

	s.Vis.Advance(now)

	if s.state == Playing && s.Player == s.Exit {
		s.state = Won
		s.wonAt = now
		res.Won = true
	}
	return res
}

// Regenerate rebuilds everything: fresh maze of the same dimensions,
// fresh spawn, exit, visibility field, session ID and counters.
func (s *Session) Regenerate(now float64) error {
	g, err := maze.Generate(s.Grid.Cols, s.Grid.Rows, s.rng)
	if err != nil {
		return err
	}
	s.reset(g, now)
	return nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Moves returns how many cells the player has entered this session.
func (s *Session) Moves() int {
	return s.moves
}

// Pings returns how many emits have been accepted this session.
func (s *Session) Pings() int {
	return s.Vis.Emitted()
}

// Elapsed returns seconds since the session started or regenerated.
func (s *Session) Elapsed(now float64) float64 {
	return now - s.startedAt
}

// WonAt returns the session time of the win transition, or 0 while
// still playing.
func (s *Session) WonAt() float64 {
	return s.wonAt
}

// CellCenter returns the pixel center of a grid cell.
func CellCenter(p maze.Point) (x, y float64) {
	return float64(p.Col*CellSize + CellSize/2), float64(p.Row*CellSize + CellSize/2)
}
