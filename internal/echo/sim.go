package echo

import (
	"fmt"
	"math/rand"

	"github.com/cefeida/echo-arcade/internal/maze"
)

// Sim is a headless harness that steps a Session on a virtual clock.
// It mirrors the shell's update order without any Ebiten dependency and
// records what happened to a structured EventLog, so tests and the
// report tool can assert on behavior instead of scraping pixels.
type Sim struct {
	Session *Session
	Log     *EventLog
	Frame   int

	cols, rows int
	tps        float64
	rng        *rand.Rand
	grid       *maze.Grid // optional generator bypass
	script     func(frame int) Input
	now        float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, dims, grid, verbose, script; applied first
	simOptPlace                      // player/exit placement; applied after the session exists
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithDims sets the generated maze dimensions.
func WithDims(cols, rows int) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.cols, sim.rows = cols, rows
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithVerbose enables per-frame position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.Log = NewEventLog(v)
	}}
}

// WithGrid bypasses the generator and installs a hand-built grid.
func WithGrid(g *maze.Grid) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.grid = g
	}}
}

// WithTPS overrides the virtual frame rate.
func WithTPS(tps float64) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.tps = tps
	}}
}

// WithScript installs the per-frame input source.
func WithScript(script func(frame int) Input) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.script = script
	}}
}

// WithStart repositions the player and recomputes the exit as the
// farthest cell from the new spawn.
func WithStart(col, row int) SimOption {
	return SimOption{simOptPlace, func(sim *Sim) {
		p := maze.Point{Col: col, Row: row}
		sim.Session.Player = p
		sim.Session.Exit, _ = maze.FarthestFrom(sim.Session.Grid, p)
	}}
}

// NewSim constructs a Sim from the given options in two ordered passes:
//
//  1. Infrastructure (seed, dimensions, grid override, verbose, script)
//  2. Build the session
//  3. Placement (player / exit)
func NewSim(opts ...SimOption) (*Sim, error) {
	sim := &Sim{
		cols: MazeCols,
		rows: MazeRows,
		tps:  TPS,
		Log:  NewEventLog(false),
		rng:  rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(sim)
		}
	}
	if sim.grid != nil {
		sim.Session = NewSessionWith(sim.grid, sim.rng, sim.now)
	} else {
		s, err := NewSession(sim.cols, sim.rows, sim.rng, sim.now)
		if err != nil {
			return nil, err
		}
		sim.Session = s
	}
	for _, o := range opts {
		if o.kind == simOptPlace {
			o.fn(sim)
		}
	}
	return sim, nil
}

// Now returns the virtual clock in seconds.
func (sim *Sim) Now() float64 {
	return sim.now
}

// RunFrames advances the simulation n frames.
func (sim *Sim) RunFrames(n int) {
	for i := 0; i < n; i++ {
		sim.stepOnce()
	}
}

// RunUntil advances up to maxFrames, stopping early when pred returns
// true. Returns the frame at which it was satisfied, or -1.
func (sim *Sim) RunUntil(pred func(*Sim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		sim.stepOnce()
		if pred(sim) {
			return sim.Frame
		}
	}
	return -1
}

// Regenerate rebuilds the session mid-run, as the shell's R key does.
func (sim *Sim) Regenerate() error {
	if err := sim.Session.Regenerate(sim.now); err != nil {
		return err
	}
	g := sim.Session.Grid
	sim.Log.Add(sim.Frame, "state", "regenerate", fmt.Sprintf("fresh %dx%d maze", g.Cols, g.Rows), 0)
	return nil
}

// stepOnce advances the virtual clock one frame, applies the scripted
// input and logs the outcome.
func (sim *Sim) stepOnce() {
	sim.Frame++
	sim.now += 1.0 / sim.tps

	var in Input
	if sim.script != nil {
		in = sim.script(sim.Frame)
	}

	prev := sim.Session.Player
	res := sim.Session.Step(in, sim.now)

	if res.Pinged {
		cx, cy := CellCenter(prev)
		sim.Log.Add(sim.Frame, "ping", "emit",
			fmt.Sprintf("from (%d,%d) at (%.0f,%.0f)px", prev.Col, prev.Row, cx, cy), 0)
	} else if in.Ping {
		sim.Log.Add(sim.Frame, "ping", "cooldown", "emit dropped inside cooldown", 0)
	}
	if res.Moved {
		sim.Log.Add(sim.Frame, "move", "step",
			fmt.Sprintf("(%d,%d) -> (%d,%d)", prev.Col, prev.Row, sim.Session.Player.Col, sim.Session.Player.Row), 0)
	} else if res.Blocked {
		sim.Log.Add(sim.Frame, "move", "blocked",
			fmt.Sprintf("at (%d,%d)", prev.Col, prev.Row), 0)
	}
	if res.Won {
		sim.Log.Add(sim.Frame, "state", "won",
			fmt.Sprintf("reached exit (%d,%d)", sim.Session.Exit.Col, sim.Session.Exit.Row), 0)
	}
	sim.Log.AddVerbose(sim.Frame, "move", "position",
		fmt.Sprintf("(%d,%d)", sim.Session.Player.Col, sim.Session.Player.Row), 0)
}

// SimSnapshot is a lightweight copy of the observable session state.
type SimSnapshot struct {
	Frame  int
	Player maze.Point
	Exit   maze.Point
	State  State
	Moves  int
	Pings  int
}

// Snapshot captures the current state for assertions.
func (sim *Sim) Snapshot() SimSnapshot {
	return SimSnapshot{
		Frame:  sim.Frame,
		Player: sim.Session.Player,
		Exit:   sim.Session.Exit,
		State:  sim.Session.State(),
		Moves:  sim.Session.Moves(),
		Pings:  sim.Session.Pings(),
	}
}

// ScriptPath converts a cell path into a per-frame input script: frame
// n produces the move from path[n-1] to path[n], so the final cell is
// reached on frame len(path)-1. Frames past the end move nothing. When
// ping is true every frame also requests an emit and the cooldown
// thins those to the allowed rate.
func ScriptPath(path []maze.Point, ping bool) func(frame int) Input {
	return func(frame int) Input {
		in := Input{Ping: ping}
		if frame < 1 || frame >= len(path) {
			return in
		}
		from, to := path[frame-1], path[frame]
		switch {
		case to.Row < from.Row:
			in.Up = true
		case to.Row > from.Row:
			in.Down = true
		case to.Col < from.Col:
			in.Left = true
		case to.Col > from.Col:
			in.Right = true
		}
		return in
	}
}
