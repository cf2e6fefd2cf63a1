package colormaze

const (
	ScreenW = 600
	ScreenH = 400

	// TPS is the fixed simulation rate; one Step call is one frame.
	TPS = 30

	// PlayerSize is the side length of the player square.
	PlayerSize = 20

	// PlayerSpeed is pixels moved per frame on each held axis.
	PlayerSpeed = 4

	// SpawnX, SpawnY is the start corner and the teleport target after
	// hitting a mismatched wall.
	SpawnX = 40
	SpawnY = 40
)

// Attunement is the color the player currently passes through.
type Attunement uint8

const (
	Red Attunement = iota
	Green
	Blue
)

func (a Attunement) String() string {
	switch a {
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "red"
	}
}

// cycle returns the next attunement in the fixed red-green-blue order.
func (a Attunement) cycle() Attunement {
	return (a + 1) % 3
}

// State is the run lifecycle.
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

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Overlaps reports interior intersection. Rectangles that only share an
// edge do not overlap, so sliding along a wall face is safe.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Wall is a colored strip; only a matching attunement passes through it.
type Wall struct {
	Rect  Rect
	Color Attunement
}

// walls is the fixed strip layout, left to right. Strips alternate which
// screen edge they hang from, so every crossing forces a detour.
var walls = []Wall{
	{Rect: Rect{X: 100, Y: 0, W: 20, H: 300}, Color: Red},
	{Rect: Rect{X: 200, Y: 100, W: 20, H: 300}, Color: Green},
	{Rect: Rect{X: 300, Y: 0, W: 20, H: 300}, Color: Blue},
	{Rect: Rect{X: 400, Y: 100, W: 20, H: 300}, Color: Red},
	{Rect: Rect{X: 500, Y: 0, W: 20, H: 300}, Color: Green},
}

// exitRect is the win area in the bottom-right corner.
var exitRect = Rect{X: ScreenW - 40, Y: ScreenH - 40, W: 30, H: 30}

// Input is one frame of intent: held directions plus the edge-triggered
// color switch.
type Input struct {
	Up, Down, Left, Right bool
	Switch                bool
}

// StepResult reports what one frame did.
type StepResult struct {
	Switched bool
	Sent     bool // a mismatched wall sent the player back to spawn
	Won      bool
}

// Core holds one run of the maze. The player square carries an
// attunement; walls of any other color bounce it back to spawn.
type Core struct {
	Player Rect
	att    Attunement
	state  State
}

// NewCore starts at the spawn corner attuned to red.
func NewCore() *Core {
	return &Core{Player: Rect{X: SpawnX, Y: SpawnY, W: PlayerSize, H: PlayerSize}}
}

// Step advances one frame: cycle the attunement on a switch edge, move
// on both axes, bounce off the first mismatched wall, then check the
// exit. Movement is unclamped; leaving the screen is allowed. Once won
// the run freezes until Reset.
func (c *Core) Step(in Input) StepResult {
	var res StepResult
	if c.state == Won {
		return res
	}

	if in.Switch {
		c.att = c.att.cycle()
		res.Switched = true
	}

	if in.Left {
		c.Player.X -= PlayerSpeed
	}
	if in.Right {
		c.Player.X += PlayerSpeed
	}
	if in.Up {
		c.Player.Y -= PlayerSpeed
	}
	if in.Down {
		c.Player.Y += PlayerSpeed
	}

	for _, w := range walls {
		if c.Player.Overlaps(w.Rect) && c.att != w.Color {
			c.Player.X, c.Player.Y = SpawnX, SpawnY
			res.Sent = true
			break
		}
	}

	if c.Player.Overlaps(exitRect) {
		c.state = Won
		res.Won = true
	}
	return res
}

// Reset starts a fresh run.
func (c *Core) Reset() {
	*c = *NewCore()
}

// Attunement returns the player's current color.
func (c *Core) Attunement() Attunement { return c.att }

// State returns the run lifecycle state.
func (c *Core) State() State { return c.state }
