package shadow

const (
	ScreenW = 600
	ScreenH = 400

	// TPS is the fixed simulation rate; one Step call is one frame.
	TPS = 30

	// SpriteSize is the side length of both the player and shadow squares.
	SpriteSize = 20

	// PlayerSpeed is pixels moved per frame on each held axis.
	PlayerSpeed = 5

	// historyCap bounds the recorded trail; once full, the oldest sample
	// is dropped each frame, so the shadow settles into a fixed lag.
	historyCap = 200

	// shadowDelay is the minimum number of recorded samples before the
	// shadow becomes active.
	shadowDelay = 30
)

// offscreen parks the inactive shadow where it can never touch the player.
var offscreen = Point{X: -100, Y: -100}

// State is the run lifecycle.
type State uint8

const (
	Playing State = iota
	Caught
)

func (s State) String() string {
	if s == Caught {
		return "caught"
	}
	return "playing"
}

// Point is a pixel position, the top-left corner of a sprite.
type Point struct {
	X, Y int
}

// Input is one frame of held directions. Axes are independent and
// opposite keys cancel.
type Input struct {
	Up, Down, Left, Right bool
}

// Core holds one run of the chase. The player walks the arena while a
// shadow replays their recorded trail with a delay; contact ends the run.
type Core struct {
	Player  Point
	history []Point
	state   State
	score   int
}

// NewCore starts a fresh run with the player centered and no trail.
func NewCore() *Core {
	return &Core{Player: Point{X: ScreenW / 2, Y: ScreenH / 2}}
}

// Step advances one frame: move and clamp the player, record the new
// position, then check contact with the shadow. Every survived frame
// scores one point. Once caught the run freezes until Reset.
func (c *Core) Step(in Input) {
	if c.state == Caught {
		return
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
	c.Player.X = min(max(c.Player.X, 0), ScreenW-SpriteSize)
	c.Player.Y = min(max(c.Player.Y, 0), ScreenH-SpriteSize)

	c.history = append(c.history, c.Player)
	if len(c.history) > historyCap {
		c.history = c.history[1:]
	}

	s := c.Shadow()
	if abs(c.Player.X-s.X) < SpriteSize && abs(c.Player.Y-s.Y) < SpriteSize {
		c.state = Caught
		return
	}
	c.score++
}

// Shadow returns where the shadow sits this frame: the oldest recorded
// position once enough samples exist, offscreen before that. While the
// trail is still filling, the lag keeps growing; at historyCap it locks.
func (c *Core) Shadow() Point {
	if len(c.history) < shadowDelay {
		return offscreen
	}
	return c.history[0]
}

// Reset starts a fresh run.
func (c *Core) Reset() {
	*c = *NewCore()
}

// State returns the run lifecycle state.
func (c *Core) State() State { return c.state }

// Score returns the number of frames survived.
func (c *Core) Score() int { return c.score }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
