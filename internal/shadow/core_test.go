package shadow

import "testing"

func TestCore_SpawnState(t *testing.T) {
	c := NewCore()
	if c.Player != (Point{X: 300, Y: 200}) {
		t.Fatalf("expected spawn at (300,200), got %+v", c.Player)
	}
	if c.State() != Playing {
		t.Fatalf("expected Playing, got %v", c.State())
	}
	if c.Score() != 0 {
		t.Fatalf("expected score 0, got %d", c.Score())
	}
	if c.Shadow() != offscreen {
		t.Fatalf("expected shadow parked offscreen, got %+v", c.Shadow())
	}
}

func TestCore_OppositeKeysCancel(t *testing.T) {
	c := NewCore()
	c.Step(Input{Up: true, Down: true, Left: true, Right: true})
	if c.Player != (Point{X: 300, Y: 200}) {
		t.Fatalf("expected player unmoved with all keys held, got %+v", c.Player)
	}
	if c.Score() != 1 {
		t.Fatalf("expected score 1, got %d", c.Score())
	}
}

func TestCore_DiagonalMove(t *testing.T) {
	c := NewCore()
	c.Step(Input{Right: true, Down: true})
	if c.Player != (Point{X: 305, Y: 205}) {
		t.Fatalf("expected (305,205) after one diagonal frame, got %+v", c.Player)
	}
}

func TestCore_ClampAtEdges(t *testing.T) {
	c := NewCore()
	for i := 0; i < 100; i++ {
		c.Step(Input{Up: true, Left: true})
	}
	if c.Player != (Point{X: 0, Y: 0}) {
		t.Fatalf("expected clamp at (0,0), got %+v", c.Player)
	}
	for i := 0; i < 120; i++ {
		c.Step(Input{Down: true, Right: true})
	}
	if c.Player != (Point{X: ScreenW - SpriteSize, Y: ScreenH - SpriteSize}) {
		t.Fatalf("expected clamp at (580,380), got %+v", c.Player)
	}
	if c.State() != Playing {
		t.Fatalf("expected edge hugging to stay Playing, got %v", c.State())
	}
}

func TestCore_ShadowReplaysOldestSample(t *testing.T) {
	c := NewCore()
	for i := 0; i < 29; i++ {
		c.Step(Input{Right: true})
	}
	if c.Shadow() != offscreen {
		t.Fatalf("expected shadow offscreen at 29 samples, got %+v", c.Shadow())
	}
	c.Step(Input{Right: true})
	if c.Shadow() != (Point{X: 305, Y: 200}) {
		t.Fatalf("expected shadow at first recorded position (305,200), got %+v", c.Shadow())
	}
	if c.Player != (Point{X: 450, Y: 200}) {
		t.Fatalf("expected player at (450,200) after 30 frames, got %+v", c.Player)
	}
	if c.State() != Playing {
		t.Fatalf("expected Playing, got %v", c.State())
	}
}

func TestCore_StandingStillGetsCaught(t *testing.T) {
	c := NewCore()
	for i := 0; i < 29; i++ {
		c.Step(Input{})
	}
	if c.State() != Playing {
		t.Fatalf("expected Playing before the shadow activates, got %v", c.State())
	}
	c.Step(Input{})
	if c.State() != Caught {
		t.Fatalf("expected the shadow to land on an idle player, got %v", c.State())
	}
	if c.Score() != 29 {
		t.Fatalf("expected the caught frame unscored, got %d", c.Score())
	}

	c.Step(Input{Right: true})
	if c.Player != (Point{X: 300, Y: 200}) {
		t.Fatalf("expected movement frozen after catch, got %+v", c.Player)
	}
	if c.Score() != 29 {
		t.Fatalf("expected score frozen after catch, got %d", c.Score())
	}
}

func TestCore_HistoryCapLocksTheLag(t *testing.T) {
	c := NewCore()
	for i := 0; i < 250; i++ {
		c.Step(Input{Right: true})
	}
	if len(c.history) != historyCap {
		t.Fatalf("expected history capped at %d, got %d", historyCap, len(c.history))
	}
	if c.State() != Playing {
		t.Fatalf("expected Playing at frame 250, got %v", c.State())
	}
	if c.Score() != 250 {
		t.Fatalf("expected score 250, got %d", c.Score())
	}

	// The shadow now replays the 200-frame-old walk into the right wall
	// and closes on the pinned player two frames later.
	c.Step(Input{Right: true})
	if c.State() != Playing {
		t.Fatalf("expected shadow still 20px away at frame 251, got %v", c.State())
	}
	c.Step(Input{Right: true})
	if c.State() != Caught {
		t.Fatalf("expected catch at frame 252, got %v", c.State())
	}
	if c.Score() != 251 {
		t.Fatalf("expected score 251, got %d", c.Score())
	}
}

func TestCore_TouchingAtExactlySpriteSizeIsSafe(t *testing.T) {
	c := NewCore()
	c.history = make([]Point, shadowDelay)
	for i := range c.history {
		c.history[i] = Point{X: 300, Y: 200}
	}
	c.Player = Point{X: 300 + SpriteSize - PlayerSpeed, Y: 200}

	// One more step to the right puts the squares exactly edge to edge.
	c.Step(Input{Right: true})
	if c.State() != Playing {
		t.Fatalf("expected edge contact at 20px to be safe, got %v", c.State())
	}
}

func TestCore_ResetClearsTheRun(t *testing.T) {
	c := NewCore()
	for i := 0; i < 30; i++ {
		c.Step(Input{})
	}
	if c.State() != Caught {
		t.Fatalf("expected Caught before reset, got %v", c.State())
	}

	c.Reset()
	if c.State() != Playing {
		t.Fatalf("expected Playing after reset, got %v", c.State())
	}
	if c.Score() != 0 {
		t.Fatalf("expected score 0 after reset, got %d", c.Score())
	}
	if c.Player != (Point{X: 300, Y: 200}) {
		t.Fatalf("expected player back at spawn, got %+v", c.Player)
	}
	if c.Shadow() != offscreen {
		t.Fatalf("expected shadow parked again, got %+v", c.Shadow())
	}
}
