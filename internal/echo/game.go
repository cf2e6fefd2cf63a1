package echo

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/cefeida/echo-arcade/internal/telemetry"
)

// Config carries the shell options parsed in main.
type Config struct {
	Seed int64 // 0 derives a seed from the wall clock
	Mute bool  // skip audio entirely
}

// Game is the Ebitengine shell around a Session: input polling, audio,
// tracing and drawing. All gameplay rules live in Session so the
// headless harness and the tests never touch this type.
type Game struct {
	session *Session
	pinger  *Pinger
	face    *text.GoTextFace
	minimap *ebiten.Image

	start     time.Time
	showDebug bool
}

// NewGame seeds the generator, builds the first session and loads the
// rendering and audio resources.
func NewGame(cfg Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}

	g := &Game{
		face:    &text.GoTextFace{Source: src, Size: hudFontSize},
		minimap: ebiten.NewImage(minimapW, minimapH),
		start:   time.Now(),
	}
	if !cfg.Mute {
		g.pinger = NewPinger()
	}

	genStart := time.Now()
	session, err := NewSession(MazeCols, MazeRows, rng, g.now())
	if err != nil {
		return nil, err
	}
	g.session = session
	g.traceGenerate(time.Since(genStart))
	return g, nil
}

// now is the session clock: seconds since the shell started. It keeps
// counting across regenerates, matching the harness clock semantics.
func (g *Game) now() float64 {
	return time.Since(g.start).Seconds()
}

func (g *Game) Update() error {
	now := g.now()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.session.State() == Won {
			fmt.Print(Report(g.session, now))
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		genStart := time.Now()
		if err := g.session.Regenerate(now); err != nil {
			return err
		}
		g.traceGenerate(time.Since(genStart))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := CopyReport(g.session, now); err != nil {
			log.Printf("Clipboard copy failed: %v", err)
		} else {
			log.Printf("Session report copied to clipboard")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	in := Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Ping:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	res := g.session.Step(in, now)
	if res.Pinged {
		g.pinger.Play()
	}
	if res.Won {
		g.traceWon(now)
	}
	return nil
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenW, ScreenH
}

// traceGenerate records one maze.generate span for the session's
// current grid.
func (g *Game) traceGenerate(took time.Duration) {
	_, span := telemetry.Tracer("game").Start(context.Background(), "maze.generate")
	span.SetAttributes(
		attribute.Int("maze.cols", g.session.Grid.Cols),
		attribute.Int("maze.rows", g.session.Grid.Rows),
		attribute.Int("maze.floor_cells", g.session.Grid.CountPassable()),
		attribute.Int64("maze.generate_us", took.Microseconds()),
	)
	span.End()
}

// traceWon records the outcome span once, on the frame of the win
// transition.
func (g *Game) traceWon(now float64) {
	_, span := telemetry.Tracer("game").Start(context.Background(), "session.won")
	span.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.Int("session.pings", g.session.Pings()),
		attribute.Int("session.moves", g.session.Moves()),
		attribute.Int64("session.elapsed_ms", int64(g.session.Elapsed(now)*1000)),
	)
	span.End()
}
