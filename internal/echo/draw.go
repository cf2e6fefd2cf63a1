package echo

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cefeida/echo-arcade/internal/maze"
)

// Rendering geometry. The minimap mirrors the whole grid into a small
// fixed rectangle in the bottom-right corner.
const (
	hudFontSize = 18

	minimapW      = 160
	minimapH      = 120
	minimapMargin = 8

	ringWidth = 3
)

var (
	colorBack    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorWall    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorFloor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorExit    = color.RGBA{R: 60, G: 200, B: 80, A: 255}
	colorPlayer  = color.RGBA{R: 240, G: 220, B: 120, A: 255}
	colorHUDBack = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorHUDText = color.RGBA{R: 220, G: 220, B: 220, A: 255}

	// The minimap uses its own darker grays so lit cells read at 6x5 px.
	colorMiniBack   = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	colorMiniWall   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorMiniFloor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	colorMiniHidden = color.RGBA{R: 8, G: 8, B: 8, A: 255}
)

// ringColor scales the pulse color to the given opacity. Ebitengine
// colors are premultiplied alpha, so the components scale with it.
func ringColor(a float64) color.RGBA {
	return color.RGBA{
		R: uint8(200 * a),
		G: uint8(200 * a),
		B: uint8(255 * a),
		A: uint8(255 * a),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.now()

	screen.Fill(colorBack)
	g.drawWorld(screen, now)
	g.drawRings(screen, now)
	g.drawPlayer(screen)
	g.drawHUD(screen, now)
	g.drawMinimap(screen, now)
	if g.showDebug {
		g.drawDebug(screen)
	}
}

// drawWorld paints the currently lit tiles. Hidden cells stay
// background black, so only lit cells get a rect, with the exit tile
// painted over its floor when its cell is lit.
func (g *Game) drawWorld(screen *ebiten.Image, now float64) {
	s := g.session
	for r := 0; r < s.Grid.Rows; r++ {
		for c := 0; c < s.Grid.Cols; c++ {
			if !s.Vis.IsVisible(c, r, now) {
				continue
			}
			clr := colorFloor
			if s.Grid.At(c, r) == maze.CellWall {
				clr = colorWall
			}
			vector.FillRect(screen, float32(c*CellSize), float32(r*CellSize),
				CellSize, CellSize, clr, false)
		}
	}
	if s.Vis.IsVisible(s.Exit.Col, s.Exit.Row, now) {
		vector.FillRect(screen, float32(s.Exit.Col*CellSize), float32(s.Exit.Row*CellSize),
			CellSize, CellSize, colorExit, false)
	}
}

// drawRings paints every live pulse: a stroked leading ring plus a
// soft filled glow at half the raw radius. The glow keeps growing
// after the ring hits its radius cap, so it is derived from the pulse
// age rather than the capped ring radius.
func (g *Game) drawRings(screen *ebiten.Image, now float64) {
	for _, p := range g.session.Vis.Pulses() {
		radius, alpha := RingState(p, now)
		if radius <= 0 {
			continue
		}
		cx, cy := float32(p.X), float32(p.Y)
		vector.StrokeCircle(screen, cx, cy, float32(radius), ringWidth, ringColor(alpha*0.6), true)

		age := now - p.EmittedAt
		glowR := math.Min(age*PingSpeed*0.5, PingMaxRadius)
		vector.FillCircle(screen, cx, cy, float32(glowR), ringColor(alpha*0.12), true)
	}
}

// drawPlayer marks the player even in full dark so the run stays
// navigable.
func (g *Game) drawPlayer(screen *ebiten.Image) {
	x, y := CellCenter(g.session.Player)
	vector.FillCircle(screen, float32(x), float32(y), CellSize/2-2, colorPlayer, true)
}

func (g *Game) drawHUD(screen *ebiten.Image, now float64) {
	s := g.session
	vector.FillRect(screen, 0, ScreenH-HUDHeight, ScreenW, HUDHeight, colorHUDBack, false)

	line := fmt.Sprintf("Ping (Space): %d   Time: %ds   (R: regenerate) ",
		s.Pings(), int(s.Elapsed(now)))
	if s.State() == Won {
		line = "YOU REACHED THE EXIT! Press R to play again. " + line
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, ScreenH-32)
	op.ColorScale.ScaleWithColor(colorHUDText)
	text.Draw(screen, line, g.face, op)
}

// drawMinimap redraws the offscreen minimap every frame and blits it
// bottom-right. The player dot is always drawn; the exit dot, like the
// main view's exit tile, appears only while its cell is lit.
func (g *Game) drawMinimap(screen *ebiten.Image, now float64) {
	s := g.session
	g.minimap.Fill(colorMiniBack)

	cw := float64(minimapW) / float64(s.Grid.Cols)
	ch := float64(minimapH) / float64(s.Grid.Rows)
	for r := 0; r < s.Grid.Rows; r++ {
		for c := 0; c < s.Grid.Cols; c++ {
			clr := colorMiniHidden
			if s.Vis.IsVisible(c, r, now) {
				if s.Grid.At(c, r) == maze.CellWall {
					clr = colorMiniWall
				} else {
					clr = colorMiniFloor
				}
			}
			vector.FillRect(g.minimap, float32(float64(c)*cw), float32(float64(r)*ch),
				float32(math.Ceil(cw)), float32(math.Ceil(ch)), clr, false)
		}
	}
	px := float32(float64(s.Player.Col)*cw + cw/2)
	py := float32(float64(s.Player.Row)*ch + ch/2)
	vector.FillCircle(g.minimap, px, py, 3, colorPlayer, false)
	if s.Vis.IsVisible(s.Exit.Col, s.Exit.Row, now) {
		ex := float32(float64(s.Exit.Col)*cw + cw/2)
		ey := float32(float64(s.Exit.Row)*ch + ch/2)
		vector.FillCircle(g.minimap, ex, ey, 3, colorExit, false)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ScreenW-minimapW-minimapMargin, ScreenH-minimapH-minimapMargin)
	screen.DrawImage(g.minimap, op)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	s := g.session
	msg := fmt.Sprintf("TPS %.0f FPS %.0f\npulses %d\ncell (%d,%d)",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(s.Vis.Pulses()), s.Player.Col, s.Player.Row)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
