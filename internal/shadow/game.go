package shadow

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorBack   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorPlayer = color.RGBA{R: 50, G: 100, B: 255, A: 255}
	colorShadow = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	colorText   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Game is the Ebitengine shell around Core: keyboard in, squares out.
type Game struct {
	core *Core
	face *text.GoTextFace
}

func NewGame() (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load sans font: %w", err)
	}
	return &Game{
		core: NewCore(),
		face: &text.GoTextFace{Source: src, Size: 36},
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.core.Reset()
	}
	g.core.Step(Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBack)

	p := g.core.Player
	s := g.core.Shadow()
	vector.FillRect(screen, float32(p.X), float32(p.Y), SpriteSize, SpriteSize, colorPlayer, false)
	vector.FillRect(screen, float32(s.X), float32(s.Y), SpriteSize, SpriteSize, colorShadow, false)

	if g.core.State() == Caught {
		g.drawText(screen, "GAME OVER!", ScreenW/2-100, ScreenH/2, colorShadow)
		g.drawText(screen, "Press R to restart", ScreenW/2-100, ScreenH/2+40, colorText)
	}
	g.drawText(screen, fmt.Sprintf("Score: %d", g.core.Score()), 10, 10, colorText)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenW, ScreenH
}
