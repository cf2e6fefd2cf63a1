package colormaze

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
	colorBack  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorText  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorExit  = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	colorRed   = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	colorGreen = color.RGBA{R: 50, G: 200, B: 50, A: 255}
	colorBlue  = color.RGBA{R: 50, G: 100, B: 255, A: 255}
)

func attColor(a Attunement) color.RGBA {
	switch a {
	case Green:
		return colorGreen
	case Blue:
		return colorBlue
	default:
		return colorRed
	}
}

// Game is the Ebitengine shell around Core.
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
		face: &text.GoTextFace{Source: src, Size: 32},
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
		Up:     ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Switch: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBack)

	fillRect(screen, exitRect, colorExit)
	for _, w := range walls {
		fillRect(screen, w.Rect, attColor(w.Color))
	}
	fillRect(screen, g.core.Player, attColor(g.core.Attunement()))

	if g.core.State() == Won {
		g.drawText(screen, "YOU WIN!", ScreenW/2-60, ScreenH/2, colorExit)
		g.drawText(screen, "Press R to restart", ScreenW/2-60, ScreenH/2+40, colorText)
	}
	g.drawText(screen, fmt.Sprintf("Color: %s (SPACE to switch)", g.core.Attunement()), 10, 10, colorText)
}

func fillRect(dst *ebiten.Image, r Rect, clr color.RGBA) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
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
