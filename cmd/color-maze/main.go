package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cefeida/echo-arcade/internal/colormaze"
)

func main() {
	g, err := colormaze.NewGame()
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	ebiten.SetWindowTitle("Color Switch Maze")
	ebiten.SetWindowSize(colormaze.ScreenW*2, colormaze.ScreenH*2)
	ebiten.SetTPS(colormaze.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
