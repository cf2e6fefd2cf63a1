package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cefeida/echo-arcade/internal/shadow"
)

func main() {
	g, err := shadow.NewGame()
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	ebiten.SetWindowTitle("Shadow Runner")
	ebiten.SetWindowSize(shadow.ScreenW*2, shadow.ScreenH*2)
	ebiten.SetTPS(shadow.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
