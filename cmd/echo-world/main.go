// Package main is the entry point for Echo World.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/cefeida/echo-arcade/internal/echo"
	"github.com/cefeida/echo-arcade/internal/telemetry"
)

func main() {
	var seed int64
	var mute bool
	flag.Int64Var(&seed, "seed", 0, "maze RNG seed; 0 derives one from the clock")
	flag.BoolVar(&mute, "mute", false, "disable the sonar chirp")
	flag.Parse()

	// Local development reads OTEL_* settings from a .env file; missing
	// is fine, the variables may be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		log.Printf("Note: OTEL_EXPORTER_OTLP_ENDPOINT not set, running without trace export")
	} else {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := echo.NewGame(echo.Config{Seed: seed, Mute: mute})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	ebiten.SetWindowTitle("Echo World")
	ebiten.SetWindowSize(echo.ScreenW*2, echo.ScreenH*2)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
