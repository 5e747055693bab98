package main

import (
	"flag"
	"log"

	"github.com/gonewx/arena/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	seed := flag.Int64("seed", 0, "spawn sampling seed (0 = time based)")
	dataDir := flag.String("data", "data", "config directory")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Seed:    *seed,
		DataDir: *dataDir,
	})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	w, h := a.ScreenSize()
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("Arena")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}

	a.SaveProgress()
}
