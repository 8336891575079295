package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		mode    = flag.String("mode", "network", "background mode (network, dots, waves)")
		dark    = flag.Bool("dark", false, "use the dark theme palette")
		attract = flag.Bool("attract", false, "wander the pointer on a noise path until the mouse moves")
		debug   = flag.Bool("debug", false, "show the FPS/status overlay")
		width   = flag.Int("width", 1280, "window width")
		height  = flag.Int("height", 720, "window height")
	)
	flag.Parse()

	bg, err := NewBackground(Mode(*mode), *width, *height, *dark)
	if err != nil {
		log.Fatal(err)
	}
	bg.debug = *debug
	if *attract {
		bg.attract = newAttractDriver(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particle Background")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(bg); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
