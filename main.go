package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/bouquet/internal/config"
	"github.com/iburimskiy/bouquet/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	color := flag.String("color", "", "starting bouquet color: hex, CSS name, rgb() or hsl()")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	audio := flag.String("audio", "", "audio file to play at startup (wav, mp3, flac)")
	visuals := flag.Bool("visuals", false, "start with the beat visuals on")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		s, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("bouquet: %v", err)
		}
		settings = s
	}
	if *color != "" {
		settings.Color = *color
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *audio != "" {
		settings.Audio = *audio
	}
	if *visuals {
		settings.Visuals = true
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Para " + settings.Recipient + " - drag to orbit, O: music, C: color, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	g := game.New(settings)
	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("bouquet: %v", err)
	}
}
