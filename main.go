package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ripple-button/internal/audio"
	"github.com/iburimskiy/ripple-button/internal/config"
	"github.com/iburimskiy/ripple-button/internal/game"
)

var (
	rippleCount = flag.Int("rings", config.RippleCount, "Number of ripple rings")
	duration    = flag.Duration("duration", config.RippleDuration, "Time for one ring to expand")
	autoStart   = flag.Bool("autostart", true, "Start the ripples as soon as the window opens")
	soundPath   = flag.String("sound", "", "Click sound (wav, mp3 or flac)")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ripple: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *rippleCount < 0 || *rippleCount > config.MaxRippleCount {
		log.Fatalf("rings must be between 0 and %d", config.MaxRippleCount)
	}
	if *duration <= 0 {
		log.Fatal("duration must be positive")
	}

	player := audio.NewPlayer(audio.DefaultSampleRate)
	if err := player.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}

	g := game.New(game.Options{
		RippleCount: *rippleCount,
		Duration:    *duration,
		AutoStart:   *autoStart,
	}, player)

	if *soundPath != "" {
		if err := g.LoadSound(*soundPath); err != nil {
			log.Printf("keeping default click: %v", err)
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Ripple Button - Click the button, Space: Start/Stop, Up/Down: Rings, Esc/Q: Quit")

	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
