package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/landing-fx/internal/config"
	"github.com/iburimskiy/landing-fx/internal/game"
)

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the page settings file")
	trackPath := flag.String("track", "", "audio file to load at start (wav, mp3, flac)")
	debug := flag.Bool("debug", false, "show frame stats")
	flag.Parse()

	logger := log.New(os.Stderr, "[landing-fx] ", log.LstdFlags)

	settings, err := config.Load(*configPath)
	var watcher *config.Watcher
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("no settings at %s, using defaults", *configPath)
	case err != nil:
		logger.Fatal(err)
	default:
		watcher, err = config.Watch(*configPath)
		if err != nil {
			logger.Printf("settings reload disabled: %v", err)
		}
	}

	track := *trackPath
	if track == "" {
		track = settings.Track
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(settings.Title + " - Space: Play/Pause, Ctrl+O: Open track, Esc: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(game.Options{
		Settings:  settings,
		TrackPath: track,
		Watcher:   watcher,
		Logger:    logger,
		Debug:     *debug,
	})

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		logger.Printf("close: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		logger.Fatal(runErr)
	}
}
