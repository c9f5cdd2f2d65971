package main

import (
	"errors"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/neural-background/internal/config"
	"github.com/iburimskiy/neural-background/internal/field"
	"github.com/iburimskiy/neural-background/internal/game"
)

func main() {
	width := flag.Int("width", config.WindowWidth, "Initial window width")
	height := flag.Int("height", config.WindowHeight, "Initial window height")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	debug := flag.Bool("debug", false, "Show FPS overlay and debug logs")
	logJSON := flag.Bool("log-json", false, "Log as JSON instead of text")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	if *logJSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(game.Options{
		Width:  *width,
		Height: *height,
		Debug:  *debug,
		Logger: logger,
	})
	f := field.New(g.Surface(), g, g.Events(), g.Frames(),
		field.WithRand(rand.New(rand.NewPCG(rngSeed, rngSeed^0x9e3779b97f4a7c15))),
		field.WithLogger(logger),
	)
	g.Attach(f)

	logger.Info("starting particle field",
		"width", *width,
		"height", *height,
		"seed", rngSeed,
		"particles", len(f.Particles()),
	)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(logger, err)
	}
}

// fail reports a fatal startup or runtime error and exits.
func fail(logger *slog.Logger, err error) {
	logger.Error("particle field failed", "error", err)
	_ = zenity.Error(err.Error(),
		zenity.Title("Neural Background"),
		zenity.ErrorIcon,
	)
	os.Exit(1)
}
