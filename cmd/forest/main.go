//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"

	"graph-forest/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(opts.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	setup, err := app.Build(opts)
	if err != nil {
		log.Fatal(err)
	}
	world := setup.World

	reported := false
	writeReports := func() {
		if reported {
			return
		}
		reported = true
		if err := app.WriteReports(context.Background(), opts, world); err != nil {
			slog.Error("writing reports", "err", err)
		}
	}
	game := app.New(setup, opts, writeReports)

	ebiten.SetWindowTitle("graph-forest - " + world.Name())
	ebiten.SetWindowSize(opts.Width+opts.HUDWidth, opts.Height)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	// Closing the window early still reports the ticks that did run.
	writeReports()
}
