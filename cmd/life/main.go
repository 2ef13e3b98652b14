//go:build ebiten

package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"

	"life-sim/internal/app"
	"life-sim/internal/core"
	"life-sim/internal/render"
	"life-sim/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	sess := session.New(cfg.Session())
	grid := sess.Grid()
	log.Printf("world %dx%d cells, speed %d gen/s, seed %d", grid.W, grid.H, sess.Speed(), cfg.Seed)

	game := app.New(sess, cfg.HUD)

	ebiten.SetWindowTitle(app.Title)
	ebiten.SetWindowSize(grid.W*core.CellSize, grid.H*core.CellSize)
	ebiten.SetWindowIcon([]image.Image{render.Thumbnail(grid, render.DefaultPalette())})
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
