//go:build sdl

package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"life-sim/internal/app"
	"life-sim/internal/core"
	"life-sim/internal/render"
	"life-sim/internal/sdlapp"
	"life-sim/internal/session"
	"life-sim/internal/ui"
)

func init() {
	// SDL must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	sess := session.New(cfg.Session())
	grid := sess.Grid()
	log.Printf("world %dx%d cells, speed %d gen/s, seed %d", grid.W, grid.H, sess.Speed(), cfg.Seed)

	win, err := sdlapp.Open(app.Title, grid.W*core.CellSize, grid.H*core.CellSize)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Close()

	sess.OnModeChange(app.LogModeChange(sess))
	var out session.Renderer = render.NewPainter(win)
	if cfg.HUD {
		out = &ui.StatusRenderer{Next: out, Sink: win, Session: sess}
	}

	if err := session.Run(sess, win, out, nil); err != nil {
		win.Close()
		log.Fatal(err)
	}
	log.Printf("quit after generation %d", sess.Generation())
}
