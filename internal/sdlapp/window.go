//go:build sdl

// Package sdlapp is an SDL2 frontend: a window that is both the render
// canvas and the input source for session.Run.
package sdlapp

import (
	"image/color"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"life-sim/internal/session"
)

// Window owns the SDL window and renderer for the lifetime of the loop.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	title    string
	status   string
}

// Open initialises SDL video and creates a centred window with a vsync
// renderer of w*h pixels. Failures are not retried.
func Open(title string, w, h int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "init SDL video")
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "create window")
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "create renderer")
	}
	return &Window{window: window, renderer: renderer, title: title}, nil
}

// SetStatus appends status to the window title.
func (w *Window) SetStatus(status string) {
	if status == w.status {
		return
	}
	w.status = status
	w.window.SetTitle(w.title + "   |   " + status)
}

// Clear fills the whole window with c.
func (w *Window) Clear(c color.RGBA) error {
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return errors.Wrap(err, "set draw colour")
	}
	return errors.Wrap(w.renderer.Clear(), "clear")
}

// FillRect draws a filled rectangle.
func (w *Window) FillRect(x, y, width, height int, c color.RGBA) error {
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return errors.Wrap(err, "set draw colour")
	}
	rect := sdl.Rect{X: int32(x), Y: int32(y), W: int32(width), H: int32(height)}
	return w.renderer.FillRect(&rect)
}

// Present shows the composed frame.
func (w *Window) Present() error {
	w.renderer.Present()
	return nil
}

// Poll drains the SDL event queue.
func (w *Window) Poll() []session.Command {
	var cmds []session.Command
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			cmds = append(cmds, session.Quit)
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if cmd := keyCommand(e.Keysym.Sym); cmd != session.None {
				cmds = append(cmds, cmd)
			}
		}
	}
	return cmds
}

// Close releases the renderer, the window and SDL itself.
func (w *Window) Close() {
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

func keyCommand(k sdl.Keycode) session.Command {
	switch k {
	case sdl.K_ESCAPE:
		return session.Quit
	case sdl.K_SPACE:
		return session.Reseed
	case sdl.K_LEFT:
		return session.Pause
	case sdl.K_RIGHT:
		return session.Resume
	case sdl.K_UP:
		return session.SpeedUp
	case sdl.K_DOWN:
		return session.SpeedDown
	}
	return session.None
}
