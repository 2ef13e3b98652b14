//go:build !sdl

package sdlapp

import "github.com/pkg/errors"

// Window is a placeholder used when the sdl build tag is absent.
type Window struct{}

// Open always fails without the sdl build tag.
func Open(string, int, int) (*Window, error) {
	return nil, errors.New("sdlapp.Open requires building with the 'sdl' tag")
}

// Close is a no-op placeholder.
func (w *Window) Close() {}
