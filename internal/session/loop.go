package session

import (
	"time"

	"github.com/pkg/errors"

	"life-sim/internal/core"
)

// Input yields the commands received since the previous poll.
type Input interface {
	Poll() []Command
}

// Renderer draws and presents one generation.
type Renderer interface {
	Render(g *core.Grid) error
}

// Run drives s until Quit: poll, iterate, render, then sleep for the frame
// delay. Quit is only noticed at the start of an iteration. A render failure
// ends the loop.
func Run(s *Session, in Input, out Renderer, sleep func(time.Duration)) error {
	if sleep == nil {
		sleep = time.Sleep
	}
	for s.Iterate(in.Poll()) {
		if err := out.Render(s.Grid()); err != nil {
			return errors.Wrapf(err, "render generation %d", s.Generation())
		}
		sleep(s.FrameDelay())
	}
	return nil
}
