package ui

import (
	"fmt"

	"life-sim/internal/core"
	"life-sim/internal/session"
)

// StatusLine summarises the session for the overlay.
func StatusLine(generation uint64, population, speed int, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d  %d gen/s", generation, population, speed)
	if paused {
		s += "  PAUSED"
	}
	return s
}

// StatusSink shows a status line somewhere outside the grid, such as a
// window title.
type StatusSink interface {
	SetStatus(status string)
}

// StatusRenderer wraps a session renderer and publishes the status line after
// every successful frame.
type StatusRenderer struct {
	Next    session.Renderer
	Sink    StatusSink
	Session *session.Session
}

// Render draws g through Next, then updates the sink.
func (r *StatusRenderer) Render(g *core.Grid) error {
	if err := r.Next.Render(g); err != nil {
		return err
	}
	s := r.Session
	r.Sink.SetStatus(StatusLine(s.Generation(), g.Population(), s.Speed(), s.Paused()))
	return nil
}
