// Package session holds the interactive state of one run: the current
// generation, the speed and the pause flag. It is driven by a single
// goroutine and never locks.
package session

import (
	"context"
	"time"

	"life-sim/internal/core"
	"life-sim/internal/life"
)

// Config controls how a Session is created.
type Config struct {
	Width   int
	Height  int
	Speed   int
	Seed    int64
	Workers int
}

// DefaultConfig returns the standard world and speed.
func DefaultConfig() Config {
	return Config{
		Width:   core.Width,
		Height:  core.Height,
		Speed:   core.DefaultSpeed,
		Workers: 1,
	}
}

// Session owns the grid and loop-level state.
type Session struct {
	cfg        Config
	rng        *core.RNG
	grid       *core.Grid
	speed      int
	paused     bool
	done       bool
	generation uint64
	onMode     func(from, to Mode)
}

// New creates a running session seeded with a random grid.
func New(cfg Config) *Session {
	if cfg.Speed < 1 {
		cfg.Speed = 1
	}
	s := &Session{
		cfg:   cfg,
		rng:   core.NewRNG(cfg.Seed),
		speed: cfg.Speed,
	}
	s.reseed()
	return s
}

// Grid returns the current generation. Callers must not modify it.
func (s *Session) Grid() *core.Grid { return s.grid }

// Speed returns the current rate in generations per second.
func (s *Session) Speed() int { return s.speed }

// Paused reports whether stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Generation counts steps since startup or the last reseed.
func (s *Session) Generation() uint64 { return s.generation }

// Mode reports the current loop mode.
func (s *Session) Mode() Mode {
	switch {
	case s.done:
		return Terminated
	case s.paused:
		return Paused
	}
	return Running
}

// FrameDelay is the pause between iterations at the current speed.
func (s *Session) FrameDelay() time.Duration {
	return time.Second / time.Duration(s.speed)
}

// OnModeChange registers fn to be called whenever Apply moves the session
// between Running, Paused and Terminated.
func (s *Session) OnModeChange(fn func(from, to Mode)) { s.onMode = fn }

// Apply performs a single command. Commands after Quit are ignored.
func (s *Session) Apply(cmd Command) {
	if s.done {
		return
	}
	from := s.Mode()
	defer func() {
		if to := s.Mode(); to != from && s.onMode != nil {
			s.onMode(from, to)
		}
	}()
	switch cmd {
	case Quit:
		s.done = true
	case Reseed:
		s.reseed()
	case Pause:
		s.paused = true
	case Resume:
		s.paused = false
	case SpeedUp:
		s.speed++
	case SpeedDown:
		s.speed = max(1, s.speed-1)
	}
}

// Iterate runs one loop iteration without rendering: every command is applied
// in order, then the grid advances one generation unless paused. It reports
// false once the session has terminated.
func (s *Session) Iterate(cmds []Command) bool {
	for _, cmd := range cmds {
		s.Apply(cmd)
	}
	if s.done {
		return false
	}
	if !s.paused {
		s.advance()
	}
	return true
}

func (s *Session) advance() {
	next, err := life.StepParallel(context.Background(), s.grid, s.cfg.Workers)
	if err != nil {
		// Only cancellation can fail, and this context is never cancelled.
		next = life.Step(s.grid)
	}
	s.grid = next
	s.generation++
}

func (s *Session) reseed() {
	s.grid = life.Randomize(s.rng.Source(), s.cfg.Width, s.cfg.Height)
	s.generation = 0
}
