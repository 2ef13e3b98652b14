package core

import "time"

// maxBacklog bounds how many missed intervals are replayed after a stall.
const maxBacklog = 4

// Pacer gates loop iterations to a steady rate. The frontend calls Due every
// frame; it reports true once per elapsed interval.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting rate iterations per second. The first
// call to Due always fires.
func NewPacer(rate int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the iteration rate. Rates below 1 are treated as 1. A real
// change drops any backlog beyond one interval.
func (p *Pacer) SetRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	step := time.Second / time.Duration(rate)
	if step == p.step {
		return
	}
	p.step = step
	if p.accumulator > p.step {
		p.accumulator = p.step
	}
}

// SetClock replaces the time source, mainly for tests.
func (p *Pacer) SetClock(now func() time.Time) {
	p.now = now
	p.last = time.Time{}
}

// Interval returns the current time between iterations.
func (p *Pacer) Interval() time.Duration { return p.step }

// Due reports whether an iteration should run now.
func (p *Pacer) Due() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if limit := maxBacklog * p.step; p.accumulator > limit {
		p.accumulator = limit
	}
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
