package session

import "life-sim/internal/core"

// DefaultMaxPerTick caps catch-up iterations in one frame callback.
const DefaultMaxPerTick = 8

// Driver adapts a Session to frontends that call back once per frame at their
// own rate. Input is queued on every frame and only drained when the pacer
// says the next iteration is due at the session's speed.
type Driver struct {
	sess    *Session
	pacer   *core.Pacer
	pending []Command

	// MaxPerTick bounds how many iterations one Tick may run.
	MaxPerTick int
}

// NewDriver returns a Driver pacing s with p. p is re-rated to the session
// speed after every iteration.
func NewDriver(s *Session, p *core.Pacer) *Driver {
	p.SetRate(s.Speed())
	return &Driver{sess: s, pacer: p, MaxPerTick: DefaultMaxPerTick}
}

// Queue records commands for the next due iteration.
func (d *Driver) Queue(cmds ...Command) {
	d.pending = append(d.pending, cmds...)
}

// Pending returns the number of queued commands.
func (d *Driver) Pending() int { return len(d.pending) }

// Tick runs every iteration that is due, up to MaxPerTick. It reports the
// number of iterations run and false once the session has terminated.
func (d *Driver) Tick() (int, bool) {
	ran := 0
	for ran < d.MaxPerTick && d.pacer.Due() {
		cmds := d.pending
		d.pending = nil
		ran++
		if !d.sess.Iterate(cmds) {
			return ran, false
		}
		d.pacer.SetRate(d.sess.Speed())
	}
	return ran, true
}
