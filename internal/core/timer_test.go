package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPacerFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(10)
	p.now = clock.now

	if !p.Due() {
		t.Fatal("first call should fire immediately")
	}
	if p.Due() {
		t.Fatal("fired twice without time passing")
	}
	clock.advance(50 * time.Millisecond)
	if p.Due() {
		t.Fatal("fired before interval elapsed")
	}
	clock.advance(50 * time.Millisecond)
	if !p.Due() {
		t.Fatal("did not fire after a full interval")
	}
}

func TestPacerSetRate(t *testing.T) {
	p := NewPacer(4)
	if p.Interval() != 250*time.Millisecond {
		t.Fatalf("interval %v, expected 250ms", p.Interval())
	}
	p.SetRate(0)
	if p.Interval() != time.Second {
		t.Fatalf("rate 0 gave interval %v, expected 1s", p.Interval())
	}
}

func TestPacerBoundsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(10)
	p.now = clock.now
	p.Due()

	clock.advance(time.Minute)
	fired := 0
	for p.Due() {
		fired++
		if fired > 100 {
			break
		}
	}
	if fired != maxBacklog {
		t.Fatalf("replayed %d intervals after a stall, expected %d", fired, maxBacklog)
	}
}

func TestPacerSameRateKeepsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(10)
	p.SetClock(clock.now)
	p.Due()

	clock.advance(300 * time.Millisecond)
	fired := 0
	for p.Due() {
		fired++
		p.SetRate(10)
	}
	if fired != 3 {
		t.Fatalf("fired %d times, expected 3", fired)
	}
}
