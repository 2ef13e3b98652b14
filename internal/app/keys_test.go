//go:build ebiten

package app

import (
	"testing"

	"life-sim/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyCommands(t *testing.T) {
	want := map[ebiten.Key]session.Command{
		ebiten.KeyEscape:     session.Quit,
		ebiten.KeySpace:      session.Reseed,
		ebiten.KeyArrowLeft:  session.Pause,
		ebiten.KeyArrowRight: session.Resume,
		ebiten.KeyArrowUp:    session.SpeedUp,
		ebiten.KeyArrowDown:  session.SpeedDown,
	}
	if len(keyCommands) != len(want) {
		t.Fatalf("%d key bindings, expected %d", len(keyCommands), len(want))
	}
	for _, kc := range keyCommands {
		if cmd, ok := want[kc.key]; !ok || cmd != kc.cmd {
			t.Fatalf("key %v bound to %v, expected %v", kc.key, kc.cmd, cmd)
		}
	}
}
