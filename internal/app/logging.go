package app

import (
	"log"

	"life-sim/internal/session"
)

// LogModeChange returns a session mode hook that logs each transition.
func LogModeChange(s *session.Session) func(from, to session.Mode) {
	return func(from, to session.Mode) {
		log.Printf("mode %s -> %s (speed %d, generation %d)", from, to, s.Speed(), s.Generation())
	}
}
