package session

// Command is a discrete user request decoded from the input surface.
type Command int

const (
	// None marks input the loop does not recognise; it is ignored.
	None Command = iota
	Quit
	Reseed
	Pause
	Resume
	SpeedUp
	SpeedDown
)

var commandNames = [...]string{
	None:      "none",
	Quit:      "quit",
	Reseed:    "reseed",
	Pause:     "pause",
	Resume:    "resume",
	SpeedUp:   "speed-up",
	SpeedDown: "speed-down",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Mode is the observable state of the loop.
type Mode int

const (
	Running Mode = iota
	Paused
	Terminated
)

func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}
