package assistant

import "fmt"

type State int

const (
	Standby State = iota
	Activating
	Engaged
	ShuttingDown
)

func (s State) String() string {
	switch s {
	case Standby:
		return "Standby"
	case Activating:
		return "Activating"
	case Engaged:
		return "Engaged"
	case ShuttingDown:
		return "ShuttingDown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session holds the mutable state of a running assistant.
type Session struct {
	// Active is true while the assistant answers queries.
	Active bool
	// Running becomes false once when the user said an exit word.
	Running bool
	// EmptyListens counts consecutive engaged listens without speech.
	EmptyListens int
}
