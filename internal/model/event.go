package model

import (
	"fmt"
	"time"
)

type EventKind int

const (
	StatusChanged EventKind = iota
	QueryHeard
	ResponseSpoken
)

func (k EventKind) String() string {
	switch k {
	case StatusChanged:
		return "STATUS"
	case QueryHeard:
		return "USER"
	case ResponseSpoken:
		return "ASSISTANT"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is emitted by the assistant for the presentation layer.
type Event struct {
	Kind EventKind
	Text string
	// Busy marks status events emitted while the assistant waits for speech.
	Busy bool
	Time time.Time
}

// Tag returns the transcript tag, e.g. "[USER]".
func (e Event) Tag() string {
	return "[" + e.Kind.String() + "]"
}

func (e Event) String() string {
	return e.Tag() + " " + e.Text
}
