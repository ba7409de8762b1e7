package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventString(t *testing.T) {
	for _, tc := range []struct {
		event    Event
		expected string
	}{
		{Event{Kind: StatusChanged, Text: "Listening..."}, "[STATUS] Listening..."},
		{Event{Kind: QueryHeard, Text: "tell me a joke"}, "[USER] tell me a joke"},
		{Event{Kind: ResponseSpoken, Text: "Goodbye!"}, "[ASSISTANT] Goodbye!"},
	} {
		require.Equal(t, tc.expected, tc.event.String())
	}
}

func TestRecordLines(t *testing.T) {
	r := Record{
		Time:     time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC),
		Query:    "how are you",
		Response: "I'm fine.",
	}

	require.Equal(t, "[2024-03-09 07:05:01] USER: how are you\n[2024-03-09 07:05:01] ASSISTANT: I'm fine.\n", r.Lines())
}
