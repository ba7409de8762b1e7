package wakeword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	activation := New("assistant")
	exit := New("bye", "exit", "quit")

	for _, tc := range []struct {
		name     string
		detector *Detector
		input    string
		expected bool
	}{
		{"exact word", activation, "assistant", true},
		{"within sentence", activation, "hey assistant", true},
		{"case-insensitive", activation, "Hey Assistant!", true},
		{"within longer word", activation, "assistants unite", true},
		{"absent", activation, "hello there", false},
		{"empty", activation, "", false},
		{"any exit word", exit, "ok quit now", true},
		{"exit word within word", exit, "goodbye", true},
		{"exit word within unrelated word", exit, "the exits are there", true},
		{"no exit word", exit, "tell me a joke", false},
		{"whole word", activation.WholeWord(), "hey assistant", true},
		{"whole word at start", activation.WholeWord(), "assistant, hi", true},
		{"whole word rejects longer word", activation.WholeWord(), "assistants unite", false},
		{"whole word with many words", exit.WholeWord(), "ok, bye!", true},
		{"whole word rejects substring", exit.WholeWord(), "goodbye", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.detector.Detect(tc.input))
		})
	}
}

func TestNewIgnoresBlankWords(t *testing.T) {
	d := New(" Bye ", "", "  ")
	require.Equal(t, []string{"bye"}, d.Words())
	require.False(t, New().Detect("anything"))
	require.False(t, New().WholeWord().Detect("anything"))
}
