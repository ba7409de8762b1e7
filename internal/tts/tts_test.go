package tts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSynthesizer struct {
	texts []string
	err   error
}

func (s *fakeSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.texts = append(s.texts, text)
	return []byte("wave:" + text), s.err
}

type fakePlayer struct {
	played []string
}

func (p *fakePlayer) PlayWave(ctx context.Context, wave []byte) error {
	p.played = append(p.played, string(wave))
	return nil
}

func TestSpeak(t *testing.T) {
	synth := &fakeSynthesizer{}
	player := &fakePlayer{}
	testee := &Speaker{Synthesizer: synth, Player: player}

	err := testee.Speak(context.Background(), " Hello there ")
	require.NoError(t, err)
	err = testee.Speak(context.Background(), "  ")
	require.NoError(t, err)

	require.Equal(t, []string{"Hello there"}, synth.texts, "synthesized")
	require.Equal(t, []string{"wave:Hello there"}, player.played, "played")
}

func TestSpeakSynthesisError(t *testing.T) {
	player := &fakePlayer{}
	testee := &Speaker{Synthesizer: &fakeSynthesizer{err: errors.New("no voice")}, Player: player}

	err := testee.Speak(context.Background(), "hi")
	require.Error(t, err)
	require.Empty(t, player.played)
}

func TestChime(t *testing.T) {
	player := &fakePlayer{}
	testee := &Speaker{Player: player}

	require.NoError(t, testee.Chime(context.Background()))
	require.Empty(t, player.played, "no chime configured")

	testee.ChimeWave = []byte("ding")
	require.NoError(t, testee.Chime(context.Background()))
	require.Equal(t, []string{"ding"}, player.played)
}

func TestEspeakArgs(t *testing.T) {
	for _, tc := range []struct {
		name     string
		testee   Espeak
		expected []string
	}{
		{
			name:     "defaults",
			expected: []string{"--stdout", "-s", "155", "--", "-hi"},
		},
		{
			name:     "voice and rate",
			testee:   Espeak{Voice: "en-us", Rate: 180},
			expected: []string{"--stdout", "-s", "180", "-v", "en-us", "--", "-hi"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.testee.args("-hi"))
		})
	}
}

func TestEspeakSynthesize(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fake-espeak")
	script := "#!/bin/sh\nprintf 'RIFF%s' \"$*\"\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	testee := &Espeak{Binary: bin}

	wave, err := testee.Synthesize(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "RIFF--stdout -s 155 -- hello", string(wave))

	testee.Binary = filepath.Join(dir, "missing")
	_, err = testee.Synthesize(context.Background(), "hello")
	require.Error(t, err)
}

func TestSpeakSentenceBySentence(t *testing.T) {
	synth := &fakeSynthesizer{}
	testee := &Speaker{Synthesizer: synth, Player: &fakePlayer{}}

	err := testee.Speak(context.Background(), "SLAM stands for Simultaneous Localization and Mapping. It helps robots map an unknown environment.")
	require.NoError(t, err)
	require.Equal(t, []string{
		"SLAM stands for Simultaneous Localization and Mapping.",
		"It helps robots map an unknown environment.",
	}, synth.texts)
}

func TestSpeakCanceled(t *testing.T) {
	synth := &fakeSynthesizer{}
	testee := &Speaker{Synthesizer: synth, Player: &fakePlayer{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := testee.Speak(ctx, "One. Two.")
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, synth.texts)
}

func TestSplitIntoSentences(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace", "  ", nil},
		{"word", "word", []string{"word"}},
		{"domain", "visit example.org", []string{"visit example.org"}},
		{"sentences", "A sentence. a question? Another sentence!", []string{"A sentence.", "a question?", "Another sentence!"}},
		{"repeated punctuation marks", "Wait... what?? Wow!!", []string{"Wait...", "what??", "Wow!!"}},
		{"missing final punctuation mark", "I'm listening. How can I help you", []string{"I'm listening.", "How can I help you"}},
		{"line breaks", "  La la la!\n\nI try my best", []string{"La la la!", "I try my best"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, SplitIntoSentences(tc.input))
		})
	}
}
