package config

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	return file
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, "vosk-model-small-en-in-0.4", cfg.ModelPath)
	require.Equal(t, "conversation_log.txt", cfg.LogFile)
	require.Equal(t, "assistant", cfg.ActivationWord)
	require.Equal(t, []string{"bye", "exit", "quit"}, cfg.ExitWords)
	require.Equal(t, 6*time.Second, cfg.StandbyListenTimeout.Duration())
	require.Equal(t, 7*time.Second, cfg.EngagedListenTimeout.Duration())
	require.Equal(t, 3, cfg.MaxEmptyListens)
	require.Equal(t, 155, cfg.SpeechRate)
}

func TestFromFile(t *testing.T) {
	file := writeFile(t, `
modelPath: /models/vosk-en
activationWord: computer
exitWords: [stop, halt]
standbyListenTimeout: 4s
engagedListenTimeout: 10
chime: true
`)

	cfg, err := FromFile(file)
	require.NoError(t, err)

	expected := Default()
	expected.ModelPath = "/models/vosk-en"
	expected.ActivationWord = "computer"
	expected.ExitWords = []string{"stop", "halt"}
	expected.StandbyListenTimeout = Duration(4 * time.Second)
	expected.EngagedListenTimeout = Duration(10 * time.Second)
	expected.Chime = true
	require.Equal(t, expected, cfg)
	require.NoError(t, cfg.Validate())
}

func TestFromFileErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
	}{
		{"unknown field", "wakeWord: computer\n"},
		{"invalid duration", "standbyListenTimeout: soon\n"},
		{"invalid yaml", "modelPath: [\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromFile(writeFile(t, tc.content))
			require.Error(t, err)
		})
	}

	_, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "missing file")
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		modify func(*Configuration)
	}{
		{"no model", func(c *Configuration) { c.ModelPath = "" }},
		{"unsupported engine", func(c *Configuration) { c.STTEngine = "sphinx" }},
		{"no activation word", func(c *Configuration) { c.ActivationWord = " " }},
		{"no exit words", func(c *Configuration) { c.ExitWords = nil }},
		{"zero timeout", func(c *Configuration) { c.EngagedListenTimeout = 0 }},
		{"no empty listens", func(c *Configuration) { c.MaxEmptyListens = 0 }},
		{"zero speech rate", func(c *Configuration) { c.SpeechRate = 0 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestDurationJSON(t *testing.T) {
	b, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, `"1.5s"`, string(b))

	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`2.5`), &d))
	require.Equal(t, 2500*time.Millisecond, d.Duration())
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestFlags(t *testing.T) {
	cfg := Default()
	f := &Flag{Config: &cfg}

	require.NoError(t, f.Set(writeFile(t, "activationWord: jarvis\n")))
	require.True(t, f.IsSet)
	require.Equal(t, "jarvis", cfg.ActivationWord)

	words := ListFlag{Values: &cfg.ExitWords}
	require.NoError(t, words.Set(" stop, ,see you "))
	require.Equal(t, []string{"stop", "see you"}, cfg.ExitWords)
	require.Equal(t, "stop,see you", words.String())
}

func TestAddFlags(t *testing.T) {
	cfg := Default()
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	configFlag := AddFlags(flags, &cfg)
	file := writeFile(t, "modelPath: /models/small\nspeechRate: 120\n")

	err := flags.Parse([]string{
		"-config", file,
		"-activation-word", "computer",
		"-exit-words", "stop,halt",
		"-engaged-timeout", "3s",
		"-whole-word-commands",
	})
	require.NoError(t, err)

	require.True(t, configFlag.IsSet, "config file loaded")
	require.Equal(t, "/models/small", cfg.ModelPath)
	require.Equal(t, 120, cfg.SpeechRate)
	require.Equal(t, "computer", cfg.ActivationWord)
	require.Equal(t, []string{"stop", "halt"}, cfg.ExitWords)
	require.Equal(t, 3*time.Second, cfg.EngagedListenTimeout.Duration())
	require.Equal(t, 6*time.Second, cfg.StandbyListenTimeout.Duration())
	require.True(t, cfg.WholeWordCommands)
}
