package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Configuration struct {
	ModelPath            string   `json:"modelPath,omitempty"`
	STTEngine            string   `json:"sttEngine,omitempty"`
	STTLanguage          string   `json:"sttLanguage,omitempty"`
	InputDevice          string   `json:"inputDevice,omitempty"`
	OutputDevice         string   `json:"outputDevice,omitempty"`
	LogFile              string   `json:"logFile,omitempty"`
	DiagnosticsFile      string   `json:"diagnosticsFile,omitempty"`
	CatalogFile          string   `json:"catalogFile,omitempty"`
	ActivationWord       string   `json:"activationWord,omitempty"`
	ExitWords            []string `json:"exitWords,omitempty"`
	WholeWordCommands    bool     `json:"wholeWordCommands,omitempty"`
	StandbyListenTimeout Duration `json:"standbyListenTimeout,omitempty"`
	EngagedListenTimeout Duration `json:"engagedListenTimeout,omitempty"`
	MaxEmptyListens      int      `json:"maxEmptyListens,omitempty"`
	Voice                string   `json:"voice,omitempty"`
	SpeechRate           int      `json:"speechRate,omitempty"`
	EspeakBinary         string   `json:"espeakBinary,omitempty"`
	Chime                bool     `json:"chime,omitempty"`
}

func Default() Configuration {
	return Configuration{
		ModelPath:            "vosk-model-small-en-in-0.4",
		STTEngine:            "vosk",
		STTLanguage:          "en",
		LogFile:              "conversation_log.txt",
		DiagnosticsFile:      "echo-vui.log",
		ActivationWord:       "assistant",
		ExitWords:            []string{"bye", "exit", "quit"},
		StandbyListenTimeout: Duration(6 * time.Second),
		EngagedListenTimeout: Duration(7 * time.Second),
		MaxEmptyListens:      3,
		SpeechRate:           155,
		EspeakBinary:         "espeak-ng",
	}
}

func (c *Configuration) Validate() error {
	var errs []error

	if c.ModelPath == "" {
		errs = append(errs, errors.New("no speech recognition model path specified"))
	}

	switch strings.ToLower(c.STTEngine) {
	case "vosk", "whisper":
	default:
		errs = append(errs, fmt.Errorf("unsupported speech recognition engine %q", c.STTEngine))
	}

	if strings.TrimSpace(c.ActivationWord) == "" {
		errs = append(errs, errors.New("no activation word specified"))
	}

	if len(c.ExitWords) == 0 {
		errs = append(errs, errors.New("no exit words specified"))
	}

	if c.StandbyListenTimeout <= 0 || c.EngagedListenTimeout <= 0 {
		errs = append(errs, errors.New("listen timeouts must be positive"))
	}

	if c.MaxEmptyListens < 1 {
		errs = append(errs, errors.New("maxEmptyListens must be at least 1"))
	}

	if c.SpeechRate < 1 {
		errs = append(errs, errors.New("speechRate must be positive"))
	}

	err := errors.Join(errs...)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// Duration accepts a duration string such as "6s" or a number of seconds.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any

	err := json.Unmarshal(b, &v)
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case float64:
		*d = Duration(v * float64(time.Second))
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}

	return nil
}
