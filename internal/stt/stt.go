package stt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	EngineVosk    = "vosk"
	EngineWhisper = "whisper"
)

var ErrModelNotFound = errors.New("speech recognition model not found")

// Model is a loaded speech recognition model.
type Model interface {
	NewRecognizer(sampleRate int) (Recognizer, error)
	Close() error
}

// Recognizer decodes a continuous stream of 16-bit mono samples.
type Recognizer interface {
	// AcceptWaveform feeds samples and returns true once an utterance is complete.
	AcceptWaveform(samples []int16) (bool, error)
	// Text returns the text of the last completed utterance.
	Text() string
	Close()
}

type Options struct {
	Engine    string
	ModelPath string
	Language  string
}

// LoadModel loads the model of the configured engine.
func LoadModel(opts Options) (Model, error) {
	if err := checkModelPath(opts.ModelPath); err != nil {
		return nil, err
	}

	switch strings.ToLower(opts.Engine) {
	case "", EngineVosk:
		m, err := NewVoskModel(opts.ModelPath)
		if err != nil {
			return nil, err
		}
		return m, nil
	case EngineWhisper:
		m, err := NewWhisperModel(opts.ModelPath, opts.Language)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported speech recognition engine %q, supported engines are %s and %s", opts.Engine, EngineVosk, EngineWhisper)
	}
}

func checkModelPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: no model path configured", ErrModelNotFound)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w at %s", ErrModelNotFound, path)
		}

		return fmt.Errorf("check speech recognition model: %w", err)
	}

	return nil
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
