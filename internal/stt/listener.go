package stt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Source provides chunks of 16-bit mono PCM.
type Source interface {
	Open() error
	Active() bool
	Read() ([]int16, error)
	Close() error
}

// Listener transcribes a single utterance per Listen call.
// The audio source and the recognizer are opened on first use and kept
// open across calls until Close is called.
type Listener struct {
	Source     Source
	Model      Model
	SampleRate int
	recognizer Recognizer
	mutex      sync.Mutex
}

func NewListener(source Source, model Model, sampleRate int) *Listener {
	return &Listener{
		Source:     source,
		Model:      model,
		SampleRate: sampleRate,
	}
}

// Listen returns the lowercased, trimmed transcription of the first
// utterance completed within the timeout or an empty string if none was.
func (l *Listener) Listen(ctx context.Context, timeout time.Duration) (string, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	err := l.open()
	if err != nil {
		return "", err
	}

	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		samples, err := l.Source.Read()
		if err != nil {
			return "", fmt.Errorf("read audio input: %w", err)
		}

		final, err := l.recognizer.AcceptWaveform(samples)
		if err != nil {
			return "", fmt.Errorf("recognize speech: %w", err)
		}

		if final {
			return normalizeText(l.recognizer.Text()), nil
		}
	}

	return "", nil
}

func (l *Listener) open() error {
	if l.recognizer == nil {
		r, err := l.Model.NewRecognizer(l.SampleRate)
		if err != nil {
			return err
		}

		l.recognizer = r
	}

	if !l.Source.Active() {
		err := l.Source.Open()
		if err != nil {
			return fmt.Errorf("open audio input: %w", err)
		}
	}

	return nil
}

// Close stops the audio input and releases the recognizer.
// The model stays loaded, so that a later Listen call resumes listening.
// Releasing the model is up to its owner.
func (l *Listener) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var errs []error

	if l.Source.Active() {
		errs = append(errs, l.Source.Close())
	}

	if l.recognizer != nil {
		l.recognizer.Close()
		l.recognizer = nil
	}

	err := errors.Join(errs...)
	if err != nil {
		slog.Warn("failed to release speech input resources", "err", err)
	}

	return err
}
