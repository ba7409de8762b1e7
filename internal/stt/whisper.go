//go:build whisper

package stt

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/mgoltzsche/echo-vui/internal/audio"
)

// WhisperModel is a ggml whisper model loaded by whisper.cpp.
type WhisperModel struct {
	model    whisper.Model
	language string
}

func NewWhisperModel(path, language string) (*WhisperModel, error) {
	if err := checkModelPath(path); err != nil {
		return nil, err
	}

	m, err := whisper.New(path)
	if err != nil {
		return nil, fmt.Errorf("load whisper model at %s: %w", path, err)
	}

	if language == "" {
		language = "en"
	}

	return &WhisperModel{model: m, language: language}, nil
}

func (m *WhisperModel) NewRecognizer(sampleRate int) (Recognizer, error) {
	if sampleRate != whisper.SampleRate {
		return nil, fmt.Errorf("whisper requires a sample rate of %d but got %d", whisper.SampleRate, sampleRate)
	}

	return &whisperRecognizer{
		model:      m,
		endpointer: newEndpointer(sampleRate),
	}, nil
}

func (m *WhisperModel) Close() error {
	return m.model.Close()
}

type whisperRecognizer struct {
	model      *WhisperModel
	endpointer *endpointer
	text       string
}

func (r *whisperRecognizer) AcceptWaveform(samples []int16) (bool, error) {
	utterance, done := r.endpointer.Add(audio.Int16ToFloat32(samples))
	if !done {
		return false, nil
	}

	text, err := r.model.transcribe(utterance)
	if err != nil {
		return true, err
	}

	r.text = text

	return true, nil
}

func (r *whisperRecognizer) Text() string {
	return r.text
}

func (r *whisperRecognizer) Close() {
	r.endpointer.Reset()
}

func (m *WhisperModel) transcribe(pcm []float32) (string, error) {
	ctx, err := m.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("create whisper context: %w", err)
	}

	err = ctx.SetLanguage(m.language)
	if err != nil {
		return "", fmt.Errorf("set whisper language: %w", err)
	}

	ctx.SetThreads(uint(runtime.NumCPU()))

	err = ctx.Process(pcm, nil, nil, nil)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}

	var text strings.Builder

	for {
		segment, err := ctx.NextSegment()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", fmt.Errorf("read transcription: %w", err)
		}

		text.WriteString(segment.Text)
		text.WriteString(" ")
	}

	return normalizeText(text.String()), nil
}
