package stt

import (
	"encoding/json"
	"fmt"

	vosk "github.com/alphacep/vosk-api/go"

	"github.com/mgoltzsche/echo-vui/internal/audio"
)

// VoskModel is an offline Kaldi model loaded by vosk.
type VoskModel struct {
	model *vosk.VoskModel
}

func NewVoskModel(path string) (*VoskModel, error) {
	if err := checkModelPath(path); err != nil {
		return nil, err
	}

	vosk.SetLogLevel(-1)

	m, err := vosk.NewModel(path)
	if err != nil {
		return nil, fmt.Errorf("load vosk model at %s: %w", path, err)
	}

	return &VoskModel{model: m}, nil
}

func (m *VoskModel) NewRecognizer(sampleRate int) (Recognizer, error) {
	r, err := vosk.NewRecognizer(m.model, float64(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("create vosk recognizer: %w", err)
	}

	return &voskRecognizer{recognizer: r}, nil
}

func (m *VoskModel) Close() error {
	m.model.Free()
	return nil
}

type voskRecognizer struct {
	recognizer *vosk.VoskRecognizer
	text       string
}

func (r *voskRecognizer) AcceptWaveform(samples []int16) (bool, error) {
	switch r.recognizer.AcceptWaveform(audio.Int16ToBytes(samples)) {
	case 0:
		return false, nil
	case 1:
		text, err := parseVoskResult(r.recognizer.Result())
		if err != nil {
			return true, err
		}

		r.text = text

		return true, nil
	default:
		return false, fmt.Errorf("vosk failed to process the waveform")
	}
}

func (r *voskRecognizer) Text() string {
	return r.text
}

func (r *voskRecognizer) Close() {
	r.recognizer.Free()
}

func parseVoskResult(result string) (string, error) {
	var res struct {
		Text string `json:"text"`
	}

	if err := json.Unmarshal([]byte(result), &res); err != nil {
		return "", fmt.Errorf("parse vosk result: %w", err)
	}

	return normalizeText(res.Text), nil
}
