package stt

import (
	"math"
	"time"
)

const (
	silenceThresholdRMS = 0.015
	silenceDuration     = 600 * time.Millisecond
	maxUtterance        = 10 * time.Second
)

// endpointer collects samples of an utterance and detects its end by
// looking for a period of silence after speech was heard.
type endpointer struct {
	SampleRate int
	Threshold  float64
	Silence    time.Duration
	MaxLength  time.Duration
	speaking   bool
	silent     int
	samples    []float32
}

func newEndpointer(sampleRate int) *endpointer {
	return &endpointer{
		SampleRate: sampleRate,
		Threshold:  silenceThresholdRMS,
		Silence:    silenceDuration,
		MaxLength:  maxUtterance,
	}
}

// Add returns the complete utterance once the speaker paused long enough
// or the maximum utterance length was exceeded.
func (e *endpointer) Add(frame []float32) ([]float32, bool) {
	if frameRMS(frame) > e.Threshold {
		e.speaking = true
		e.silent = 0
		e.samples = append(e.samples, frame...)
	} else if e.speaking {
		e.silent += len(frame)
		e.samples = append(e.samples, frame...)
	}

	if !e.speaking {
		return nil, false
	}

	if e.silent < e.samplesOf(e.Silence) && len(e.samples) < e.samplesOf(e.MaxLength) {
		return nil, false
	}

	utterance := e.samples
	e.Reset()

	return utterance, true
}

func (e *endpointer) Reset() {
	e.speaking = false
	e.silent = 0
	e.samples = nil
}

func (e *endpointer) samplesOf(d time.Duration) int {
	return int(int64(e.SampleRate) * int64(d) / int64(time.Second))
}

func frameRMS(f []float32) float64 {
	if len(f) == 0 {
		return 0
	}

	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}
