package soundgen

import (
	"fmt"
	"math"
	"time"

	"github.com/go-audio/audio"

	vuiaudio "github.com/mgoltzsche/echo-vui/internal/audio"
)

const (
	ChimeFrequency = 880
	ChimeDuration  = 150 * time.Millisecond
)

// Generator synthesizes notification sounds as wave data.
type Generator struct {
	SampleRate int
}

// Chime returns the sound played when the assistant is activated.
func (g *Generator) Chime() ([]byte, error) {
	return g.Tone(ChimeFrequency, ChimeDuration)
}

// Tone returns a sine tone with short fade in and out to avoid clicks.
func (g *Generator) Tone(frequency float64, duration time.Duration) ([]byte, error) {
	data := make([]int, int(math.Ceil(float64(duration)*float64(g.SampleRate)/float64(time.Second))))
	fade := len(data) / 10

	for i := range data {
		phase := frequency * float64(i) / float64(g.SampleRate)
		gain := 0.5

		if fade > 0 {
			if i < fade {
				gain *= float64(i) / float64(fade)
			} else if j := len(data) - 1 - i; j < fade {
				gain *= float64(j) / float64(fade)
			}
		}

		data[i] = int(math.Sin(2*math.Pi*phase) * 32767 * gain)
	}

	b, err := vuiaudio.EncodeWave(&audio.IntBuffer{
		Format:         &audio.Format{SampleRate: g.SampleRate, NumChannels: 1},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		return nil, fmt.Errorf("generate sound: %w", err)
	}

	return b, nil
}
