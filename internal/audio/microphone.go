package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 16000
	Channels   = 1
	// ChunkFrames is the number of frames returned by a single Read call.
	ChunkFrames = 4096
)

// Microphone captures mono 16-bit PCM from an input device.
// The stream is opened lazily and can be reopened after Close.
type Microphone struct {
	Device     string
	SampleRate int
	Channels   int
	Frames     int
	stream     *portaudio.Stream
	buffer     []int16
	mutex      sync.Mutex
}

func NewMicrophone(device string) *Microphone {
	return &Microphone{
		Device:     device,
		SampleRate: SampleRate,
		Channels:   Channels,
		Frames:     ChunkFrames,
	}
}

// Active returns true while the capture stream is open.
func (m *Microphone) Active() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.stream != nil
}

// Open opens and starts the capture stream unless it is already active.
func (m *Microphone) Open() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.stream != nil {
		return nil
	}

	device, err := inputDevice(m.Device)
	if err != nil {
		return err
	}

	buffer := make([]int16, m.Frames*m.Channels)
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: m.Channels,
			Latency:  device.DefaultLowInputLatency,
		},
		SampleRate:      float64(m.SampleRate),
		FramesPerBuffer: m.Frames,
	}, &buffer)
	if err != nil {
		return fmt.Errorf("opening audio input stream: %w", err)
	}

	err = stream.Start()
	if err != nil {
		_ = stream.Close()
		return fmt.Errorf("starting audio input stream: %w", err)
	}

	m.stream = stream
	m.buffer = buffer

	return nil
}

// Read blocks until the next chunk of samples has been captured.
// Overflows are tolerated: the samples that are available are returned.
func (m *Microphone) Read() ([]int16, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.stream == nil {
		return nil, errors.New("audio input stream is not open")
	}

	if err := m.stream.Read(); err != nil {
		if !errors.Is(err, portaudio.InputOverflowed) {
			return nil, fmt.Errorf("read audio input stream: %w", err)
		}

		slog.Debug("audio input overflowed - dropped samples")
	}

	return append([]int16(nil), m.buffer...), nil
}

// Close stops and closes the capture stream.
func (m *Microphone) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.stream == nil {
		return nil
	}

	stream := m.stream
	m.stream = nil
	m.buffer = nil

	if err := stream.Stop(); err != nil {
		slog.Warn("failed to stop input audio stream", "err", err)
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("close audio input stream: %w", err)
	}

	return nil
}
