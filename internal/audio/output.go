package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"
)

// Output plays wave data on an output device.
type Output struct {
	Device string
	device *portaudio.DeviceInfo
}

func NewOutput(device string) *Output {
	return &Output{Device: device}
}

// Open resolves the output device so that a missing device fails early.
func (o *Output) Open() error {
	d, err := outputDevice(o.Device)
	if err != nil {
		return err
	}

	o.device = d

	return nil
}

// PlayWave plays the given RIFF wave data and returns once playback completed.
func (o *Output) PlayWave(ctx context.Context, wave []byte) error {
	if o.device == nil {
		if err := o.Open(); err != nil {
			return err
		}
	}

	wave, err := FixWaveSizes(wave)
	if err != nil {
		return err
	}

	duration, err := WaveDuration(wave)
	if err != nil {
		return err
	}

	return playAudio(ctx, bytes.NewReader(wave), duration, o.device)
}

// WaveDuration returns the playback duration of the given wave data.
// Placeholder chunk sizes left by streaming encoders are ignored.
func WaveDuration(wave []byte) (time.Duration, error) {
	wave, err := FixWaveSizes(wave)
	if err != nil {
		return 0, err
	}

	decoder := wav.NewDecoder(bytes.NewReader(wave))
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return 0, fmt.Errorf("read wave file headers: %w", err)
	}

	d, err := decoder.Duration()
	if err != nil {
		return 0, fmt.Errorf("get audio duration from wave headers: %w", err)
	}

	return d, nil
}

// playAudio opens an audio output stream and plays the given audio data.
func playAudio(ctx context.Context, wavFile io.ReadSeeker, audioDuration time.Duration, device *portaudio.DeviceInfo) error {
	decoder := wav.NewDecoder(wavFile)
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return fmt.Errorf("read wave file headers: %w", err)
	}

	if decoder.SampleBitDepth() != 16 {
		return fmt.Errorf("wave data with unsupported bit depth of %d provided, expected 16", decoder.SampleBitDepth())
	}

	if decoder.NumChans != 1 {
		return fmt.Errorf("wave data with %d channels provided, expected mono", decoder.NumChans)
	}

	inputBufferSize := 512 * 9
	buffer := audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  int(decoder.SampleRate),
			NumChannels: int(decoder.NumChans),
		},
		SourceBitDepth: int(decoder.SampleBitDepth()),
		Data:           make([]int, inputBufferSize),
	}
	out := make([]int16, inputBufferSize)

	ratio := float64(decoder.SampleRate) / device.DefaultSampleRate
	resampledOut := make([]int16, int(float64(inputBufferSize)/ratio))
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: 1,
			Latency:  device.DefaultLowOutputLatency,
		},
		SampleRate:      device.DefaultSampleRate,
		FramesPerBuffer: len(resampledOut),
	}, &resampledOut)
	if err != nil {
		return fmt.Errorf("open audio output stream: %w", err)
	}
	defer stream.Close()

	err = stream.Start()
	if err != nil {
		return fmt.Errorf("start audio output stream: %w", err)
	}
	defer stream.Stop()

	startTime := time.Now()

	for {
		n, err := decoder.PCMBuffer(&buffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read chunk from audio stream: %w", err)
		}
		if n == 0 {
			break // EOF
		}
		for i := 0; i < n; i++ {
			out[i] = int16(buffer.Data[i])
		}
		for i := n; i < inputBufferSize; i++ { // zero-pad the buffer after short chunk
			out[i] = 0
		}
		copy(resampledOut, resampleInt16(out, int(decoder.SampleRate), int(device.DefaultSampleRate)))
		err = stream.Write()
		if err != nil {
			// Occasional underflows do not impact the playback noticeably.
			slog.Debug("play audio: write chunk", "err", err)
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}

	// Wait for the audio to complete playing
	select {
	case <-time.After(audioDuration - time.Since(startTime)):
	case <-ctx.Done():
	}

	return nil
}
