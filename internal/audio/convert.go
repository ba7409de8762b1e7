package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"
)

// EncodeWave encodes the buffer as a 16-bit RIFF wave file.
func EncodeWave(buffer audio.Buffer) ([]byte, error) {
	wavFile := &writerseeker.WriterSeeker{}
	f := buffer.PCMFormat()
	encoder := wav.NewEncoder(wavFile, f.SampleRate, 16, f.NumChannels, 1)

	if err := encoder.Write(buffer.AsIntBuffer()); err != nil {
		return nil, fmt.Errorf("encoder write buffer: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoder close: %w", err)
	}

	riffWav, err := io.ReadAll(wavFile.Reader())
	if err != nil {
		return nil, fmt.Errorf("reading wav into memory: %w", err)
	}

	return riffWav, nil
}

// FixWaveSizes returns a copy of the wave data with the RIFF and data chunk
// sizes set to the bytes actually present.
// Encoders writing to a pipe cannot seek back and leave placeholder sizes.
func FixWaveSizes(wave []byte) ([]byte, error) {
	if len(wave) < 12 || string(wave[0:4]) != "RIFF" || string(wave[8:12]) != "WAVE" {
		return nil, errors.New("not a RIFF wave file")
	}

	fixed := append([]byte(nil), wave...)
	binary.LittleEndian.PutUint32(fixed[4:8], uint32(len(fixed)-8))

	for pos := 12; pos+8 <= len(fixed); {
		size := int(binary.LittleEndian.Uint32(fixed[pos+4 : pos+8]))
		if string(fixed[pos:pos+4]) == "data" {
			binary.LittleEndian.PutUint32(fixed[pos+4:pos+8], uint32(len(fixed)-pos-8))
			return fixed, nil
		}
		pos += 8 + size + size%2 // chunks are word-aligned
	}

	return nil, errors.New("wave data chunk not found")
}

// Int16ToBytes converts samples to little-endian PCM bytes.
func Int16ToBytes(samples []int16) []byte {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}

// Int16ToFloat32 converts samples to floats within [-1, 1].
func Int16ToFloat32(samples []int16) []float32 {
	f := make([]float32, len(samples))
	for i, s := range samples {
		f[i] = float32(s) / 32768
	}
	return f
}

func int16ToInt(input []int16) []int {
	output := make([]int, len(input))
	for i, value := range input {
		output[i] = int(value)
	}
	return output
}

// resampleInt16 converts mono samples between sample rates using linear interpolation.
func resampleInt16(input []int16, fromRate, toRate int) []int16 {
	if fromRate == toRate || len(input) == 0 {
		return append([]int16(nil), input...)
	}

	ratio := float64(fromRate) / float64(toRate)
	output := make([]int16, int(float64(len(input))/ratio))

	for i := range output {
		pos := float64(i) * ratio
		j := int(pos)
		if j >= len(input)-1 {
			output[i] = input[len(input)-1]
			continue
		}
		frac := pos - float64(j)
		output[i] = int16(float64(input[j])*(1-frac) + float64(input[j+1])*frac)
	}

	return output
}
