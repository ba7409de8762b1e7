package tts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	DefaultEspeakBinary = "espeak-ng"
	DefaultRate         = 155
)

// Espeak synthesizes speech by running the espeak-ng binary.
type Espeak struct {
	Binary string
	Voice  string
	Rate   int
}

// Synthesize returns the wave data espeak generated for the given text.
func (e *Espeak) Synthesize(ctx context.Context, text string) ([]byte, error) {
	bin := e.Binary
	if bin == "" {
		bin = DefaultEspeakBinary
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, bin, e.args(text)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("run %s: %w: %s", bin, err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", bin, err)
	}

	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%s did not produce any audio", bin)
	}

	return stdout.Bytes(), nil
}

func (e *Espeak) args(text string) []string {
	rate := e.Rate
	if rate <= 0 {
		rate = DefaultRate
	}

	args := []string{"--stdout", "-s", strconv.Itoa(rate)}
	if e.Voice != "" {
		args = append(args, "-v", e.Voice)
	}

	// Text starting with a dash must not be interpreted as an option.
	return append(args, "--", text)
}
