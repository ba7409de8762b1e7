package tts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Player interface {
	PlayWave(ctx context.Context, wave []byte) error
}

// Speaker speaks text synchronously, one utterance at a time.
type Speaker struct {
	Synthesizer Synthesizer
	Player      Player
	ChimeWave   []byte
	mutex       sync.Mutex
}

// Speak returns once the text has been spoken completely.
// Long text is spoken sentence by sentence, stopping early when ctx is canceled.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, sentence := range SplitIntoSentences(text) {
		if err := ctx.Err(); err != nil {
			return err
		}

		wave, err := s.Synthesizer.Synthesize(ctx, sentence)
		if err != nil {
			return fmt.Errorf("synthesize speech: %w", err)
		}

		slog.Debug(fmt.Sprintf("speaking %q", sentence))

		err = s.Player.PlayWave(ctx, wave)
		if err != nil {
			return fmt.Errorf("play speech: %w", err)
		}
	}

	return nil
}

// Chime plays the activation sound if one was configured.
func (s *Speaker) Chime(ctx context.Context) error {
	if len(s.ChimeWave) == 0 {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.Player.PlayWave(ctx, s.ChimeWave)
	if err != nil {
		return fmt.Errorf("play chime: %w", err)
	}

	return nil
}
