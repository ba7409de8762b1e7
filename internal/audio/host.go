package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// Host holds the initialized portaudio library.
type Host struct {
	once sync.Once
	err  error
}

func Initialize() (*Host, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize audio: %w", err)
	}

	return &Host{}, nil
}

// Close releases the audio devices. It may be called multiple times.
func (h *Host) Close() error {
	h.once.Do(func() {
		if err := portaudio.Terminate(); err != nil {
			h.err = fmt.Errorf("terminate audio: %w", err)
		}
	})

	return h.err
}
