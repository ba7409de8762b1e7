package vui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mgoltzsche/echo-vui/internal/assistant"
	"github.com/mgoltzsche/echo-vui/internal/audio"
	"github.com/mgoltzsche/echo-vui/internal/catalog"
	"github.com/mgoltzsche/echo-vui/internal/convlog"
	"github.com/mgoltzsche/echo-vui/internal/matcher"
	"github.com/mgoltzsche/echo-vui/internal/model"
	"github.com/mgoltzsche/echo-vui/internal/pubsub"
	"github.com/mgoltzsche/echo-vui/internal/soundgen"
	"github.com/mgoltzsche/echo-vui/internal/stt"
	"github.com/mgoltzsche/echo-vui/internal/tts"
	"github.com/mgoltzsche/echo-vui/internal/wakeword"
	"github.com/mgoltzsche/echo-vui/pkg/config"
)

// Assistant builds the assistant from the configuration.
// It loads the speech model and opens the audio devices, so that a missing
// model or device fails before the assistant starts listening.
// The returned controller releases them together with device when it stops.
func Assistant(cfg config.Configuration, events pubsub.Publisher[model.Event], device io.Closer) (*assistant.Controller, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	responses, err := LoadCatalog(cfg.CatalogFile, time.Now)
	if err != nil {
		return nil, err
	}

	speaker, err := newSpeaker(cfg)
	if err != nil {
		return nil, err
	}

	sttModel, err := stt.LoadModel(stt.Options{
		Engine:    cfg.STTEngine,
		ModelPath: cfg.ModelPath,
		Language:  cfg.STTLanguage,
	})
	if err != nil {
		return nil, err
	}

	slog.Info(fmt.Sprintf("loaded %s model from %s", cfg.STTEngine, cfg.ModelPath))

	mic := audio.NewMicrophone(cfg.InputDevice)

	err = mic.Open()
	if err != nil {
		return nil, errors.Join(err, sttModel.Close())
	}

	activation := wakeword.New(cfg.ActivationWord)
	exit := wakeword.New(cfg.ExitWords...)

	if cfg.WholeWordCommands {
		activation = activation.WholeWord()
		exit = exit.WholeWord()
	}

	return &assistant.Controller{
		Input:           stt.NewListener(mic, sttModel, audio.SampleRate),
		Output:          speaker,
		Responder:       matcher.New(responses),
		Log:             convlog.New(cfg.LogFile),
		Events:          events,
		Activation:      activation,
		Exit:            exit,
		StandbyTimeout:  cfg.StandbyListenTimeout.Duration(),
		EngagedTimeout:  cfg.EngagedListenTimeout.Duration(),
		MaxEmptyListens: cfg.MaxEmptyListens,
		Device:          closers{sttModel, device},
	}, nil
}

// closers releases all non-nil closers in order.
type closers []io.Closer

func (c closers) Close() error {
	var errs []error

	for _, closer := range c {
		if closer != nil {
			errs = append(errs, closer.Close())
		}
	}

	return errors.Join(errs...)
}

// LoadCatalog loads the catalog file or returns the built-in catalog if no file is specified.
func LoadCatalog(file string, now func() time.Time) (*catalog.Catalog, error) {
	if file == "" {
		return catalog.Default(now), nil
	}

	c, err := catalog.FromFile(file, now)
	if err != nil {
		return nil, err
	}

	slog.Info(fmt.Sprintf("loaded %d responses from %s", c.Len(), file))

	return c, nil
}

func newSpeaker(cfg config.Configuration) (*tts.Speaker, error) {
	output := audio.NewOutput(cfg.OutputDevice)

	err := output.Open()
	if err != nil {
		return nil, err
	}

	speaker := &tts.Speaker{
		Synthesizer: &tts.Espeak{
			Binary: cfg.EspeakBinary,
			Voice:  cfg.Voice,
			Rate:   cfg.SpeechRate,
		},
		Player: output,
	}

	if cfg.Chime {
		gen := &soundgen.Generator{SampleRate: audio.SampleRate}

		speaker.ChimeWave, err = gen.Chime()
		if err != nil {
			return nil, err
		}
	}

	return speaker, nil
}
