package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/mgoltzsche/echo-vui/internal/catalog"
	"github.com/mgoltzsche/echo-vui/internal/model"
	"github.com/mgoltzsche/echo-vui/internal/pubsub"
	"github.com/mgoltzsche/echo-vui/internal/wakeword"
)

const (
	DefaultActivationWord  = "assistant"
	DefaultStandbyTimeout  = 6 * time.Second
	DefaultEngagedTimeout  = 7 * time.Second
	DefaultMaxEmptyListens = 3

	ReadyMessage      = "Voice assistant is ready."
	TimeoutMessage    = "No input detected. Returning to standby."
	NoSpeechQuery     = "[No speech detected]"
	LogFailureMessage = "Failed to write conversation log"
)

var DefaultExitWords = []string{"bye", "exit", "quit"}

type SpeechInput interface {
	// Listen returns the recognized text or an empty string when nobody spoke within the timeout.
	Listen(ctx context.Context, timeout time.Duration) (string, error)
	Close() error
}

type SpeechOutput interface {
	// Speak returns after the text has been spoken.
	Speak(ctx context.Context, text string) error
}

// Chimer is implemented by a SpeechOutput that can play an activation sound.
type Chimer interface {
	Chime(ctx context.Context) error
}

type Responder interface {
	Match(input string) (response, key string)
	Respond(key string) string
}

type ConversationLog interface {
	Append(query, response string) error
}

// Controller runs the listen/activate/answer loop.
// Zero-valued optional fields are set to their defaults when Run is called.
type Controller struct {
	Input           SpeechInput
	Output          SpeechOutput
	Responder       Responder
	Log             ConversationLog
	Events          pubsub.Publisher[model.Event]
	Activation      *wakeword.Detector
	Exit            *wakeword.Detector
	StandbyTimeout  time.Duration
	EngagedTimeout  time.Duration
	MaxEmptyListens int
	// Device is released together with the input on shutdown.
	Device          io.Closer
	Now             func() time.Time

	state   State
	session Session
	mutex   sync.Mutex
}

func (c *Controller) State() State {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.state
}

func (c *Controller) Session() Session {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.session
}

// Run speaks the startup announcement and processes utterances until the
// user says an exit word, the context is canceled or listening fails.
// The speech input and the audio device are released before Run returns.
func (c *Controller) Run(ctx context.Context) error {
	c.applyDefaults()

	defer c.shutdown()

	c.update(func(s *Session) {
		*s = Session{Running: true}
	})
	c.transition(Standby)

	c.speak(ctx, ReadyMessage)

	for c.Session().Running {
		if ctx.Err() != nil {
			return nil
		}

		var err error

		switch c.State() {
		case Standby:
			err = c.standby(ctx)
		case Engaged:
			err = c.engaged(ctx)
		default:
			err = fmt.Errorf("unexpected assistant state %s", c.State())
		}

		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (c *Controller) applyDefaults() {
	if c.Activation == nil {
		c.Activation = wakeword.New(DefaultActivationWord)
	}
	if c.Exit == nil {
		c.Exit = wakeword.New(DefaultExitWords...)
	}
	if c.StandbyTimeout <= 0 {
		c.StandbyTimeout = DefaultStandbyTimeout
	}
	if c.EngagedTimeout <= 0 {
		c.EngagedTimeout = DefaultEngagedTimeout
	}
	if c.MaxEmptyListens <= 0 {
		c.MaxEmptyListens = DefaultMaxEmptyListens
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

func (c *Controller) standby(ctx context.Context) error {
	c.status(fmt.Sprintf("Say '%s' to activate...", c.activationWord()), false)

	text, err := c.listen(ctx, c.StandbyTimeout)
	if err != nil {
		return err
	}

	if !c.Activation.Detect(text) {
		return nil
	}

	c.transition(Activating)

	if chimer, ok := c.Output.(Chimer); ok {
		if err := chimer.Chime(ctx); err != nil {
			slog.Warn("failed to play activation sound", "err", err)
		}
	}

	c.speak(ctx, c.Responder.Respond(catalog.ActivationKey))

	c.update(func(s *Session) {
		s.Active = true
		s.EmptyListens = 0
	})
	c.transition(Engaged)

	return nil
}

func (c *Controller) engaged(ctx context.Context) error {
	text, err := c.listen(ctx, c.EngagedTimeout)
	if err != nil {
		return err
	}

	if text == "" {
		timedOut := false

		c.update(func(s *Session) {
			s.EmptyListens++
			timedOut = s.EmptyListens >= c.MaxEmptyListens
		})

		if timedOut {
			c.speak(ctx, TimeoutMessage)
			c.update(func(s *Session) {
				s.Active = false
				s.EmptyListens = 0
			})
			c.transition(Standby)
		}

		return nil
	}

	c.update(func(s *Session) {
		s.EmptyListens = 0
	})

	if c.Exit.Detect(text) {
		c.speak(ctx, c.Responder.Respond(catalog.GoodbyeKey))
		c.update(func(s *Session) {
			s.Active = false
			s.Running = false
		})
		c.transition(ShuttingDown)

		return nil
	}

	response, key := c.Responder.Match(text)

	slog.Debug(fmt.Sprintf("matched %q to %q", text, key))

	c.speak(ctx, response)

	err = c.Log.Append(text, response)
	if err != nil {
		slog.Error("failed to write conversation log", "err", err)
		c.status(LogFailureMessage, false)
	}

	return nil
}

func (c *Controller) listen(ctx context.Context, timeout time.Duration) (string, error) {
	c.status("Listening...", true)

	text, err := c.Input.Listen(ctx, timeout)
	if err != nil {
		return "", fmt.Errorf("listen: %w", err)
	}

	c.status(c.State().String(), false)

	query := text
	if query == "" {
		query = NoSpeechQuery
	}

	c.publish(model.QueryHeard, query, false)

	return text, nil
}

func (c *Controller) speak(ctx context.Context, text string) {
	c.publish(model.ResponseSpoken, text, false)

	err := c.Output.Speak(ctx, text)
	if err != nil && ctx.Err() == nil {
		slog.Warn("failed to speak", "text", text, "err", err)
	}
}

func (c *Controller) status(msg string, busy bool) {
	now := c.Now()
	c.Events.Publish(model.Event{
		Kind: model.StatusChanged,
		Text: fmt.Sprintf("[%s] %s", now.Format(time.TimeOnly), msg),
		Busy: busy,
		Time: now,
	})
}

func (c *Controller) publish(kind model.EventKind, text string, busy bool) {
	c.Events.Publish(model.Event{
		Kind: kind,
		Text: text,
		Busy: busy,
		Time: c.Now(),
	})
}

func (c *Controller) transition(state State) {
	c.mutex.Lock()
	prev := c.state
	c.state = state
	c.mutex.Unlock()

	if prev != state {
		slog.Debug(fmt.Sprintf("assistant state changed from %s to %s", prev, state))
	}
}

func (c *Controller) update(fn func(s *Session)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	fn(&c.session)
}

func (c *Controller) activationWord() string {
	words := c.Activation.Words()
	if len(words) == 0 {
		return DefaultActivationWord
	}
	return words[0]
}

func (c *Controller) shutdown() {
	c.transition(ShuttingDown)

	err := c.Input.Close()
	if err != nil {
		slog.Warn("failed to close speech input", "err", err)
	}

	if c.Device != nil {
		err = c.Device.Close()
		if err != nil {
			slog.Warn("failed to close audio device", "err", err)
		}
	}

	slog.Info("assistant stopped")
}
