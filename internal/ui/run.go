package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgoltzsche/echo-vui/internal/model"
	"github.com/mgoltzsche/echo-vui/internal/pubsub"
)

// Run shows the events of the subscription within a terminal UI until the
// subscription ends, the user quits or the context is canceled.
func Run(ctx context.Context, sub pubsub.Subscription[model.Event], opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(), opts...)

	go func() {
		for evt := range sub.ResultChan() {
			p.Send(EventMsg(evt))
		}

		p.Send(StoppedMsg{})
	}()

	_, err := p.Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}

		return fmt.Errorf("run terminal ui: %w", err)
	}

	return nil
}

// Print writes the transcript lines of the subscription's events to w
// until the subscription ends.
func Print(w io.Writer, sub pubsub.Subscription[model.Event]) error {
	_, err := fmt.Fprintln(w, TranscriptHeader)
	if err != nil {
		return fmt.Errorf("print transcript: %w", err)
	}

	for evt := range sub.ResultChan() {
		_, err = fmt.Fprintln(w, evt.String())
		if err != nil {
			sub.Stop()
			return fmt.Errorf("print transcript: %w", err)
		}
	}

	return nil
}
