package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mgoltzsche/echo-vui/internal/audio"
	"github.com/mgoltzsche/echo-vui/internal/cli"
	"github.com/mgoltzsche/echo-vui/internal/model"
	"github.com/mgoltzsche/echo-vui/internal/pubsub"
	"github.com/mgoltzsche/echo-vui/internal/ui"
	"github.com/mgoltzsche/echo-vui/internal/vui"
	"github.com/mgoltzsche/echo-vui/pkg/config"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error(fmt.Sprintf("load .env file: %s", err))
		os.Exit(1)
	}

	cfg := config.Default()
	config.AddFlags(flag.CommandLine, &cfg)

	listDevices := false
	flag.BoolVar(&listDevices, "list-devices", listDevices, "print the available audio devices and exit")
	cli.ParseFlagsWithEnvVars(flag.CommandLine, "ECHO_VUI_")

	// The terminal UI owns stdout, so log messages go to a file.
	logFile, err := os.OpenFile(cfg.DiagnosticsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error(fmt.Sprintf("open diagnostics file: %s", err))
		os.Exit(1)
	}
	defer logFile.Close()

	slog.SetDefault(cli.NewLogger(logFile, false))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, listDevices)
	if err != nil {
		slog.Error(err.Error())
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Configuration, listDevices bool) error {
	host, err := audio.Initialize()
	if err != nil {
		return err
	}
	defer host.Close()

	if listDevices {
		return audio.ListDevices(os.Stdout)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := pubsub.New[model.Event]()
	subscription := events.Subscribe(ctx)

	controller, err := vui.Assistant(cfg, events, host)
	if err != nil {
		events.Stop()
		return err
	}

	done := make(chan error, 1)

	go func() {
		defer events.Stop()
		done <- controller.Run(ctx)
	}()

	uiErr := ui.Run(ctx, subscription)

	// Quitting the UI stops the assistant.
	cancel()

	return errors.Join(<-done, uiErr)
}
