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

	slog.SetDefault(cli.NewLogger(os.Stderr, true))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("terminating")
	}()

	err = run(ctx, cfg, listDevices)
	if err != nil {
		slog.Error(err.Error())
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

	events := pubsub.New[model.Event]()
	subscription := events.Subscribe(ctx)

	controller, err := vui.Assistant(cfg, events, host)
	if err != nil {
		events.Stop()
		return err
	}

	printed := make(chan error, 1)

	go func() {
		printed <- ui.Print(os.Stdout, subscription)
	}()

	err = controller.Run(ctx)
	events.Stop()

	return errors.Join(err, <-printed)
}
