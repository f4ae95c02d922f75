// Command flashcards is the device client. Decks live in a local SQLite
// database or, with --mode cloud, on a flashcards server.
//
// Run `flashcards help` for the command list.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/flashcards/internal/device"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := device.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := device.Open(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer app.Close()

	if err := app.Run(ctx, args); err != nil {
		switch {
		case errors.Is(err, device.ErrUsage):
			fmt.Fprintln(os.Stderr, err)
			return 2
		case errors.Is(err, device.ErrNotLoggedIn):
			fmt.Fprintln(os.Stderr, "not logged in: run `flashcards --mode cloud login` first")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
