package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/ui"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todo",
		Short: "Terminal todo list",
		Long: `todo is a full-screen terminal todo list. Scroll with k/j, toggle a
task with Enter or Tab, delete with d, add one with n and quit with q or esc.

Settings, key bindings and the tasks loaded at startup are read from
config.toml in the user config directory; the file is created on first run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		return fmt.Errorf("couldn't load config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("couldn't open log file: %w", err)
	}
	defer closeLog()

	logger.Info("starting", "poll_interval", cfg.PollInterval.String(), "tasks", len(cfg.Seed))
	return ui.Run(ctx, cfg, logger)
}

// openLogger writes JSON records to path, or discards them when path is
// empty. The terminal belongs to the interface, so nothing goes to stdout.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}
