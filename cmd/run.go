package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/rhr/internal/app"
	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/logging"
	"github.com/abhisek/rhr/internal/problem"
	"github.com/abhisek/rhr/internal/screen"
	"github.com/abhisek/rhr/internal/statecodec"
)

// runApp resolves the config, builds the shared screen env, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger, closer, err := cfg.Logger(true)
	if err != nil {
		return err
	}
	defer closer.Close()
	logging.SetDefault(logger)

	var pool []string
	if cfg.Pool != "" {
		pool, _ = games.ResolvePool(cfg.Pool)
	}
	skipWelcome, _ := cmd.Flags().GetBool("skip-welcome")

	logger.Info(context.Background(), "tui started", "pool", cfg.Pool, "seeded", cfg.HasSeed)
	return app.Run(app.Options{
		Env:         screen.NewEnv(pool, cfg.Rand(), logger),
		SkipWelcome: skipWelcome,
	})
}

// readState loads an encoded state from path, or stdin when path is "-".
func readState(cmd *cobra.Command, path string) (problem.Generator, problem.State, error) {
	if path == "" {
		return nil, nil, errors.New("--state is required")
	}

	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read state: %w", err)
	}

	st, err := statecodec.Decode(raw)
	if err != nil {
		return nil, nil, err
	}
	g, err := games.ForState(st)
	if err != nil {
		return nil, nil, err
	}
	return g, st, nil
}
