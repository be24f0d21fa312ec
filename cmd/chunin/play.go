package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chunin-dm/internal/config"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/encounter"
	"github.com/KirkDiggler/chunin-dm/internal/orchestrators/trial"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/chunin-dm/internal/pkg/rng"
	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	seeded := cmd.Flags().Changed("seed")
	source, err := newSource(seeded, seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var p prompt.Prompt
	if demo {
		p = prompt.Demo(out)
	} else {
		p = prompt.NewConsole(cmd.InOrStdin(), out)
	}

	tables, err := loadTables(cfg.Tables)
	if err != nil {
		return err
	}

	report, err := play(ctx, &playInput{
		Source:      source,
		Prompt:      p,
		Tables:      tables,
		IDGenerator: newIDGenerator(seeded),
		Out:         out,
		NoColor:     cfg.NoColor,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, report.Summary())
	return nil
}

type playInput struct {
	Source      *rng.Source
	Prompt      prompt.Prompt
	Tables      *encounter.Tables
	IDGenerator idgen.Generator
	Out         io.Writer
	NoColor     bool
}

// play runs one game and streams its narration to Out
func play(ctx context.Context, input *playInput) (*trial.Report, error) {
	bus := events.NewBus()
	r := newRenderer(input.Out, input.NoColor)
	r.Subscribe(bus)

	game, err := trial.NewGame(&trial.GameConfig{
		Source:      input.Source,
		Prompt:      input.Prompt,
		Bus:         bus,
		Tables:      input.Tables,
		IDGenerator: input.IDGenerator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up game")
	}

	return game.Run(ctx)
}

func newSource(seeded bool, seed int64) (*rng.Source, error) {
	if seeded {
		return rng.New(seed), nil
	}
	return rng.NewRandom()
}

// newIDGenerator keeps seeded runs fully reproducible
func newIDGenerator(seeded bool) idgen.Generator {
	if seeded {
		return idgen.NewSequential("run")
	}
	return idgen.NewUUID("run")
}

// loadTables merges an override file over the embedded tables
func loadTables(path string) (*encounter.Tables, error) {
	tables, err := encounter.DefaultTables()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return tables, nil
	}

	override, err := encounter.LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	merged, err := tables.Merge(override)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to merge encounter tables from %s", path)
	}
	slog.Info("Loaded encounter tables", "path", path)
	return merged, nil
}
