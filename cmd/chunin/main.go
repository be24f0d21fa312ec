// Package main is the entry point for the chunin exam game master
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

var (
	seed int64
	demo bool
)

var rootCmd = &cobra.Command{
	Use:   "chunin",
	Short: "Solo text adventure through the chunin exam",
	Long: `chunin runs a solo game master through the four trials of the chunin exam:
the written test, the Forest of Death, the preliminaries and the finals.

A run with --seed replays exactly. --demo answers every question with the
scripted demo answers.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible run (random when unset)")
	rootCmd.Flags().BoolVar(&demo, "demo", false, "play with scripted answers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
