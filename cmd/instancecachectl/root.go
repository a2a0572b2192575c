package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chelleccarlyle/usdinstance/internal/config"
)

var (
	// Global flags
	verbose       bool
	jsonOut       bool
	deterministic bool
)

var rootCmd = &cobra.Command{
	Use:   "instancecachectl",
	Short: "Drive and inspect an instance-deduplication cache",
	Long: `instancecachectl loads a scene description file, replays it through an
instance-deduplication cache, and lets you inspect the masters it assigns
and the nested-instancing queries it answers, without a real composition
engine attached.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&deterministic, "deterministic", false, "Assign master paths deterministically across runs")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cacheConfigFunc builds the config.Config function every subcommand's
// cache is constructed with, honoring --deterministic.
func cacheConfigFunc() func() config.Config {
	return func() config.Config {
		return config.Config{DeterministicMasterAssignment: deterministic}
	}
}

func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
