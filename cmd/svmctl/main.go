// Package main provides the svmctl CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Exit codes for scripting against the CLI.
const (
	ExitOK        = 0
	ExitError     = 1 // General error (invalid arguments, runtime failure)
	ExitDataError = 3 // Dataset error (unreadable, unparsable, empty)
)

// humanOutput controls whether to use human-readable output
var humanOutput bool

// datasetPath is the classification dataset to operate on
var datasetPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "svmctl",
	Short: "Inspect supervisor classification datasets",
	Long: `svmctl inspects the research-area classification dataset served by the
supervisor visualization API.

Commands:
  validate   Check a dataset file for malformed, errored, or unclassified rows
  summary    Print cluster composition and overlap statistics

All commands output JSON by default for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "data/professor_clusters.json", "Path to the dataset JSON file")
	rootCmd.Version = Version
}
