package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tracediff",
	Short: "Compare execution traces and reconstruct their topology",
	Long: `tracediff compares two execution-trace snapshots section by section
(applied assets, plan, tool calls, references, answer blocks, rendered UI)
and reconstructs a serial/dag execution plan from per-step orchestration
metadata. Sensitive request fields are masked in every summary.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a tracediff.yaml config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging to stderr")
}
