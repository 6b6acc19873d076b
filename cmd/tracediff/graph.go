package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verticelabs/tracediff/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <trace.json>",
	Short: "Export the reconstructed execution topology",
	Long:  `Reconstructs the execution plan from a trace's step metadata and outputs a Mermaid diagram (graph TD) of its groups and dependencies.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunGraph(os.Stdout, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
