package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verticelabs/tracediff"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tracediff",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tracediff version %s\n", strings.TrimSpace(tracediff.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
