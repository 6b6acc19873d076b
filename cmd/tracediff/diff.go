package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verticelabs/tracediff/internal/cli"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before.json> <after.json>",
	Short: "Compare two trace snapshots",
	Long: `Loads two trace documents and prints the section-by-section diff.

Exit code 0 means the traces are identical, 1 means changes were found, so
the command can gate scripts the way 'diff' does. Load or parse failures
exit 2.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")
		verbose, _ := cmd.Flags().GetBool("verbose")

		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		code, err := cli.RunDiff(os.Stdout, cli.DiffOptions{
			BeforePath: args[0],
			AfterPath:  args[1],
			JSON:       jsonMode,
			Plain:      plain,
			Verbose:    verbose,
			Config:     cfg,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		os.Exit(code)
	},
}

func loadConfig(cmd *cobra.Command) (cli.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := cmd.Flags().Changed("config")
	if !explicit {
		path = cli.DefaultConfigPath
	}
	return cli.LoadConfig(path, explicit)
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().Bool("json", false, "Emit the raw diff report as JSON")
	diffCmd.Flags().Bool("plain", false, "Emit unstyled markdown (no terminal rendering)")
}
