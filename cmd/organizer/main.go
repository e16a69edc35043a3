package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"organizer/internal/config"
	appErrors "organizer/internal/errors"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "organizer <target_directory>",
		Short:         "Sort the files in a directory into category folders by extension",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.TargetDir = args[0]
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Simulate the run without moving any files")
	flags.BoolVar(&cfg.NoLogFile, "no-log-file", false, "Disable the organizer.log file")
	flags.StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to the JSON category mapping (default: file_types.json in the target)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	flags.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Interactive terminal UI with preview and confirmation")

	return cmd
}
