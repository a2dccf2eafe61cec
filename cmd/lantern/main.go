package main

import (
	"os"

	"github.com/spf13/cobra"

	"lantern/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lantern",
	Short: "Source-anchored diagnostic renderer",
	Long:  `Lantern renders structured compiler diagnostics as human-readable, source-anchored reports`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (always|auto|never)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
