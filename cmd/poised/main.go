// Package main provides the poised CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "poised",
	Short: "Construction-project records manager",
	Long: `poised manages construction-project records (projects, architects,
contractors, customers) in a local SQLite database.

Run without arguments for the interactive numbered menu, or use a
subcommand directly:

  poised view --incomplete
  poised search 1234
  poised add`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.Version = Version
}
