package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search projects by number or name",
	Long: `Search projects by substring of their number or name.

Examples:
  poised search 1234
  poised search "House"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	return newEngine(db, cmd).Search(args[0])
}
