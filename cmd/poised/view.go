package main

import (
	"github.com/spf13/cobra"
)

var (
	viewIncomplete bool
	viewOverdue    bool
)

func init() {
	viewCmd.Flags().BoolVar(&viewIncomplete, "incomplete", false, "Show only projects not yet finalized")
	viewCmd.Flags().BoolVar(&viewOverdue, "overdue", false, "Show only unfinalized projects past their deadline")
	viewCmd.MarkFlagsMutuallyExclusive("incomplete", "overdue")
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display projects in a table",
	Long: `Display projects in a table.

Examples:
  poised view
  poised view --incomplete
  poised view --overdue`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	engine := newEngine(db, cmd)
	switch {
	case viewIncomplete:
		return engine.ViewIncomplete()
	case viewOverdue:
		return engine.ViewOverdue()
	default:
		return engine.ViewAll()
	}
}
