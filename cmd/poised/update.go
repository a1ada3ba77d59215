package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a project's name, deadline, or amount paid",
	Long: `Update an existing project.

Prompts for the project number, then for a new name, deadline, and amount
paid. Leaving a field blank keeps its current value.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	return newEngine(db, cmd).UpdateProject()
}
