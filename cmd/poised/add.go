package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new project interactively",
	Long: `Add a new project.

Prompts for every project field, validating each one, and resolves the
architect, contractor, and customer references against the database --
offering to create any that don't exist yet.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	return newEngine(db, cmd).AddProject()
}
