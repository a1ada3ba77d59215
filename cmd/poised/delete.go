package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a project",
	Long:  `Delete a project by number. The row is removed permanently.`,
	Args:  cobra.NoArgs,
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	return newEngine(db, cmd).DeleteProject()
}
