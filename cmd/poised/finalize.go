package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(finalizeCmd)
}

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Mark a project complete",
	Long: `Finalize a project by number, stamping today's date as its
completion date. Re-finalizing a project that already has a completion
date asks for confirmation first.`,
	Args: cobra.NoArgs,
	RunE: runFinalize,
}

func runFinalize(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	return newEngine(db, cmd).FinalizeProject()
}
