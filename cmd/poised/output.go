package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poisedms/poised/internal/config"
	"github.com/poisedms/poised/internal/prompt"
	"github.com/poisedms/poised/internal/storage"
	"github.com/poisedms/poised/internal/workflow"
)

// exitWithError writes an error message to stderr and exits.
func exitWithError(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// mustOpenDatabase resolves the configured database path and opens the
// store, exiting on failure. A startup connection failure is fatal.
func mustOpenDatabase() *storage.DB {
	path, err := config.DatabasePath()
	if err != nil {
		exitWithError(ExitConfigError, "resolving database path: %v", err)
	}

	db, err := storage.OpenDB(path)
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// newEngine builds a workflow engine over the command's input and output.
func newEngine(db *storage.DB, cmd *cobra.Command) *workflow.Engine {
	return workflow.New(db, prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()))
}
