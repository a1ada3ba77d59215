package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/poisedms/poised/internal/prompt"
	"github.com/poisedms/poised/internal/workflow"
)

// exitChoice is the menu number that ends the session.
const exitChoice = 9

// menuAction pairs a menu label with the engine operation it dispatches to.
type menuAction struct {
	label string
	run   func(*workflow.Engine) error
}

// menuActions maps menu numbers to actions. Any other number falls through
// to the invalid-choice branch.
var menuActions = map[int]menuAction{
	1: {"View all projects", (*workflow.Engine).ViewAll},
	2: {"View incomplete projects", (*workflow.Engine).ViewIncomplete},
	3: {"View overdue projects", (*workflow.Engine).ViewOverdue},
	4: {"Search projects by number or name", (*workflow.Engine).SearchPrompt},
	5: {"Add a new project", (*workflow.Engine).AddProject},
	6: {"Update an existing project", (*workflow.Engine).UpdateProject},
	7: {"Delete a project", (*workflow.Engine).DeleteProject},
	8: {"Finalize a project", (*workflow.Engine).FinalizeProject},
}

func runMenu(cmd *cobra.Command, args []string) error {
	db := mustOpenDatabase()
	defer db.Close()

	p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	engine := workflow.New(db, p)
	return menuLoop(p, engine)
}

// menuLoop reads a numbered choice, confirms, and dispatches one operation
// per iteration until the exit choice is selected or input runs out.
func menuLoop(p *prompt.Prompter, engine *workflow.Engine) error {
	for {
		printMenu(p.Out())

		raw, err := p.Line("")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		choice, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.Out(), "Invalid choice. Please try again.")
			continue
		}

		if choice == exitChoice {
			fmt.Fprintln(p.Out(), "Exiting...")
			return nil
		}

		action, ok := menuActions[choice]
		if !ok {
			fmt.Fprintln(p.Out(), "Invalid choice. Please try again.")
			continue
		}

		proceed, err := p.Confirm("Do you want to proceed? (y to continue, n to return to main menu): ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !proceed {
			continue
		}

		if err := action.run(engine); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w, "Please choose an option:")
	for i := 1; i < exitChoice; i++ {
		fmt.Fprintf(w, "%d. %s\n", i, menuActions[i].label)
	}
	fmt.Fprintf(w, "%d. Exit\n", exitChoice)
}
