package workflow

import (
	"fmt"

	"github.com/poisedms/poised/internal/prompt"
	"github.com/poisedms/poised/internal/record"
	"github.com/poisedms/poised/internal/validate"
)

// MenuSentinel returns control to the menu from the update locate prompt.
const MenuSentinel = "menu"

// UpdateProject runs the interactive update flow: locate a project by
// number, then collect a new name, deadline, and amount paid, with blank
// input keeping the current value. All three fields are persisted in a
// single statement.
func (e *Engine) UpdateProject() error {
	var current *record.Project
	for current == nil {
		raw, err := e.p.Line("Enter project number to update (or 'menu' to return): ")
		if err != nil {
			return err
		}
		if raw == MenuSentinel {
			return nil
		}

		p, serr := e.store.GetProject(raw)
		if serr != nil {
			e.printf("Error locating project: %v\n", serr)
			return nil
		}
		if p == nil {
			e.printf("Project not found.\n")
			continue
		}
		current = p
	}

	name, err := e.p.Line("Enter new project name (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	deadline, err := prompt.Until(e.p,
		"Enter new deadline date (YYYY-MM-DD, leave blank to keep current): ",
		func(raw string) (string, error) {
			if raw == "" {
				return current.Deadline, nil
			}
			d, perr := validate.Date(raw)
			if perr != nil {
				return "", perr
			}
			return d.Format(record.DateLayout), nil
		})
	if err != nil {
		return err
	}

	paid, err := prompt.Until(e.p,
		"Enter new total paid (leave blank to keep current): ",
		func(raw string) (float64, error) {
			if raw == "" {
				return current.TotalPaid, nil
			}
			v, perr := validate.Amount(raw)
			if perr != nil {
				return 0, perr
			}
			if v > current.TotalFee {
				return 0, fmt.Errorf("amount paid cannot exceed total fee of %.2f", current.TotalFee)
			}
			return v, nil
		})
	if err != nil {
		return err
	}

	updated, serr := e.store.UpdateProjectDetails(current.Number, name, deadline, paid)
	if serr != nil {
		e.printf("Error updating project: %v\n", serr)
		return nil
	}
	if !updated {
		e.printf("Project not found.\n")
		return nil
	}
	e.printf("Project updated successfully.\n")
	return nil
}

// DeleteProject locates a project by number and hard-deletes it.
func (e *Engine) DeleteProject() error {
	number, err := prompt.Until(e.p, "Enter project number to delete: ", validate.ProjectNumber)
	if err != nil {
		return err
	}

	deleted, serr := e.store.DeleteProject(number)
	if serr != nil {
		e.printf("Error deleting project: %v\n", serr)
		return nil
	}
	if !deleted {
		e.printf("Project not found.\n")
		return nil
	}
	e.printf("Project deleted successfully.\n")
	return nil
}

// FinalizeProject marks a project finalized and stamps today's date as its
// completion date. Re-finalizing a project that already has a completion
// date requires explicit confirmation; declining leaves the row untouched.
func (e *Engine) FinalizeProject() error {
	number, err := prompt.Until(e.p, "Enter project number to finalize: ", validate.ProjectNumber)
	if err != nil {
		return err
	}

	project, serr := e.store.GetProject(number)
	if serr != nil {
		e.printf("Error locating project: %v\n", serr)
		return nil
	}
	if project == nil {
		e.printf("Project not found.\n")
		return nil
	}

	if project.Finalised && project.CompletionDate != "" {
		update, cerr := e.p.Confirm(fmt.Sprintf(
			"This project is already finalized with a completion date of %s. Do you want to update the completion date? (y/n): ",
			project.CompletionDate))
		if cerr != nil {
			return cerr
		}
		if !update {
			e.printf("Project finalization unchanged.\n")
			return nil
		}
	}

	finalized, serr := e.store.FinalizeProject(number, e.today())
	if serr != nil {
		e.printf("Error finalizing project: %v\n", serr)
		return nil
	}
	if !finalized {
		e.printf("Project not found.\n")
		return nil
	}
	e.printf("Project finalized successfully with updated completion date.\n")
	return nil
}
