package workflow

import (
	"errors"
	"fmt"

	"github.com/poisedms/poised/internal/prompt"
	"github.com/poisedms/poised/internal/record"
	"github.com/poisedms/poised/internal/render"
	"github.com/poisedms/poised/internal/validate"
)

// errResolutionFailed aborts the calling operation when an entity could not
// be obtained (store failure during lookup or creation).
var errResolutionFailed = errors.New("entity resolution failed")

// resolveEntity obtains an existing foreign-key value for the role,
// offering to create the entity inline when the entered ID is unknown.
// The listing of existing entities is re-shown at the top of each attempt.
func (e *Engine) resolveEntity(role record.Role) (string, error) {
	for {
		if err := e.listEntities(role); err != nil {
			return "", errResolutionFailed
		}

		raw, err := e.p.Line(fmt.Sprintf("Enter %s ID (e.g., %s101): ", role.Name(), role.Prefix()))
		if err != nil {
			return "", err
		}
		id, perr := validate.EntityID(role.Prefix(), raw)
		if perr != nil {
			// Format errors restart the loop so the listing is re-shown.
			e.printf("Invalid input: %v.\n", perr)
			continue
		}

		exists, err := e.store.EntityExists(role, id)
		if err != nil {
			e.printf("Error validating %s ID: %v\n", role.Name(), err)
			return "", errResolutionFailed
		}
		if exists {
			return id, nil
		}

		e.printf("%s ID %s does not exist.\n", role.Name(), id)
		create, err := e.p.Confirm(fmt.Sprintf("Do you want to add this %s? (y/n): ", role.Name()))
		if err != nil {
			return "", err
		}
		if !create {
			continue
		}

		if err := e.createEntity(role, id); err != nil {
			return "", err
		}
		return id, nil
	}
}

// listEntities shows existing entities of the role (ID, first name, surname).
func (e *Engine) listEntities(role record.Role) error {
	entities, err := e.store.ListEntities(role)
	if err != nil {
		e.printf("Error listing %ss: %v\n", role.Name(), err)
		return err
	}

	columns := []string{role.Name() + "ID", "FirstName", "Surname"}
	rows := make([]render.Row, 0, len(entities))
	for _, ent := range entities {
		rows = append(rows, render.Row{
			columns[0]:  ent.ID,
			"FirstName": ent.FirstName,
			"Surname":   ent.Surname,
		})
	}
	render.Table(e.p.Out(), "Existing "+role.Name()+"s", columns, rows)
	return nil
}

// createEntity collects contact details for a new entity and inserts it.
// A store-level insert failure means the entity is not created; the error
// aborts the calling resolution.
func (e *Engine) createEntity(role record.Role, id string) error {
	firstName, err := e.p.Line(fmt.Sprintf("Enter %s's First Name: ", role.Name()))
	if err != nil {
		return err
	}
	surname, err := e.p.Line(fmt.Sprintf("Enter %s's Surname: ", role.Name()))
	if err != nil {
		return err
	}
	telephone, err := prompt.Until(e.p,
		fmt.Sprintf("Enter %s's Telephone Number (10-15 digits, numbers only): ", role.Name()),
		validate.Telephone)
	if err != nil {
		return err
	}
	email, err := prompt.Until(e.p,
		fmt.Sprintf("Enter %s's Email: ", role.Name()),
		validate.Email)
	if err != nil {
		return err
	}
	address, err := prompt.Until(e.p,
		"Enter physical address (e.g., 123 Main St, City, Country): ",
		validate.Address)
	if err != nil {
		return err
	}

	entity := record.Entity{
		ID:              id,
		FirstName:       firstName,
		Surname:         surname,
		Telephone:       telephone,
		Email:           email,
		PhysicalAddress: address,
	}
	if err := e.store.InsertEntity(role, &entity); err != nil {
		e.printf("Error adding %s: %v\n", role.Name(), err)
		return errResolutionFailed
	}
	e.printf("%s added successfully.\n", role.Name())
	return nil
}
