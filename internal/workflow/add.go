package workflow

import (
	"strings"
	"time"

	"github.com/poisedms/poised/internal/prompt"
	"github.com/poisedms/poised/internal/record"
	"github.com/poisedms/poised/internal/validate"
)

// AddProject runs the interactive add flow: validate all fields, resolve
// the three foreign keys (creating missing entities on demand), auto-name
// if the name was left blank, and insert one project row.
//
// Entity creation and the project insert are separate statements; a failure
// between them leaves any created entities in place.
func (e *Engine) AddProject() error {
	number, err := prompt.Until(e.p, "Enter project number (e.g., 1234): ", validate.ProjectNumber)
	if err != nil {
		return err
	}

	exists, serr := e.store.ProjectExists(number)
	if serr != nil {
		e.printf("Error checking project existence: %v\n", serr)
		return nil
	}
	if exists {
		e.printf("Project with this number already exists.\n")
		return nil
	}

	name, err := e.p.Line("Enter project name (press Enter to generate automatically): ")
	if err != nil {
		return err
	}

	deadline, err := prompt.Until(e.p,
		"Enter project due date (YYYY-MM-DD, e.g., 2030-12-31): ",
		func(raw string) (time.Time, error) {
			return validate.FutureDate(raw, e.now())
		})
	if err != nil {
		return err
	}

	buildingType, err := e.p.Line("Enter building type (e.g., Residential, Commercial, House, Apartment): ")
	if err != nil {
		return err
	}

	address, err := prompt.Until(e.p,
		"Enter physical address (e.g., 123 Main St, City, Country): ",
		validate.Address)
	if err != nil {
		return err
	}

	erf, err := prompt.Until(e.p, "Enter ERF number (e.g., ERF5678): ", validate.ERFNumber)
	if err != nil {
		return err
	}

	fee, paid, err := e.promptFees()
	if err != nil {
		return err
	}

	ids := make(map[record.Role]string, len(record.Roles))
	for _, role := range record.Roles {
		id, rerr := e.resolveEntity(role)
		if rerr != nil {
			if rerr == errResolutionFailed {
				e.printf("Error: Project cannot be added without a valid %s.\n", role.Name())
				return nil
			}
			return rerr
		}
		ids[role] = id
	}

	if name == "" {
		name = e.generateProjectName(ids[record.Customer], buildingType)
		e.printf("Project name automatically set to: %s\n", name)
	}

	project := record.Project{
		Number:          number,
		Name:            name,
		Deadline:        deadline.Format(record.DateLayout),
		BuildingType:    buildingType,
		PhysicalAddress: address,
		ERFNumber:       erf,
		TotalFee:        fee,
		TotalPaid:       paid,
		ArchitectID:     ids[record.Architect],
		ContractorID:    ids[record.Contractor],
		CustomerID:      ids[record.Customer],
	}
	if err := e.store.InsertProject(&project); err != nil {
		e.printf("Error adding project to the database: %v\n", err)
		return nil
	}
	e.printf("Project added successfully.\n")
	return nil
}

// promptFees collects total fee and total paid, re-prompting for both
// whenever paid exceeds fee.
func (e *Engine) promptFees() (fee, paid float64, err error) {
	for {
		fee, err = prompt.Until(e.p, "Enter total fee (e.g., 150000.50): ", validate.Amount)
		if err != nil {
			return 0, 0, err
		}
		paid, err = prompt.Until(e.p, "Enter total paid (e.g., 50000.75): ", validate.Amount)
		if err != nil {
			return 0, 0, err
		}
		if paid > fee {
			e.printf("Total paid cannot exceed total fee. Please re-enter both amounts.\n")
			continue
		}
		return fee, paid, nil
	}
}

// generateProjectName derives a name from the customer's surname and the
// building type. The surname defaults to "Unknown" when the lookup fails
// or is empty.
func (e *Engine) generateProjectName(customerID, buildingType string) string {
	surname, err := e.store.CustomerSurname(customerID)
	if err != nil || surname == "" {
		surname = "Unknown"
	}
	return GenerateName(surname, buildingType)
}

// GenerateName builds a project name from a surname and building type.
func GenerateName(surname, buildingType string) string {
	switch strings.ToLower(strings.TrimSpace(buildingType)) {
	case "house":
		return "House " + surname
	case "apartment":
		return "Apartment " + surname
	default:
		return "Project " + surname
	}
}
