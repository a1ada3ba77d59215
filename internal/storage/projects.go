package storage

import (
	"database/sql"
	"fmt"

	"github.com/poisedms/poised/internal/record"
)

// selectProjectFields contains the standard field list for SELECT queries.
const selectProjectFields = `ProjectNumber, ProjectName, Deadline, BuildingType,
	PhysicalAddress, ERFNumber, TotalFee, TotalPaid,
	ArchitectID, ContractorID, CustomerID, Finalised, CompletionDate`

// InsertProject inserts one project row. The Finalised flag and completion
// date are taken from the struct; new projects carry Finalised=false and an
// empty completion date.
func (d *DB) InsertProject(p *record.Project) error {
	_, err := d.db.Exec(`
		INSERT INTO project (`+selectProjectFields+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Number, p.Name, p.Deadline, p.BuildingType,
		p.PhysicalAddress, p.ERFNumber, p.TotalFee, p.TotalPaid,
		p.ArchitectID, p.ContractorID, p.CustomerID,
		boolToInt(p.Finalised), nullableString(p.CompletionDate))
	if err != nil {
		return fmt.Errorf("inserting project %s: %w", p.Number, err)
	}
	return nil
}

// ProjectExists reports whether a project with the given number exists.
func (d *DB) ProjectExists(number string) (bool, error) {
	var one int
	err := d.db.QueryRow("SELECT 1 FROM project WHERE ProjectNumber = ?", number).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking project %s: %w", number, err)
	}
	return true, nil
}

// GetProject retrieves a project by number. Returns (nil, nil) if absent.
func (d *DB) GetProject(number string) (*record.Project, error) {
	row := d.db.QueryRow(`
		SELECT `+selectProjectFields+`
		FROM project
		WHERE ProjectNumber = ?
	`, number)
	return scanProject(row)
}

// UpdateProjectDetails persists name, deadline, and amount paid for the
// given project in a single statement. Returns false if no row matched.
func (d *DB) UpdateProjectDetails(number, name, deadline string, paid float64) (bool, error) {
	res, err := d.db.Exec(`
		UPDATE project
		SET ProjectName = ?, Deadline = ?, TotalPaid = ?
		WHERE ProjectNumber = ?
	`, name, deadline, paid, number)
	if err != nil {
		return false, fmt.Errorf("updating project %s: %w", number, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteProject removes a project row. Returns false if no row matched.
func (d *DB) DeleteProject(number string) (bool, error) {
	res, err := d.db.Exec("DELETE FROM project WHERE ProjectNumber = ?", number)
	if err != nil {
		return false, fmt.Errorf("deleting project %s: %w", number, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FinalizeProject marks a project finalized and stamps its completion date.
// Returns false if no row matched.
func (d *DB) FinalizeProject(number, completionDate string) (bool, error) {
	res, err := d.db.Exec(`
		UPDATE project
		SET Finalised = 1, CompletionDate = ?
		WHERE ProjectNumber = ?
	`, completionDate, number)
	if err != nil {
		return false, fmt.Errorf("finalizing project %s: %w", number, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AllProjects returns every project, ordered by number.
func (d *DB) AllProjects() ([]record.Project, error) {
	return d.queryProjects(`
		SELECT ` + selectProjectFields + `
		FROM project
		ORDER BY ProjectNumber
	`)
}

// IncompleteProjects returns projects not yet finalized.
func (d *DB) IncompleteProjects() ([]record.Project, error) {
	return d.queryProjects(`
		SELECT `+selectProjectFields+`
		FROM project
		WHERE Finalised = 0
		ORDER BY ProjectNumber
	`)
}

// OverdueProjects returns unfinalized projects whose deadline is before the
// given ISO date.
func (d *DB) OverdueProjects(today string) ([]record.Project, error) {
	return d.queryProjects(`
		SELECT `+selectProjectFields+`
		FROM project
		WHERE Deadline < ? AND Finalised = 0
		ORDER BY ProjectNumber
	`, today)
}

// SearchProjects returns projects whose number or name contains the term.
func (d *DB) SearchProjects(term string) ([]record.Project, error) {
	pattern := "%" + term + "%"
	return d.queryProjects(`
		SELECT `+selectProjectFields+`
		FROM project
		WHERE ProjectNumber LIKE ? OR ProjectName LIKE ?
		ORDER BY ProjectNumber
	`, pattern, pattern)
}

func (d *DB) queryProjects(query string, args ...any) ([]record.Project, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()
	return scanProjects(rows)
}

// projectScanFields holds the scan targets for a project row.
type projectScanFields struct {
	number, name, deadline, buildingType  sql.NullString
	address, erf                          sql.NullString
	fee, paid                             sql.NullFloat64
	architectID, contractorID, customerID sql.NullString
	finalised                             sql.NullInt64
	completionDate                        sql.NullString
}

func (f *projectScanFields) targets() []any {
	return []any{
		&f.number, &f.name, &f.deadline, &f.buildingType,
		&f.address, &f.erf, &f.fee, &f.paid,
		&f.architectID, &f.contractorID, &f.customerID,
		&f.finalised, &f.completionDate,
	}
}

// toProject converts scanned fields to a Project struct.
func (f *projectScanFields) toProject() record.Project {
	return record.Project{
		Number:          f.number.String,
		Name:            f.name.String,
		Deadline:        f.deadline.String,
		BuildingType:    f.buildingType.String,
		PhysicalAddress: f.address.String,
		ERFNumber:       f.erf.String,
		TotalFee:        f.fee.Float64,
		TotalPaid:       f.paid.Float64,
		ArchitectID:     f.architectID.String,
		ContractorID:    f.contractorID.String,
		CustomerID:      f.customerID.String,
		Finalised:       f.finalised.Int64 != 0,
		CompletionDate:  f.completionDate.String,
	}
}

// scanProject scans a single project from a row.
func scanProject(row *sql.Row) (*record.Project, error) {
	var f projectScanFields
	err := row.Scan(f.targets()...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p := f.toProject()
	return &p, nil
}

// scanProjects scans multiple projects from rows.
func scanProjects(rows *sql.Rows) ([]record.Project, error) {
	var projects []record.Project
	for rows.Next() {
		var f projectScanFields
		if err := rows.Scan(f.targets()...); err != nil {
			return nil, err
		}
		projects = append(projects, f.toProject())
	}
	return projects, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableString converts an empty string to SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
