package storage

import (
	"database/sql"
	"fmt"

	"github.com/poisedms/poised/internal/record"
)

// entityTable maps a role to its table and ID column. Role is a closed
// enum, so table and column names never come from user input.
func entityTable(role record.Role) (table, idColumn string) {
	switch role {
	case record.Architect:
		return "architect", "ArchitectID"
	case record.Contractor:
		return "contractor", "ContractorID"
	case record.Customer:
		return "customer", "CustomerID"
	default:
		panic(fmt.Sprintf("unknown role %d", role))
	}
}

// EntityExists reports whether an entity with the given ID exists for the role.
func (d *DB) EntityExists(role record.Role, id string) (bool, error) {
	table, idColumn := entityTable(role)
	var one int
	err := d.db.QueryRow("SELECT 1 FROM "+table+" WHERE "+idColumn+" = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s %s: %w", role.Name(), id, err)
	}
	return true, nil
}

// InsertEntity inserts one entity row for the role.
func (d *DB) InsertEntity(role record.Role, e *record.Entity) error {
	table, idColumn := entityTable(role)
	_, err := d.db.Exec(`
		INSERT INTO `+table+` (`+idColumn+`, FirstName, Surname, Telephone, Email, PhysicalAddress)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.FirstName, e.Surname, e.Telephone, e.Email, e.PhysicalAddress)
	if err != nil {
		return fmt.Errorf("inserting %s %s: %w", role.Name(), e.ID, err)
	}
	return nil
}

// ListEntities returns all entities of the role, ordered by ID.
func (d *DB) ListEntities(role record.Role) ([]record.Entity, error) {
	table, idColumn := entityTable(role)
	rows, err := d.db.Query(`
		SELECT ` + idColumn + `, FirstName, Surname, Telephone, Email, PhysicalAddress
		FROM ` + table + `
		ORDER BY ` + idColumn)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", role.Name(), err)
	}
	defer rows.Close()

	var entities []record.Entity
	for rows.Next() {
		var f struct {
			id, firstName, surname, telephone, email, address sql.NullString
		}
		if err := rows.Scan(&f.id, &f.firstName, &f.surname, &f.telephone, &f.email, &f.address); err != nil {
			return nil, err
		}
		entities = append(entities, record.Entity{
			ID:              f.id.String,
			FirstName:       f.firstName.String,
			Surname:         f.surname.String,
			Telephone:       f.telephone.String,
			Email:           f.email.String,
			PhysicalAddress: f.address.String,
		})
	}
	return entities, rows.Err()
}

// CustomerSurname returns the surname for a customer ID.
// Returns record.ErrEntityNotFound if no such customer exists.
func (d *DB) CustomerSurname(id string) (string, error) {
	var surname sql.NullString
	err := d.db.QueryRow("SELECT Surname FROM customer WHERE CustomerID = ?", id).Scan(&surname)
	if err == sql.ErrNoRows {
		return "", record.ErrEntityNotFound
	}
	if err != nil {
		return "", fmt.Errorf("fetching customer surname: %w", err)
	}
	return surname.String, nil
}
