// Package record defines the core domain types for project records.
package record

import "errors"

// DateLayout is the calendar date format used throughout: ISO YYYY-MM-DD.
const DateLayout = "2006-01-02"

// Project represents one construction project.
type Project struct {
	Number          string  // unique, digits only
	Name            string  // may be auto-generated from the customer surname
	Deadline        string  // ISO date
	BuildingType    string  // free text; matched case-insensitively for naming
	PhysicalAddress string
	ERFNumber       string // always starts with "ERF"
	TotalFee        float64
	TotalPaid       float64
	ArchitectID     string
	ContractorID    string
	CustomerID      string
	Finalised       bool
	CompletionDate  string // ISO date, empty until finalized
}

// Entity represents an architect, contractor, or customer record.
// The three roles are structurally identical.
type Entity struct {
	ID              string // role prefix + 3 digits (e.g. "ARC101"), or bare digits
	FirstName       string
	Surname         string
	Telephone       string
	Email           string
	PhysicalAddress string
}

// Role identifies one of the three entity tables.
type Role int

const (
	Architect Role = iota
	Contractor
	Customer
)

// Name returns the role's display name (e.g. "Architect").
func (r Role) Name() string {
	switch r {
	case Architect:
		return "Architect"
	case Contractor:
		return "Contractor"
	case Customer:
		return "Customer"
	default:
		return "Unknown"
	}
}

// Prefix returns the role's three-letter ID prefix.
func (r Role) Prefix() string {
	switch r {
	case Architect:
		return "ARC"
	case Contractor:
		return "CON"
	case Customer:
		return "CUS"
	default:
		return ""
	}
}

// Roles lists all entity roles in the order a project references them.
var Roles = []Role{Architect, Contractor, Customer}

// ErrEntityNotFound reports a failed entity lookup.
var ErrEntityNotFound = errors.New("entity not found")
