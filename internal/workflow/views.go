package workflow

import (
	"strconv"

	"github.com/poisedms/poised/internal/record"
	"github.com/poisedms/poised/internal/render"
)

// projectColumns is the display order for project tables.
var projectColumns = []string{
	"ProjectNumber", "ProjectName", "Deadline", "BuildingType",
	"PhysicalAddress", "ERFNumber", "TotalFee", "TotalPaid",
	"ArchitectID", "ContractorID", "CustomerID", "Finalised", "CompletionDate",
}

// ViewAll displays every project.
func (e *Engine) ViewAll() error {
	projects, err := e.store.AllProjects()
	if err != nil {
		e.printf("Error loading projects: %v\n", err)
		return nil
	}
	e.renderProjects("All Projects", projects)
	return nil
}

// ViewIncomplete displays projects not yet finalized.
func (e *Engine) ViewIncomplete() error {
	projects, err := e.store.IncompleteProjects()
	if err != nil {
		e.printf("Error loading projects: %v\n", err)
		return nil
	}
	e.renderProjects("Incomplete Projects", projects)
	return nil
}

// ViewOverdue displays unfinalized projects past their deadline.
func (e *Engine) ViewOverdue() error {
	projects, err := e.store.OverdueProjects(e.today())
	if err != nil {
		e.printf("Error loading projects: %v\n", err)
		return nil
	}
	e.renderProjects("Overdue Projects", projects)
	return nil
}

// Search displays projects whose number or name contains the term.
func (e *Engine) Search(term string) error {
	projects, err := e.store.SearchProjects(term)
	if err != nil {
		e.printf("Error searching for projects: %v\n", err)
		return nil
	}
	e.renderProjects("Projects Found by Number or Name", projects)
	return nil
}

// SearchPrompt asks for a search term, then runs Search.
func (e *Engine) SearchPrompt() error {
	term, err := e.p.Line("Enter project number or name to search: ")
	if err != nil {
		return err
	}
	return e.Search(term)
}

func (e *Engine) renderProjects(title string, projects []record.Project) {
	rows := make([]render.Row, 0, len(projects))
	for i := range projects {
		rows = append(rows, projectRow(&projects[i]))
	}
	render.Table(e.p.Out(), title, projectColumns, rows)
}

// projectRow maps a project to display cells. Finalised is emitted in its
// stored 0/1 form; the renderer translates it to No/Yes.
func projectRow(p *record.Project) render.Row {
	finalised := "0"
	if p.Finalised {
		finalised = "1"
	}
	return render.Row{
		"ProjectNumber":   p.Number,
		"ProjectName":     p.Name,
		"Deadline":        p.Deadline,
		"BuildingType":    p.BuildingType,
		"PhysicalAddress": p.PhysicalAddress,
		"ERFNumber":       p.ERFNumber,
		"TotalFee":        strconv.FormatFloat(p.TotalFee, 'f', 2, 64),
		"TotalPaid":       strconv.FormatFloat(p.TotalPaid, 'f', 2, 64),
		"ArchitectID":     p.ArchitectID,
		"ContractorID":    p.ContractorID,
		"CustomerID":      p.CustomerID,
		"Finalised":       finalised,
		"CompletionDate":  p.CompletionDate,
	}
}
