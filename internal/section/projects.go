package section

import (
	"github.com/jonathan/portfolio-site/internal/detail"
	"github.com/jonathan/portfolio-site/internal/selection"
	"github.com/jonathan/portfolio-site/internal/types"
	"github.com/jonathan/portfolio-site/internal/viewmodel"
)

// ProjectsController drives the featured/other project grids
type ProjectsController struct {
	doc      *types.ProjectsDocument
	featured []types.Project
	others   []types.Project
	Detail   detail.State
}

// NewProjectsController partitions the document once
func NewProjectsController(doc *types.ProjectsDocument) *ProjectsController {
	featured, others := selection.PartitionProjects(doc.Projects)
	return &ProjectsController{doc: doc, featured: featured, others: others}
}

// Featured returns cards for featured projects
func (c *ProjectsController) Featured() []viewmodel.ProjectCard {
	return viewmodel.ProjectProjects(c.featured)
}

// Others returns cards for the remaining projects
func (c *ProjectsController) Others() []viewmodel.ProjectCard {
	return viewmodel.ProjectProjects(c.others)
}

// Open expands the project with the given id
func (c *ProjectsController) Open(id string) error {
	if _, ok := selection.FindProject(c.doc.Projects, id); !ok {
		return &UnknownItemError{Section: "projects", ID: id}
	}
	c.Detail.Select(id)
	return nil
}

// Close dismisses the open project, if any
func (c *ProjectsController) Close() {
	c.Detail.Dismiss()
}

// Expanded returns the detail view of the open project
func (c *ProjectsController) Expanded() (viewmodel.ProjectDetail, bool) {
	current := c.Detail.Current()
	if !current.Open {
		return viewmodel.ProjectDetail{}, false
	}
	p, ok := selection.FindProject(c.doc.Projects, current.ID)
	if !ok {
		return viewmodel.ProjectDetail{}, false
	}
	return viewmodel.ProjectProjectDetail(p), true
}
