package section

import (
	"github.com/jonathan/portfolio-site/internal/detail"
	"github.com/jonathan/portfolio-site/internal/selection"
	"github.com/jonathan/portfolio-site/internal/types"
	"github.com/jonathan/portfolio-site/internal/viewmodel"
)

// CertificationsController drives the certification grid and its summary counts
type CertificationsController struct {
	doc    *types.CertificationsDocument
	Detail detail.State
}

// NewCertificationsController creates a controller with nothing open
func NewCertificationsController(doc *types.CertificationsDocument) *CertificationsController {
	return &CertificationsController{doc: doc}
}

// Cards returns a card per certification in document order
func (c *CertificationsController) Cards() []viewmodel.CertificationCard {
	return viewmodel.ProjectCertifications(c.doc.Certifications)
}

// Summary returns the total, time-bound and permanent counts
func (c *CertificationsController) Summary() selection.CertificationSummary {
	return selection.SummarizeCertifications(c.doc.Certifications)
}

// Open expands the certification with the given id
func (c *CertificationsController) Open(id string) error {
	if _, ok := selection.FindCertification(c.doc.Certifications, id); !ok {
		return &UnknownItemError{Section: "certifications", ID: id}
	}
	c.Detail.Select(id)
	return nil
}

// Close dismisses the open certification, if any
func (c *CertificationsController) Close() {
	c.Detail.Dismiss()
}

// Expanded returns the detail view of the open certification
func (c *CertificationsController) Expanded() (viewmodel.CertificationDetail, bool) {
	current := c.Detail.Current()
	if !current.Open {
		return viewmodel.CertificationDetail{}, false
	}
	cert, ok := selection.FindCertification(c.doc.Certifications, current.ID)
	if !ok {
		return viewmodel.CertificationDetail{}, false
	}
	return viewmodel.ProjectCertificationDetail(cert), true
}
