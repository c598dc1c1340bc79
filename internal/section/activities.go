package section

import (
	"github.com/jonathan/portfolio-site/internal/detail"
	"github.com/jonathan/portfolio-site/internal/selection"
	"github.com/jonathan/portfolio-site/internal/types"
	"github.com/jonathan/portfolio-site/internal/viewmodel"
)

// ActivitiesController drives the tabbed activities list
type ActivitiesController struct {
	doc       *types.ActivitiesDocument
	palette   viewmodel.Palette
	tabs      []types.Tab
	activeTab string
	Detail    detail.State
}

// NewActivitiesController starts on the featured tab with nothing open.
func NewActivitiesController(doc *types.ActivitiesDocument) *ActivitiesController {
	return &ActivitiesController{
		doc:       doc,
		palette:   viewmodel.PaletteFrom(doc),
		tabs:      selection.TabsFor(doc),
		activeTab: selection.FeaturedTab,
	}
}

// Tabs returns the selectable tabs
func (c *ActivitiesController) Tabs() []types.Tab {
	return c.tabs
}

// ActiveTab returns the current tab id
func (c *ActivitiesController) ActiveTab() string {
	return c.activeTab
}

// SetTab switches the visible subset. Switching tabs dismisses any open detail.
func (c *ActivitiesController) SetTab(id string) error {
	if !selection.HasTab(c.tabs, id) {
		return &UnknownTabError{Tab: id}
	}
	if id != c.activeTab {
		c.activeTab = id
		c.Detail.Dismiss()
	}
	return nil
}

// Visible returns the activities under the active tab
func (c *ActivitiesController) Visible() []types.Activity {
	return selection.SelectByTab(c.doc.Activities, c.activeTab)
}

// Cards returns the projected cards under the active tab
func (c *ActivitiesController) Cards() []viewmodel.ActivityCard {
	return viewmodel.ProjectActivities(c.Visible(), c.palette)
}

// Open expands the activity with the given id. Only activities visible under
// the active tab can be opened.
func (c *ActivitiesController) Open(id string) error {
	if _, ok := selection.FindActivity(c.Visible(), id); !ok {
		return &UnknownItemError{Section: "activities", ID: id}
	}
	c.Detail.Select(id)
	return nil
}

// Close dismisses the open activity, if any
func (c *ActivitiesController) Close() {
	c.Detail.Dismiss()
}

// Expanded returns the detail view of the open activity
func (c *ActivitiesController) Expanded() (viewmodel.ActivityDetail, bool) {
	current := c.Detail.Current()
	if !current.Open {
		return viewmodel.ActivityDetail{}, false
	}
	a, ok := selection.FindActivity(c.doc.Activities, current.ID)
	if !ok {
		return viewmodel.ActivityDetail{}, false
	}
	return viewmodel.ProjectActivityDetail(a, c.palette), true
}
