// Package section holds per-section view controllers. Each controller owns the
// section's loaded document, its active filter and its detail selection.
package section

import "fmt"

// UnknownItemError indicates a detail selection for a record not in the section
type UnknownItemError struct {
	Section string
	ID      string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("%s: no item with id %q", e.Section, e.ID)
}

// UnknownTabError indicates a tab id not offered by the section
type UnknownTabError struct {
	Tab string
}

func (e *UnknownTabError) Error() string {
	return fmt.Sprintf("activities: unknown tab %q", e.Tab)
}
