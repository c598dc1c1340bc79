// Package selection picks the visible subset of a collection: by tab, by featured flag, or by id.
package selection

import (
	"sort"
	"strconv"

	"github.com/jonathan/portfolio-site/internal/types"
)

// FeaturedTab selects activities flagged as featured; every other tab id is a year.
const FeaturedTab = "featured"

// FeaturedTabLabel is the label DeriveTabs gives the featured tab
const FeaturedTabLabel = "Featured"

// SelectByTab returns the activities visible under tabID, preserving source order.
// The featured tab keeps activities with Featured set; any other id is compared
// against the activity year rendered as a decimal string. An unmatched tab yields
// an empty, non-nil slice.
func SelectByTab(activities []types.Activity, tabID string) []types.Activity {
	if tabID == FeaturedTab {
		return filter(activities, func(a types.Activity) bool { return a.Featured })
	}
	return filter(activities, func(a types.Activity) bool {
		return strconv.Itoa(a.Year) == tabID
	})
}

// DeriveTabs builds the tab list for documents without authored tabs:
// the featured tab followed by each distinct year, newest first.
func DeriveTabs(activities []types.Activity) []types.Tab {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, a := range activities {
		if !seen[a.Year] {
			seen[a.Year] = true
			years = append(years, a.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	tabs := make([]types.Tab, 0, len(years)+1)
	tabs = append(tabs, types.Tab{ID: FeaturedTab, Label: FeaturedTabLabel})
	for _, year := range years {
		y := strconv.Itoa(year)
		tabs = append(tabs, types.Tab{ID: y, Label: y})
	}
	return tabs
}

// TabsFor returns the authored tabs of doc, or derived tabs when none are authored.
func TabsFor(doc *types.ActivitiesDocument) []types.Tab {
	if len(doc.Tabs) > 0 {
		return doc.Tabs
	}
	return DeriveTabs(doc.Activities)
}

// HasTab reports whether id names one of tabs.
func HasTab(tabs []types.Tab, id string) bool {
	for _, tab := range tabs {
		if tab.ID == id {
			return true
		}
	}
	return false
}

// filter keeps items for which keep returns true. The result is never nil.
func filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}
