// Package types provides type definitions for the portfolio content documents.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ActivityType is the authored category of an activity
type ActivityType string

const (
	ActivityConference  ActivityType = "conference"
	ActivityWorkshop    ActivityType = "workshop"
	ActivityOpenSource  ActivityType = "opensource"
	ActivityCommunity   ActivityType = "community"
	ActivityAward       ActivityType = "award"
	ActivityWriting     ActivityType = "writing"
	ActivityCompetition ActivityType = "competition"
	ActivityAcademy     ActivityType = "academy"
	ActivitySchool      ActivityType = "school"
	ActivityOther       ActivityType = "other"
)

// KnownActivityTypes is the canonical set of activity types, in display order.
var KnownActivityTypes = []ActivityType{
	ActivityConference,
	ActivityWorkshop,
	ActivityOpenSource,
	ActivityCommunity,
	ActivityAward,
	ActivityWriting,
	ActivityCompetition,
	ActivityAcademy,
	ActivitySchool,
	ActivityOther,
}

// ActivitiesDocument is the authored activities.json document
type ActivitiesDocument struct {
	Activities []Activity        `json:"activities"`
	Colors     map[string]string `json:"colors"`
	Labels     map[string]string `json:"labels"`
	Tabs       []Tab             `json:"tabs"`
}

// Activity represents a talk, award, community role or similar entry
type Activity struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Organization    string   `json:"organization"`
	Type            string   `json:"type"`
	Year            int      `json:"year"`
	Featured        bool     `json:"featured"`
	Date            string   `json:"date"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Highlights      []string `json:"highlights"`
	Link            string   `json:"link,omitempty"`
	Image           string   `json:"image,omitempty"`
}

// Tab is a selectable filter key for the activities view
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
