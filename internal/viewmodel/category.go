// Package viewmodel projects authored content records into display-ready cards.
//
// Projection never mutates its input and never fails: unknown activity types
// resolve to a fixed fallback style.
package viewmodel

import "github.com/jonathan/portfolio-site/internal/types"

// DefaultColor is used when no color is authored for a category
const DefaultColor = "#6366f1"

// Icon names a glyph in the site's icon set
type Icon string

const (
	IconMic           Icon = "mic"
	IconUsers         Icon = "users"
	IconCode          Icon = "code"
	IconTrophy        Icon = "trophy"
	IconPen           Icon = "pen"
	IconAward         Icon = "award"
	IconGraduationCap Icon = "graduation-cap"
	IconBook          Icon = "book"
	IconCalendar      Icon = "calendar"
)

// FallbackIcon is shown for activity types without a dedicated icon
const FallbackIcon = IconCalendar

// Category is either a KnownCategory or an UnknownCategory.
type Category interface {
	// RawKey returns the authored type string
	RawKey() string
	isCategory()
}

// KnownCategory is one of types.KnownActivityTypes
type KnownCategory struct {
	Type types.ActivityType
}

// UnknownCategory carries an authored type string outside the known set
type UnknownCategory struct {
	Key string
}

func (c KnownCategory) RawKey() string   { return string(c.Type) }
func (c UnknownCategory) RawKey() string { return c.Key }

func (KnownCategory) isCategory()   {}
func (UnknownCategory) isCategory() {}

// ParseCategory classifies an authored activity type.
func ParseCategory(raw string) Category {
	for _, known := range types.KnownActivityTypes {
		if string(known) == raw {
			return KnownCategory{Type: known}
		}
	}
	return UnknownCategory{Key: raw}
}

// iconFor maps every known type to its icon.
func iconFor(t types.ActivityType) Icon {
	switch t {
	case types.ActivityConference:
		return IconMic
	case types.ActivityWorkshop, types.ActivityCommunity:
		return IconUsers
	case types.ActivityOpenSource:
		return IconCode
	case types.ActivityAward:
		return IconTrophy
	case types.ActivityWriting:
		return IconPen
	case types.ActivityCompetition:
		return IconAward
	case types.ActivityAcademy:
		return IconGraduationCap
	case types.ActivitySchool:
		return IconBook
	case types.ActivityOther:
		return FallbackIcon
	}
	return FallbackIcon
}

// Palette holds the authored color and label tables for activity types
type Palette struct {
	Colors map[string]string
	Labels map[string]string
}

// PaletteFrom builds a palette from the activities document
func PaletteFrom(doc *types.ActivitiesDocument) Palette {
	if doc == nil {
		return Palette{}
	}
	return Palette{Colors: doc.Colors, Labels: doc.Labels}
}

// Style is the resolved presentation of an activity type
type Style struct {
	Color string `json:"color"`
	Icon  Icon   `json:"icon"`
	Label string `json:"label"`
}

// ResolveActivityStyle resolves the color, icon and label for an authored type.
// Keys missing from the palette get DefaultColor and the raw key as label;
// unknown types also get FallbackIcon.
func ResolveActivityStyle(p Palette, raw string) Style {
	style := Style{
		Color: p.color(raw),
		Label: p.label(raw),
	}

	switch c := ParseCategory(raw).(type) {
	case KnownCategory:
		style.Icon = iconFor(c.Type)
	case UnknownCategory:
		style.Icon = FallbackIcon
	}
	return style
}

func (p Palette) color(key string) string {
	if c, ok := p.Colors[key]; ok && c != "" {
		return c
	}
	return DefaultColor
}

func (p Palette) label(key string) string {
	if l, ok := p.Labels[key]; ok && l != "" {
		return l
	}
	return key
}
