package viewmodel

import "fmt"

// Tag preview limits per card kind
const (
	CertificationTagLimit   = 3
	FeaturedProjectTagLimit = 4
	OtherProjectTagLimit    = 3
)

// TagPreview is the truncated tag list shown on a card
type TagPreview struct {
	Visible  []string `json:"visible"`
	Overflow int      `json:"overflow"`
}

// PreviewTags keeps the first n tags and counts the rest.
func PreviewTags(tags []string, n int) TagPreview {
	if n < 0 {
		n = 0
	}
	if len(tags) <= n {
		return TagPreview{Visible: copyStrings(tags), Overflow: 0}
	}
	return TagPreview{
		Visible:  copyStrings(tags[:n]),
		Overflow: len(tags) - n,
	}
}

// Indicator returns "+K" when K tags are hidden, or "" when none are.
func (t TagPreview) Indicator() string {
	if t.Overflow <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d", t.Overflow)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
