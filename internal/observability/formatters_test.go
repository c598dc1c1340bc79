package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/portfolio-site/internal/selection"
	"github.com/jonathan/portfolio-site/internal/types"
	"github.com/jonathan/portfolio-site/internal/viewmodel"
	"github.com/stretchr/testify/assert"
)

func TestPrintActivities(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	tabs := []types.Tab{{ID: "featured", Label: "Featured"}, {ID: "2024", Label: "2024"}}
	cards := []viewmodel.ActivityCard{
		{ID: "a1", Title: "GopherCon Talk", Organization: "GopherCon", Date: "2024.07",
			Style: viewmodel.Style{Label: "Conference"}},
	}

	p.PrintActivities(tabs, "2024", cards)
	output := buf.String()

	assert.Contains(t, output, "ACTIVITIES")
	assert.Contains(t, output, "Featured  [2024]")
	assert.Contains(t, output, "GopherCon Talk")
	assert.Contains(t, output, "Conference  2024.07")
}

func TestPrintActivities_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintActivities(nil, "featured", nil)

	assert.Contains(t, buf.String(), "No activities for this tab")
}

func TestPrintProjects_TagIndicators(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	featured := []viewmodel.ProjectCard{
		{Title: "Portfolio", Tags: viewmodel.PreviewTags([]string{"Go", "React", "Docker", "AWS", "CI"}, 4)},
	}
	others := []viewmodel.ProjectCard{
		{Title: "Notes", Tags: viewmodel.PreviewTags([]string{"Go", "CLI"}, 3)},
	}

	p.PrintProjects(featured, others)
	output := buf.String()

	assert.Contains(t, output, "Featured (1):")
	assert.Contains(t, output, "[Go, React, Docker, AWS +1]")
	assert.Contains(t, output, "Other projects (1):")
	assert.Contains(t, output, "[Go, CLI]")
}

func TestPrintCertifications(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cards := []viewmodel.CertificationCard{
		{Name: "AWS SAA", Issuer: "Amazon", Date: "2024.05", Status: viewmodel.StatusValid, Expiry: "2027.05"},
		{Name: "SQLD", Issuer: "KDATA", Date: "2023.09", Status: viewmodel.StatusPermanent},
	}

	p.PrintCertifications(cards, selection.CertificationSummary{Total: 2, TimeBound: 1, Permanent: 1})
	output := buf.String()

	assert.Contains(t, output, "Total: 2  Valid: 1  Permanent: 1")
	assert.Contains(t, output, "valid until 2027.05")
	assert.Contains(t, output, "permanent")
}

func TestPrintProjectDetail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	highlights := make([]string, 7)
	for i := range highlights {
		highlights[i] = "highlight"
	}
	d := viewmodel.ProjectDetail{
		ProjectCard:     viewmodel.ProjectCard{Title: "Seat Tracker"},
		LongDescription: "Tracks seats.",
		Role:            "Backend",
		Highlights:      highlights,
		Repository:      "https://github.com/example/seat-tracker",
	}

	p.PrintProjectDetail(d)
	output := buf.String()

	assert.Contains(t, output, "SEAT TRACKER")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "Repository:")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills([]viewmodel.SkillCategoryCard{
		{Title: "Backend", Skills: []viewmodel.SkillBar{{Name: "Go", Level: 50}}},
	}, []string{"Go", "Postgres"})
	output := buf.String()

	assert.Contains(t, output, strings.Repeat("█", 10)+strings.Repeat("░", 10))
	assert.Contains(t, output, " 50%")
	assert.Contains(t, output, "Tech stack: Go, Postgres")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
	assert.Contains(t, buf.String(), "...")
}
