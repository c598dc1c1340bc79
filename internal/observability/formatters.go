// Package observability renders section views as boxed text for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-site/internal/selection"
	"github.com/jonathan/portfolio-site/internal/types"
	"github.com/jonathan/portfolio-site/internal/viewmodel"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps list sections such as highlights
	maxItemsToShow = 5
)

// Printer writes card and detail views to a terminal
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func tagLine(t viewmodel.TagPreview) string {
	line := strings.Join(t.Visible, ", ")
	if ind := t.Indicator(); ind != "" {
		line += " " + ind
	}
	return line
}

// PrintActivities outputs the tab bar and the cards under the active tab.
func (p *Printer) PrintActivities(tabs []types.Tab, activeTab string, cards []viewmodel.ActivityCard) {
	var sb strings.Builder

	labels := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.ID == activeTab {
			labels = append(labels, "["+tab.Label+"]")
		} else {
			labels = append(labels, tab.Label)
		}
	}
	sb.WriteString(strings.Join(labels, "  "))
	sb.WriteString("\n\n")

	if len(cards) == 0 {
		sb.WriteString("No activities for this tab")
	}
	for i, c := range cards {
		sb.WriteString(fmt.Sprintf("%s  %s\n", c.Style.Label, c.Date))
		sb.WriteString(fmt.Sprintf("  %s\n", c.Title))
		sb.WriteString(fmt.Sprintf("  %s", c.Organization))
		if i < len(cards)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("ACTIVITIES", sb.String())
}

// PrintActivityDetail outputs the expanded view of one activity.
func (p *Printer) PrintActivityDetail(d viewmodel.ActivityDetail) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type:     %s\n", d.Style.Label))
	sb.WriteString(fmt.Sprintf("Where:    %s, %s\n", d.Organization, d.Location))
	sb.WriteString(fmt.Sprintf("When:     %s\n", d.Date))
	sb.WriteString("\n")
	sb.WriteString(d.LongDescription)

	if len(d.Highlights) > 0 {
		sb.WriteString("\n\nHighlights:\n")
		writeBullets(&sb, d.Highlights)
	}
	if d.Link != "" {
		sb.WriteString(fmt.Sprintf("\nLink: %s", d.Link))
	}

	p.printBox(strings.ToUpper(d.Title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs featured projects followed by the rest.
func (p *Printer) PrintProjects(featured, others []viewmodel.ProjectCard) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Featured (%d):\n", len(featured)))
	for _, c := range featured {
		writeProjectCard(&sb, c)
	}
	sb.WriteString(fmt.Sprintf("\nOther projects (%d):\n", len(others)))
	for _, c := range others {
		writeProjectCard(&sb, c)
	}

	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeProjectCard(sb *strings.Builder, c viewmodel.ProjectCard) {
	sb.WriteString(fmt.Sprintf("  • %s\n", c.Title))
	if line := tagLine(c.Tags); line != "" {
		sb.WriteString(fmt.Sprintf("    [%s]\n", line))
	}
}

// PrintProjectDetail outputs the expanded view of one project.
func (p *Printer) PrintProjectDetail(d viewmodel.ProjectDetail) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", d.Role))
	sb.WriteString(fmt.Sprintf("Team:     %s\n", d.Team))
	sb.WriteString(fmt.Sprintf("Duration: %s\n", d.Duration))
	sb.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(d.AllTags, ", ")))
	sb.WriteString("\n")
	sb.WriteString(d.LongDescription)

	if len(d.Highlights) > 0 {
		sb.WriteString("\n\nHighlights:\n")
		writeBullets(&sb, d.Highlights)
	}
	if d.Repository != "" {
		sb.WriteString(fmt.Sprintf("\nRepository: %s", d.Repository))
	}
	if d.Demo != "" {
		sb.WriteString(fmt.Sprintf("\nDemo: %s", d.Demo))
	}

	p.printBox(strings.ToUpper(d.Title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertifications outputs the aggregate summary and one line per certification.
func (p *Printer) PrintCertifications(cards []viewmodel.CertificationCard, summary selection.CertificationSummary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d  Valid: %d  Permanent: %d\n\n",
		summary.Total, summary.TimeBound, summary.Permanent))

	for i, c := range cards {
		sb.WriteString(fmt.Sprintf("%s\n", c.Name))
		sb.WriteString(fmt.Sprintf("  %s, %s (%s)\n", c.Issuer, c.Date, c.StatusText()))
		if line := tagLine(c.Skills); line != "" {
			sb.WriteString(fmt.Sprintf("  [%s]\n", line))
		}
		if i < len(cards)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CERTIFICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertificationDetail outputs the expanded view of one certification.
func (p *Printer) PrintCertificationDetail(d viewmodel.CertificationDetail) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Issuer:   %s\n", d.Issuer))
	sb.WriteString(fmt.Sprintf("Issued:   %s\n", d.Date))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", d.StatusText()))
	if d.CredentialID != "" {
		sb.WriteString(fmt.Sprintf("ID:       %s\n", d.CredentialID))
	}
	sb.WriteString("\n")
	sb.WriteString(d.Description)
	if len(d.AllSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\n\nSkills: %s", strings.Join(d.AllSkills, ", ")))
	}
	if d.ExamInfo != "" {
		sb.WriteString(fmt.Sprintf("\nExam: %s", d.ExamInfo))
	}

	p.printBox(strings.ToUpper(d.Name), sb.String())
}

// PrintExperience outputs the work history.
func (p *Printer) PrintExperience(cards []viewmodel.ExperienceCard) {
	var sb strings.Builder
	for i, c := range cards {
		sb.WriteString(fmt.Sprintf("%s @ %s\n", c.Title, c.Company))
		sb.WriteString(fmt.Sprintf("  %s, %s\n", c.Period, c.Location))
		writeBullets(&sb, c.Bullets)
		if i < len(cards)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs each category with a proportional level bar.
func (p *Printer) PrintSkills(categories []viewmodel.SkillCategoryCard, techStack []string) {
	const barWidth = 20

	var sb strings.Builder
	for _, c := range categories {
		sb.WriteString(c.Title + ":\n")
		for _, s := range c.Skills {
			filled := s.Level * barWidth / 100
			bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
			sb.WriteString(fmt.Sprintf("  %-16s %s %3d%%\n", truncate(s.Name, 16), bar, s.Level))
		}
		sb.WriteString("\n")
	}
	if len(techStack) > 0 {
		sb.WriteString("Tech stack: " + strings.Join(techStack, ", "))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeBullets(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
