package viewmodel

import (
	"github.com/jonathan/portfolio-site/internal/types"
)

// ActivityCard is the list-row view of an activity
type ActivityCard struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Summary      string `json:"summary"`
	Date         string `json:"date"`
	Featured     bool   `json:"featured"`
	Style        Style  `json:"style"`
}

// ActivityDetail is the expanded view of an activity
type ActivityDetail struct {
	ActivityCard
	Location        string   `json:"location"`
	LongDescription string   `json:"long_description"`
	Highlights      []string `json:"highlights"`
	Link            string   `json:"link,omitempty"`
	Image           string   `json:"image,omitempty"`
}

// ProjectActivity builds the card for an activity
func ProjectActivity(a types.Activity, p Palette) ActivityCard {
	return ActivityCard{
		ID:           a.ID,
		Title:        a.Title,
		Organization: a.Organization,
		Summary:      a.Description,
		Date:         a.Date,
		Featured:     a.Featured,
		Style:        ResolveActivityStyle(p, a.Type),
	}
}

// ProjectActivityDetail builds the expanded view for an activity
func ProjectActivityDetail(a types.Activity, p Palette) ActivityDetail {
	return ActivityDetail{
		ActivityCard:    ProjectActivity(a, p),
		Location:        a.Location,
		LongDescription: a.LongDescription,
		Highlights:      copyStrings(a.Highlights),
		Link:            a.Link,
		Image:           a.Image,
	}
}

// ProjectActivities builds cards for each activity, in order
func ProjectActivities(activities []types.Activity, p Palette) []ActivityCard {
	cards := make([]ActivityCard, len(activities))
	for i, a := range activities {
		cards[i] = ProjectActivity(a, p)
	}
	return cards
}

// CertificationStatus distinguishes time-bound from permanent certifications
type CertificationStatus string

const (
	StatusValid     CertificationStatus = "valid"
	StatusPermanent CertificationStatus = "permanent"
)

// CertificationCard is the grid view of a certification
type CertificationCard struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Issuer string              `json:"issuer"`
	Date   string              `json:"date"`
	Color  string              `json:"color"`
	Status CertificationStatus `json:"status"`
	Expiry string              `json:"expiry,omitempty"`
	Skills TagPreview          `json:"skills"`
}

// StatusText renders the status badge, e.g. "valid until 2027.05".
func (c CertificationCard) StatusText() string {
	if c.Status == StatusValid {
		return "valid until " + c.Expiry
	}
	return "permanent"
}

// CertificationDetail is the expanded view of a certification
type CertificationDetail struct {
	CertificationCard
	CredentialID string   `json:"credential_id,omitempty"`
	Link         string   `json:"link,omitempty"`
	Description  string   `json:"description"`
	ExamInfo     string   `json:"exam_info,omitempty"`
	ValidPeriod  string   `json:"valid_period,omitempty"`
	Image        string   `json:"image,omitempty"`
	AllSkills    []string `json:"all_skills"`
}

// ProjectCertification builds the card for a certification
func ProjectCertification(c types.Certification) CertificationCard {
	status := StatusPermanent
	if c.HasExpiry() {
		status = StatusValid
	}
	return CertificationCard{
		ID:     c.ID,
		Name:   c.Name,
		Issuer: c.Issuer,
		Date:   c.Date,
		Color:  colorOrDefault(c.Color),
		Status: status,
		Expiry: c.Expiry,
		Skills: PreviewTags(c.Skills, CertificationTagLimit),
	}
}

// ProjectCertificationDetail builds the expanded view for a certification
func ProjectCertificationDetail(c types.Certification) CertificationDetail {
	return CertificationDetail{
		CertificationCard: ProjectCertification(c),
		CredentialID:      c.CredentialID,
		Link:              c.Link,
		Description:       c.Description,
		ExamInfo:          c.ExamInfo,
		ValidPeriod:       c.ValidPeriod,
		Image:             c.Image,
		AllSkills:         copyStrings(c.Skills),
	}
}

// ProjectCertifications builds cards for each certification, in order
func ProjectCertifications(certs []types.Certification) []CertificationCard {
	cards := make([]CertificationCard, len(certs))
	for i, c := range certs {
		cards[i] = ProjectCertification(c)
	}
	return cards
}

// ProjectCard is the grid view of a project
type ProjectCard struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Color         string     `json:"color"`
	Featured      bool       `json:"featured"`
	Tags          TagPreview `json:"tags"`
	TagCount      int        `json:"tag_count"`
	HasRepository bool       `json:"has_repository"`
	HasDemo       bool       `json:"has_demo"`
}

// ProjectDetail is the expanded view of a project
type ProjectDetail struct {
	ProjectCard
	LongDescription string   `json:"long_description"`
	AllTags         []string `json:"all_tags"`
	Repository      string   `json:"repository,omitempty"`
	Demo            string   `json:"demo,omitempty"`
	Duration        string   `json:"duration"`
	Team            string   `json:"team"`
	Role            string   `json:"role"`
	Highlights      []string `json:"highlights"`
	Image           string   `json:"image,omitempty"`
}

// ProjectProject builds the card for a project. Featured projects preview more tags.
func ProjectProject(p types.Project) ProjectCard {
	limit := OtherProjectTagLimit
	if p.Featured {
		limit = FeaturedProjectTagLimit
	}
	return ProjectCard{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Color:         colorOrDefault(p.Color),
		Featured:      p.Featured,
		Tags:          PreviewTags(p.Tags, limit),
		TagCount:      len(p.Tags),
		HasRepository: p.GitHub != "",
		HasDemo:       p.Demo != "",
	}
}

// ProjectProjectDetail builds the expanded view for a project
func ProjectProjectDetail(p types.Project) ProjectDetail {
	return ProjectDetail{
		ProjectCard:     ProjectProject(p),
		LongDescription: p.LongDescription,
		AllTags:         copyStrings(p.Tags),
		Repository:      p.GitHub,
		Demo:            p.Demo,
		Duration:        p.Duration,
		Team:            p.Team,
		Role:            p.Role,
		Highlights:      copyStrings(p.Highlights),
		Image:           p.Image,
	}
}

// ProjectProjects builds cards for each project, in order
func ProjectProjects(projects []types.Project) []ProjectCard {
	cards := make([]ProjectCard, len(projects))
	for i, p := range projects {
		cards[i] = ProjectProject(p)
	}
	return cards
}

// ExperienceCard is the timeline view of a position
type ExperienceCard struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`
	Color        string   `json:"color"`
	Logo         string   `json:"logo,omitempty"`
}

// ProjectExperience builds the card for a position
func ProjectExperience(e types.Experience) ExperienceCard {
	return ExperienceCard{
		ID:           e.ID,
		Title:        e.Title,
		Company:      e.Company,
		Location:     e.Location,
		Period:       e.Period,
		Bullets:      copyStrings(e.Description),
		Technologies: copyStrings(e.Technologies),
		Color:        colorOrDefault(e.Color),
		Logo:         e.Logo,
	}
}

// SkillBar is a single skill with its level clamped to 0-100
type SkillBar struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategoryCard is the view of one skill category
type SkillCategoryCard struct {
	Title  string     `json:"title"`
	Color  string     `json:"color"`
	Skills []SkillBar `json:"skills"`
}

// ProjectSkillCategory builds the card for a skill category
func ProjectSkillCategory(c types.SkillCategory) SkillCategoryCard {
	bars := make([]SkillBar, len(c.Skills))
	for i, s := range c.Skills {
		bars[i] = SkillBar{Name: s.Name, Level: clampLevel(s.Level)}
	}
	return SkillCategoryCard{
		Title:  c.Title,
		Color:  colorOrDefault(c.Color),
		Skills: bars,
	}
}

func clampLevel(level int) int {
	return max(0, min(100, level))
}

func colorOrDefault(c string) string {
	if c == "" {
		return DefaultColor
	}
	return c
}
