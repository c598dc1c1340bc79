package types

// ExperienceDocument is the authored experience.json document
type ExperienceDocument struct {
	Experiences []Experience `json:"experiences"`
}

// Experience represents a single position in the work history
type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Color        string   `json:"color"`
	Logo         string   `json:"logo,omitempty"`
}
