package types

// ProjectsDocument is the authored projects.json document
type ProjectsDocument struct {
	Projects []Project `json:"projects"`
}

// Project represents a portfolio project
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Tags            []string `json:"tags"`
	GitHub          string   `json:"github"`
	Demo            string   `json:"demo"`
	Featured        bool     `json:"featured"`
	Color           string   `json:"color"`
	Duration        string   `json:"duration"`
	Team            string   `json:"team"`
	Role            string   `json:"role"`
	Highlights      []string `json:"highlights"`
	Image           string   `json:"image,omitempty"`
}
