package types

// SkillsDocument is the authored skills.json document
type SkillsDocument struct {
	SkillCategories []SkillCategory `json:"skillCategories"`
	TechStack       []string        `json:"techStack,omitempty"`
}

// SkillCategory groups skills under a titled, colored heading
type SkillCategory struct {
	Title  string  `json:"title"`
	Color  string  `json:"color"`
	Skills []Skill `json:"skills"`
}

// Skill is a named skill with a proficiency percentage (0-100)
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}
