// Package content loads the authored portfolio documents from a read-only file system.
package content

// Name identifies one of the authored content collections
type Name string

const (
	Activities     Name = "activities"
	Projects       Name = "projects"
	Experience     Name = "experience"
	Skills         Name = "skills"
	Certifications Name = "certifications"
)

// Names returns the closed set of collection names in a fixed order.
func Names() []Name {
	return []Name{Activities, Projects, Experience, Skills, Certifications}
}

// ParseName validates s against the allow-list.
func ParseName(s string) (Name, error) {
	name := Name(s)
	if !name.Valid() {
		return "", &NotFoundError{Name: s}
	}
	return name, nil
}

// Valid reports whether n is one of the known collections.
func (n Name) Valid() bool {
	switch n {
	case Activities, Projects, Experience, Skills, Certifications:
		return true
	}
	return false
}

func (n Name) fileName() string {
	return string(n) + ".json"
}
