package selection

import "github.com/jonathan/portfolio-site/internal/types"

// FindActivity returns the activity with the given id
func FindActivity(activities []types.Activity, id string) (types.Activity, bool) {
	return find(activities, func(a types.Activity) bool { return a.ID == id })
}

// FindProject returns the project with the given id
func FindProject(projects []types.Project, id string) (types.Project, bool) {
	return find(projects, func(p types.Project) bool { return p.ID == id })
}

// FindCertification returns the certification with the given id
func FindCertification(certs []types.Certification, id string) (types.Certification, bool) {
	return find(certs, func(c types.Certification) bool { return c.ID == id })
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
