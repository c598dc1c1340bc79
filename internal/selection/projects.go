package selection

import "github.com/jonathan/portfolio-site/internal/types"

// PartitionProjects splits projects by the featured flag. Both halves keep source order.
func PartitionProjects(projects []types.Project) (featured, other []types.Project) {
	featured = filter(projects, func(p types.Project) bool { return p.Featured })
	other = filter(projects, func(p types.Project) bool { return !p.Featured })
	return featured, other
}
