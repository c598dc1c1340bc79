package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/jonathan/portfolio-site/internal/schemas"
	"github.com/jonathan/portfolio-site/internal/types"
	schemadocs "github.com/jonathan/portfolio-site/schemas"
	"golang.org/x/sync/errgroup"
)

// Store reads collections from a file system holding one <name>.json document per collection.
// It keeps no state between loads; every load is independent and idempotent.
type Store struct {
	fsys fs.FS
}

// NewStore creates a store backed by fsys
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// NewDirStore creates a store backed by a directory on disk
func NewDirStore(dir string) *Store {
	return NewStore(os.DirFS(dir))
}

// Load returns the raw document for name exactly as authored, after checking it
// against the collection's schema. It fails with *NotFoundError for names outside
// the allow-list and *LoadError for anything else.
func (s *Store) Load(ctx context.Context, name Name) ([]byte, error) {
	if !name.Valid() {
		return nil, &NotFoundError{Name: string(name)}
	}
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Collection: name, Message: "load cancelled", Cause: err}
	}

	fileName := name.fileName()
	content, err := fs.ReadFile(s.fsys, fileName)
	if err != nil {
		return nil, &LoadError{
			Collection: name,
			Message:    fmt.Sprintf("failed to read file %s", fileName),
			Cause:      err,
		}
	}

	if !json.Valid(content) {
		return nil, &LoadError{Collection: name, Message: "invalid JSON"}
	}

	schema, err := schemadocs.For(string(name))
	if err != nil {
		return nil, &LoadError{Collection: name, Message: "missing schema", Cause: err}
	}
	if err := schemas.ValidateBytes(string(name), schema, content); err != nil {
		return nil, &LoadError{
			Collection: name,
			Message:    "schema validation failed",
			Cause:      err,
		}
	}

	return content, nil
}

// Activities loads the activities document
func (s *Store) Activities(ctx context.Context) (*types.ActivitiesDocument, error) {
	doc, err := loadTyped[types.ActivitiesDocument](ctx, s, Activities)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(doc.Activities))
	for i, a := range doc.Activities {
		ids[i] = a.ID
	}
	if err := checkUniqueIDs(Activities, ids); err != nil {
		return nil, err
	}
	return doc, nil
}

// Projects loads the projects document
func (s *Store) Projects(ctx context.Context) (*types.ProjectsDocument, error) {
	doc, err := loadTyped[types.ProjectsDocument](ctx, s, Projects)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(doc.Projects))
	for i, p := range doc.Projects {
		ids[i] = p.ID
	}
	if err := checkUniqueIDs(Projects, ids); err != nil {
		return nil, err
	}
	return doc, nil
}

// Experience loads the experience document
func (s *Store) Experience(ctx context.Context) (*types.ExperienceDocument, error) {
	doc, err := loadTyped[types.ExperienceDocument](ctx, s, Experience)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(doc.Experiences))
	for i, e := range doc.Experiences {
		ids[i] = e.ID
	}
	if err := checkUniqueIDs(Experience, ids); err != nil {
		return nil, err
	}
	return doc, nil
}

// Skills loads the skills document
func (s *Store) Skills(ctx context.Context) (*types.SkillsDocument, error) {
	return loadTyped[types.SkillsDocument](ctx, s, Skills)
}

// Certifications loads the certifications document
func (s *Store) Certifications(ctx context.Context) (*types.CertificationsDocument, error) {
	doc, err := loadTyped[types.CertificationsDocument](ctx, s, Certifications)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(doc.Certifications))
	for i, c := range doc.Certifications {
		ids[i] = c.ID
	}
	if err := checkUniqueIDs(Certifications, ids); err != nil {
		return nil, err
	}
	return doc, nil
}

// Count loads name through its typed loader and returns the number of records.
// For skills the count is the number of categories.
func (s *Store) Count(ctx context.Context, name Name) (int, error) {
	switch name {
	case Activities:
		doc, err := s.Activities(ctx)
		if err != nil {
			return 0, err
		}
		return len(doc.Activities), nil
	case Projects:
		doc, err := s.Projects(ctx)
		if err != nil {
			return 0, err
		}
		return len(doc.Projects), nil
	case Experience:
		doc, err := s.Experience(ctx)
		if err != nil {
			return 0, err
		}
		return len(doc.Experiences), nil
	case Skills:
		doc, err := s.Skills(ctx)
		if err != nil {
			return 0, err
		}
		return len(doc.SkillCategories), nil
	case Certifications:
		doc, err := s.Certifications(ctx)
		if err != nil {
			return 0, err
		}
		return len(doc.Certifications), nil
	default:
		return 0, &NotFoundError{Name: string(name)}
	}
}

// Preload loads every collection concurrently and returns per-collection record counts.
// The first failure cancels the remaining loads.
func (s *Store) Preload(ctx context.Context) (map[Name]int, error) {
	g, gCtx := errgroup.WithContext(ctx)

	counts := make(map[Name]int, len(Names()))
	var mu sync.Mutex

	for _, name := range Names() {
		g.Go(func() error {
			n, err := s.Count(gCtx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			counts[name] = n
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

func loadTyped[T any](ctx context.Context, s *Store, name Name) (*T, error) {
	content, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	var doc T
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Collection: name,
			Message:    "failed to unmarshal JSON",
			Cause:      err,
		}
	}
	return &doc, nil
}

func checkUniqueIDs(name Name, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return &LoadError{
				Collection: name,
				Message:    fmt.Sprintf("duplicate id %q", id),
			}
		}
		seen[id] = true
	}
	return nil
}
