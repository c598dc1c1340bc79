package content

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/jonathan/portfolio-site/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shippedDataDir is the repository's authored content
var shippedDataDir = filepath.Join("..", "..", "data")

// countingFS records how many files were opened
type countingFS struct {
	fs.FS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

func validFS() fstest.MapFS {
	return fstest.MapFS{
		"activities.json": {Data: []byte(`{
			"activities": [
				{"id": "a1", "title": "Talk", "organization": "Conf", "type": "conference", "year": 2024, "featured": true},
				{"id": "a2", "title": "Award", "organization": "Org", "type": "award", "year": 2023, "featured": false}
			],
			"colors": {"conference": "#f59e0b"},
			"labels": {"conference": "Conference"},
			"tabs": [{"id": "featured", "label": "Featured"}]
		}`)},
		"projects.json":       {Data: []byte(`{"projects": [{"id": "p1", "title": "Site", "featured": true, "tags": ["Go"]}]}`)},
		"experience.json":     {Data: []byte(`{"experiences": [{"id": "e1", "title": "Engineer", "company": "Co", "period": "2024"}]}`)},
		"skills.json":         {Data: []byte(`{"skillCategories": [{"title": "Backend", "color": "#fff", "skills": [{"name": "Go", "level": 90}]}]}`)},
		"certifications.json": {Data: []byte(`{"certifications": [{"id": "c1", "name": "SQLD", "issuer": "KDATA", "date": "2023"}]}`)},
	}
}

func TestParseName(t *testing.T) {
	for _, name := range Names() {
		parsed, err := ParseName(string(name))
		require.NoError(t, err)
		assert.Equal(t, name, parsed)
	}

	_, err := ParseName("bogus")
	require.Error(t, err)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound), "error should be NotFoundError type")
	assert.Equal(t, "bogus", notFound.Name)
	assert.Equal(t, `collection not found: "bogus"`, err.Error())
}

func TestLoad_ReturnsDocumentVerbatim(t *testing.T) {
	fsys := validFS()
	store := NewStore(fsys)

	for _, name := range Names() {
		t.Run(string(name), func(t *testing.T) {
			data, err := store.Load(context.Background(), name)
			require.NoError(t, err)
			assert.Equal(t, fsys[name.fileName()].Data, data)
		})
	}
}

func TestLoad_UnknownNameNeverReadsFiles(t *testing.T) {
	counting := &countingFS{FS: validFS()}
	store := NewStore(counting)

	_, err := store.Load(context.Background(), Name("bogus"))
	require.Error(t, err)

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, int32(0), counting.opens.Load())
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := validFS()
	delete(fsys, "projects.json")
	store := NewStore(fsys)

	_, err := store.Load(context.Background(), Projects)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Equal(t, Projects, loadErr.Collection)
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_MalformedJSON(t *testing.T) {
	fsys := validFS()
	fsys["skills.json"] = &fstest.MapFile{Data: []byte("{ invalid json }")}
	store := NewStore(fsys)

	_, err := store.Load(context.Background(), Skills)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "invalid JSON")
}

func TestLoad_TrailingContent(t *testing.T) {
	tests := []struct {
		name       string
		collection Name
		data       string
	}{
		{"trailing garbage", Projects, `{"projects": []} GARBAGE {{{`},
		{"second value", Skills, `{"skillCategories": []}{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := validFS()
			fsys[string(tt.collection)+".json"] = &fstest.MapFile{Data: []byte(tt.data)}
			store := NewStore(fsys)

			_, err := store.Load(context.Background(), tt.collection)
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
			assert.Equal(t, tt.collection, loadErr.Collection)
			assert.Contains(t, loadErr.Error(), "invalid JSON")
		})
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	fsys := validFS()
	// year must be an integer
	fsys["activities.json"] = &fstest.MapFile{Data: []byte(`{
		"activities": [{"id": "a1", "title": "t", "organization": "o", "type": "award", "year": "2024", "featured": true}]
	}`)}
	store := NewStore(fsys)

	_, err := store.Load(context.Background(), Activities)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.True(t, errors.As(err, &validationErr), "cause should be ValidationError")
	assert.NotEmpty(t, validationErr.Errors)
}

func TestLoad_Cancelled(t *testing.T) {
	counting := &countingFS{FS: validFS()}
	store := NewStore(counting)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx, Activities)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), counting.opens.Load())
}

func TestLoad_FailureDoesNotPoisonLaterLoads(t *testing.T) {
	fsys := validFS()
	good := fsys["certifications.json"]
	fsys["certifications.json"] = &fstest.MapFile{Data: []byte("not json")}
	store := NewStore(fsys)

	_, err := store.Load(context.Background(), Certifications)
	require.Error(t, err)

	// other collections are unaffected
	_, err = store.Load(context.Background(), Projects)
	require.NoError(t, err)

	fsys["certifications.json"] = good
	data, err := store.Load(context.Background(), Certifications)
	require.NoError(t, err)
	assert.Equal(t, good.Data, data)
}

func TestTypedLoaders(t *testing.T) {
	store := NewStore(validFS())
	ctx := context.Background()

	activities, err := store.Activities(ctx)
	require.NoError(t, err)
	require.Len(t, activities.Activities, 2)
	assert.Equal(t, "a1", activities.Activities[0].ID)
	assert.Equal(t, "a2", activities.Activities[1].ID)
	assert.Equal(t, "#f59e0b", activities.Colors["conference"])

	projects, err := store.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects.Projects, 1)
	assert.True(t, projects.Projects[0].Featured)

	experience, err := store.Experience(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Co", experience.Experiences[0].Company)

	skills, err := store.Skills(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, skills.SkillCategories[0].Skills[0].Level)

	certs, err := store.Certifications(ctx)
	require.NoError(t, err)
	assert.False(t, certs.Certifications[0].HasExpiry())
}

func TestTypedLoaders_DuplicateID(t *testing.T) {
	fsys := validFS()
	fsys["projects.json"] = &fstest.MapFile{Data: []byte(`{"projects": [
		{"id": "p1", "title": "One", "featured": true},
		{"id": "p1", "title": "Two", "featured": false}
	]}`)}
	store := NewStore(fsys)

	_, err := store.Projects(context.Background())
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), `duplicate id "p1"`)
}

func TestPreload_ShippedData(t *testing.T) {
	store := NewDirStore(shippedDataDir)

	counts, err := store.Preload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[Name]int{
		Activities:     7,
		Projects:       5,
		Experience:     2,
		Skills:         3,
		Certifications: 5,
	}, counts)
}

func TestPreload_ReportsFailure(t *testing.T) {
	fsys := validFS()
	delete(fsys, "experience.json")
	store := NewStore(fsys)

	counts, err := store.Preload(context.Background())
	require.Error(t, err)
	assert.Nil(t, counts)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, Experience, loadErr.Collection)
}

func TestNewDirStore_MatchesDisk(t *testing.T) {
	store := NewDirStore(shippedDataDir)

	for _, name := range Names() {
		t.Run(string(name), func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join(shippedDataDir, name.fileName()))
			require.NoError(t, err)

			got, err := store.Load(context.Background(), name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
