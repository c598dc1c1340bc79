package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-site/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collections = []string{
	"activities",
	"projects",
	"experience",
	"skills",
	"certifications",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, name := range collections {
		t.Run(name, func(t *testing.T) {
			data, err := For(name)
			require.NoError(t, err, "should be able to read embedded schema")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema should be valid JSON")

			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "$schema")
			assert.Contains(t, schemaObj, "required")
		})
	}
}

func TestFor_UnknownCollection(t *testing.T) {
	_, err := For("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no schema for collection "bogus"`)
}

func TestShippedData_MatchesSchemas(t *testing.T) {
	for _, name := range collections {
		t.Run(name, func(t *testing.T) {
			schema, err := For(name)
			require.NoError(t, err)

			document, err := os.ReadFile(filepath.Join("..", "data", name+".json"))
			require.NoError(t, err)

			assert.NoError(t, schemas.ValidateBytes(name, schema, document))
		})
	}
}

func TestSkillsSchema_RejectsLevelOutOfRange(t *testing.T) {
	schema, err := For("skills")
	require.NoError(t, err)

	document := `{"skillCategories": [{"title": "Backend", "skills": [{"name": "Go", "level": 140}]}]}`
	err = schemas.ValidateBytes("skills", schema, []byte(document))
	require.Error(t, err)

	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}
