// Package schemas holds the JSON Schemas for the authored content documents.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// For returns the schema document for the named collection.
func For(collection string) ([]byte, error) {
	data, err := files.ReadFile(collection + ".schema.json")
	if err != nil {
		return nil, fmt.Errorf("no schema for collection %q: %w", collection, err)
	}
	return data, nil
}
