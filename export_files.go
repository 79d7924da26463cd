package gocda

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
)

// ExportFiles writes every entry of the batch as a JSON file under
// dir/<contentType>/<slug>.json, named after the content type's display
// field when the schema is known. Raw field values are written so the
// files round-trip through the builder.
func ExportFiles(dir string, arr *Array, types ContentTypeLookup) error {
	for _, e := range arr.Entries() {
		ct := e.ContentTypeID()
		if ct == "" {
			continue
		}

		name := slug.Make(displayFieldValue(e, types))
		if name == "" {
			name = slug.Make(e.Sys.ID)
		}

		sub := filepath.Join(dir, fmtTableName(ct))
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return err
		}

		doc := map[string]interface{}{
			"sys":    e.Sys,
			"fields": e.Raw,
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entry %s: %w", e.Sys.ID, err)
		}

		path := filepath.Join(sub, name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
