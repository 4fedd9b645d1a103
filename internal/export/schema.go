package export

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// archiveSchema constrains the archive envelope, not the blob
// interiors: each service re-parses its own blob on load and falls
// back to empty state if the shape is wrong.
const archiveSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "exported_at", "state"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "exported_at": {"type": "string", "format": "date-time"},
    "state": {
      "type": "object",
      "additionalProperties": {"type": "object"}
    }
  },
  "additionalProperties": false
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		var def any
		if err := json.Unmarshal([]byte(archiveSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse archive schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://archive.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// validateArchive checks raw archive bytes against the envelope schema.
func validateArchive(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("import: invalid JSON: %w", err)
	}
	schema, err := compiled()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("import: archive does not match format: %w", err)
	}
	return nil
}
