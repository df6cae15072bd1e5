// internal/handlers/admin/bulkimport/schema.go
package bulkimport

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// recordSchema is validated per record so one bad row never rejects the
// whole batch.
const recordSchema = `{
	"type": "object",
	"required": ["name", "country"],
	"properties": {
		"name":     {"type": "string", "minLength": 1},
		"country":  {"type": "string", "minLength": 1},
		"location": {"type": "string"},
		"ranking":  {"type": "integer", "minimum": 0},
		"tuition":  {"type": "string"},
		"programs": {"type": "array", "items": {"type": "string"}},
		"image":    {"type": "string"}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(recordSchema)

func validateRecord(raw interface{}) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("record validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
