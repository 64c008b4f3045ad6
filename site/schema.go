package site

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateFrontmatterSchema generates the JSON Schema for post
// frontmatter by reflecting the PostMeta struct. The result is written
// to schema/frontmatter.schema.json by tools/schema-generator and
// embedded there for validation.
func GenerateFrontmatterSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Authors may carry extra metadata; only the fields loam
		// understands are constrained.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a flat schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&PostMeta{})
	schema.Title = "Loam post frontmatter"
	schema.Description = "Schema for the YAML frontmatter block of markdown posts."

	return json.MarshalIndent(schema, "", "  ")
}
