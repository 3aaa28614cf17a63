package llm

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Shape schemas per document class. Every schema field must be present
// in the extracted object, though its value may be null; the extraction
// prompts instruct the model to emit null for fields it cannot find, so
// a missing key means the response never followed the schema at all.
// Values are limited to string, number, or null, rejecting structural
// garbage such as nested objects or arrays where a scalar belongs.
var (
	personalSchema = jsonschema.MustCompileString("personal.json",
		shapeSchemaJSON("name", "date_of_birth", "address"))
	marksheetSchema = jsonschema.MustCompileString("marksheet.json",
		shapeSchemaJSON("document_type", "qualification", "board", "stream",
			"year_of_passing", "school_name", "marks_type", "marks"))
)

func shapeSchemaJSON(fields ...string) string {
	props := make([]string, 0, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		props = append(props, fmt.Sprintf(`%q: {"type": ["string", "number", "null"]}`, f))
		required = append(required, fmt.Sprintf("%q", f))
	}
	return fmt.Sprintf(`{"type": "object", "properties": {%s}, "required": [%s]}`,
		strings.Join(props, ", "), strings.Join(required, ", "))
}

// ValidateShape checks extracted data against the document class's shape
// schema.
func ValidateShape(docClass string, data map[string]any) error {
	schema := personalSchema
	if docClass == Class10th || docClass == Class12th {
		schema = marksheetSchema
	}
	if err := schema.Validate(map[string]any(data)); err != nil {
		return fmt.Errorf("extracted data does not match %s schema: %w", docClass, err)
	}
	return nil
}
