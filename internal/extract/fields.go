package extract

import (
	"encoding/json"
	"strings"

	"veriwork/internal/models"
)

// fieldString reads one field from parsed LLM output. Explicit nulls and
// missing keys both come back as "", so downstream comparison logic sees
// a single "absent" representation. Non-string scalars (years as
// numbers, typically) are rendered through JSON.
func fieldString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	default:
		b, _ := json.Marshal(t)
		return strings.TrimSpace(string(b))
	}
}

func personalFromMap(m map[string]any) models.PersonalData {
	return models.PersonalData{
		Name:        fieldString(m, "name"),
		DateOfBirth: fieldString(m, "date_of_birth"),
		Address:     fieldString(m, "address"),
	}
}

func educationFromMap(m map[string]any) models.EducationData {
	return models.EducationData{
		DocumentType:  fieldString(m, "document_type"),
		Qualification: fieldString(m, "qualification"),
		Board:         fieldString(m, "board"),
		Stream:        fieldString(m, "stream"),
		YearOfPassing: fieldString(m, "year_of_passing"),
		SchoolName:    fieldString(m, "school_name"),
		MarksType:     fieldString(m, "marks_type"),
		Marks:         fieldString(m, "marks"),
	}
}
