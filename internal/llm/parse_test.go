package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fences", `{"a": 1}`, `{"a": 1}`},
		{"plain fences", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"json language tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fences around array", "```\n[1, 2]\n```", `[1, 2]`},
		{"object not mistaken for language tag", "```\n{}\n```", `{}`},
		{"surrounding whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.input))
		})
	}
}

func TestParseObject(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		data, err := ParseObject(`{"name": "Ravi Kumar", "address": null}`)
		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", data["name"])
		assert.Nil(t, data["address"])
	})

	t.Run("fenced object", func(t *testing.T) {
		data, err := ParseObject("```json\n{\"name\": \"Ravi\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", data["name"])
	})

	t.Run("object surrounded by prose", func(t *testing.T) {
		data, err := ParseObject(`Here is the extracted data: {"name": "Ravi"} Hope this helps!`)
		require.NoError(t, err)
		assert.Equal(t, "Ravi", data["name"])
	})

	t.Run("nested object remains balanced", func(t *testing.T) {
		data, err := ParseObject(`{"outer": {"inner": 1}}`)
		require.NoError(t, err)
		assert.Contains(t, data, "outer")
	})

	t.Run("no JSON at all", func(t *testing.T) {
		_, err := ParseObject("I could not extract any fields.")
		assert.Error(t, err)
	})

	t.Run("empty response", func(t *testing.T) {
		_, err := ParseObject("")
		assert.Error(t, err)
	})
}

func TestValidateShape(t *testing.T) {
	t.Run("personal with nulls", func(t *testing.T) {
		err := ValidateShape(ClassPersonal, map[string]any{
			"name": "Ravi Kumar", "date_of_birth": nil, "address": nil,
		})
		assert.NoError(t, err)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		err := ValidateShape(ClassPersonal, map[string]any{"name": "Ravi"})
		assert.Error(t, err)
	})

	t.Run("empty object rejected", func(t *testing.T) {
		assert.Error(t, ValidateShape(ClassPersonal, map[string]any{}))
		assert.Error(t, ValidateShape(Class10th, map[string]any{"board": "CBSE"}))
	})

	t.Run("numeric year accepted", func(t *testing.T) {
		err := ValidateShape(Class10th, marksheetData(map[string]any{"year_of_passing": float64(2014)}))
		assert.NoError(t, err)
	})

	t.Run("nested object rejected", func(t *testing.T) {
		err := ValidateShape(ClassPersonal, map[string]any{
			"name": map[string]any{"first": "Ravi"}, "date_of_birth": nil, "address": nil,
		})
		assert.Error(t, err)
	})

	t.Run("array rejected", func(t *testing.T) {
		err := ValidateShape(Class12th, marksheetData(map[string]any{"marks": []any{"88%"}}))
		assert.Error(t, err)
	})
}

// marksheetData builds a complete all-null marksheet object with the
// given overrides.
func marksheetData(overrides map[string]any) map[string]any {
	data := map[string]any{
		"document_type": nil, "qualification": nil, "board": nil,
		"stream": nil, "year_of_passing": nil, "school_name": nil,
		"marks_type": nil, "marks": nil,
	}
	for k, v := range overrides {
		data[k] = v
	}
	return data
}

func TestPromptFor(t *testing.T) {
	personal := PromptFor(ClassPersonal, "RAW TEXT HERE")
	assert.Contains(t, personal, "RAW TEXT HERE")
	assert.Contains(t, personal, "date_of_birth")

	marksheet := PromptFor(Class10th, "MARKSHEET TEXT")
	assert.Contains(t, marksheet, "MARKSHEET TEXT")
	assert.Contains(t, marksheet, "Class 10")
	assert.Contains(t, marksheet, "marks_type")
}
