package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var langTagRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ParseObject extracts the JSON object from an LLM response, tolerating
// surrounding markdown code fences and stray prose around the object.
func ParseObject(response string) (map[string]any, error) {
	s := StripCodeFences(response)
	if candidate, ok := extractFirstJSON(s); ok {
		s = candidate
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, fmt.Errorf("failed to parse LLM JSON: %w", err)
	}
	return data, nil
}

// StripCodeFences removes surrounding Markdown code fences like
// ```json ... ```.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
		// remove a language tag at the start of the fence; content such
		// as an opening brace must survive
		if i := strings.IndexByte(s, '\n'); i != -1 {
			if langTagRe.MatchString(strings.TrimSpace(s[:i])) {
				s = s[i+1:]
			}
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// extractFirstJSON attempts to extract the first balanced JSON object or
// array.
func extractFirstJSON(s string) (string, bool) {
	if obj, ok := extractBalanced(s, '{', '}'); ok {
		return obj, true
	}
	if arr, ok := extractBalanced(s, '[', ']'); ok {
		return arr, true
	}
	return "", false
}

func extractBalanced(s string, open, close rune) (string, bool) {
	start := -1
	depth := 0
	for i, r := range s {
		if r == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if r == close {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
