package ai

import "strings"

// ExtractJSON locates a JSON object inside free-form model output. Models
// routinely wrap JSON in prose or markdown fences, so this takes everything
// from the first '{' to the last '}'. Returns false when no object is found.
func ExtractJSON(s string) (string, bool) {
	s = stripFences(strings.TrimSpace(s))

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func stripFences(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	return s
}
