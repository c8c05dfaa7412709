package logger

import (
	"regexp"
	"strings"
)

// RedactEmail masks an email address for safe logging.
// "john.doe@example.com" → "jo***@example.com"
// Short local parts (≤2 chars) are fully masked: "ab@example.com" → "***@example.com"
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}
	name := parts[0]
	if len(name) > 2 {
		return name[:2] + "***@" + parts[1]
	}
	return "***@" + parts[1]
}

// RedactProfileURL masks the slug of a LinkedIn profile URL.
// "https://linkedin.com/in/jane-doe-123" → "https://linkedin.com/in/ja***"
func RedactProfileURL(u string) string {
	idx := strings.Index(u, "/in/")
	if idx < 0 {
		return u
	}
	slug := strings.Trim(u[idx+len("/in/"):], "/")
	prefix := u[:idx+len("/in/")]
	if len(slug) > 2 {
		return prefix + slug[:2] + "***"
	}
	return prefix + "***"
}

// RedactName keeps the first character of each word of a person's name.
// "Jane Doe" → "J*** D***"
func RedactName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(r[0]) + "***"
	}
	return strings.Join(words, " ")
}

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

func redactPIIValue(key, val string) string {
	key = strings.ToLower(key)
	if strings.Contains(key, "email") {
		return RedactEmail(val)
	}
	if strings.Contains(key, "linkedin") || strings.Contains(key, "profile_url") {
		return RedactProfileURL(val)
	}
	if key == "name" || strings.HasSuffix(key, "_name") {
		return RedactName(val)
	}
	// Redact any embedded emails in generic fields
	return emailRegex.ReplaceAllStringFunc(val, RedactEmail)
}
