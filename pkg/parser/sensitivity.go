package parser

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/CompassSecurity/keyleek/pkg/format"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

var sensitiveKeywords = []string{
	"key", "token", "secret", "password", "auth", "credential",
	"private", "access", "api", "bearer",
}

// IsSensitive reports whether a structured leaf looks like it holds a secret.
// Obvious non-secrets, including values shorter than three characters, are
// rejected first, then the key name must contain one of the sensitive keywords.
func IsSensitive(key, value string) bool {
	if utf8.RuneCountInString(value) < 3 ||
		value == "true" ||
		value == "false" ||
		digitsOnly.MatchString(value) ||
		strings.HasPrefix(value, "http://localhost") ||
		strings.Contains(value, "example.com") {
		return false
	}

	return slices.ContainsFunc(sensitiveKeywords, func(keyword string) bool {
		return format.ContainsI(key, keyword)
	})
}
