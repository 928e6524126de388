package format

import (
	"runtime"
	"strings"
)

const maskVisible = 4

func ContainsI(a string, b string) bool {
	return strings.Contains(
		strings.ToLower(a),
		strings.ToLower(b),
	)
}

func GetPlatformAgnosticNewline() string {
	newline := "\n"
	if runtime.GOOS == "windows" {
		newline = "\r\n"
	}
	return newline
}

// Mask hides the middle of a secret value. Short values are masked completely.
func Mask(value string) string {
	runes := []rune(value)
	if len(runes) <= maskVisible*2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:maskVisible]) + strings.Repeat("*", len(runes)-maskVisible*2) + string(runes[len(runes)-maskVisible:])
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
