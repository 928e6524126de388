package parser

import (
	"regexp"
	"strings"
)

// assignmentLine matches a trimmed KEY=VALUE line and captures both sides.
var assignmentLine = regexp.MustCompile(`^([A-Z_][A-Z0-9_]*)\s*=\s*(.+)$`)

// Detect classifies text as structured, line-oriented or unstructured. It never
// fails: bracketed text that does not decode falls through to the later checks.
func Detect(text string) Format {
	format, _ := detect(strings.TrimSpace(text))
	return format
}

// detect also hands back the decoded document for structured input.
func detect(trimmed string) (Format, Value) {
	if root, ok := decodeStructured(trimmed); ok {
		return FormatStructured, root
	}

	for _, line := range strings.Split(trimmed, "\n") {
		if assignmentLine.MatchString(strings.TrimSpace(line)) {
			return FormatLineOriented, Value{}
		}
	}

	return FormatUnstructured, Value{}
}
