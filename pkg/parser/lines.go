package parser

import "strings"

// ExtractLines parses KEY=VALUE assignment text. Blank lines and # comments are
// skipped. Values are classified without the sensitivity filter since the
// assignment form is already a strong signal.
func (p *Parser) ExtractLines(text string) []Candidate {
	candidates := []Candidate{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		match := assignmentLine.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}

		value := unquote(match[2])
		if value == "" {
			continue
		}
		candidates = append(candidates, p.Classify(match[1], value))
	}

	return candidates
}

// unquote strips one pair of matching single or double quotes. No unescaping.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
