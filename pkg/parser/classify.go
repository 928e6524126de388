package parser

import "strings"

// Classify determines kind, service and starting confidence for a key/value
// pair. Signatures are tried first against the value, then the key name
// heuristics. It never fails; unmatched pairs land in KindOther.
func (p *Parser) Classify(key, value string) Candidate {
	for _, sig := range p.signatures {
		if sig.Matcher.MatchString(value) {
			return Candidate{
				Key:        key,
				Value:      value,
				Kind:       sig.Kind,
				Service:    sig.Service,
				Confidence: sig.BaseConfidence,
			}
		}
	}

	c := Candidate{
		Key:        key,
		Value:      value,
		Kind:       KindOther,
		Confidence: fallbackConfidence,
		Service:    p.serviceFromKey(key),
	}
	for _, rule := range p.keyNameRules {
		if rule.Matcher.MatchString(key) {
			c.Kind = rule.Kind
			c.Confidence = rule.Confidence
			break
		}
	}

	return c
}

// serviceFromKey returns the display name of the first service token contained
// in the upper-cased key, or "" when none match.
func (p *Parser) serviceFromKey(key string) string {
	upper := strings.ToUpper(key)
	for _, alias := range p.serviceMapping {
		if strings.Contains(upper, alias.Token) {
			return alias.DisplayName
		}
	}
	return ""
}
