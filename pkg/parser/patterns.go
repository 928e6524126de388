package parser

// detectedPrefix prefixes the synthetic key of pattern-only matches.
const detectedPrefix = "DETECTED_"

// ExtractByPattern scans raw text with every signature and reports all
// non-overlapping matches, independent of any key/value structure.
func (p *Parser) ExtractByPattern(text string) []Candidate {
	candidates := []Candidate{}

	for _, sig := range p.signatures {
		for _, match := range sig.Matcher.FindAllString(text, -1) {
			candidates = append(candidates, Candidate{
				Key:        detectedPrefix + sig.Name,
				Value:      match,
				Kind:       sig.Kind,
				Service:    sig.Service,
				Confidence: sig.BaseConfidence,
			})
		}
	}

	return candidates
}
