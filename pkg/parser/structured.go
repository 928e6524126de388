package parser

import "strconv"

// ExtractStructured walks a decoded document and classifies every non-empty
// string leaf accepted by IsSensitive. Candidate keys are dotted paths from the
// root; array elements contribute their index, which is also the leaf key seen
// by the filter, so bare strings inside arrays are never reported.
func (p *Parser) ExtractStructured(root Value) []Candidate {
	candidates := []Candidate{}
	p.walk(root, "", "", &candidates)
	return candidates
}

func (p *Parser) walk(v Value, leafKey string, path string, out *[]Candidate) {
	switch v.Type {
	case ValueObject:
		for _, f := range v.Fields {
			p.walk(f.Value, f.Key, joinPath(path, f.Key), out)
		}
	case ValueArray:
		for i, item := range v.Items {
			idx := strconv.Itoa(i)
			p.walk(item, idx, joinPath(path, idx), out)
		}
	case ValueString:
		if v.Str == "" || path == "" {
			return
		}
		if !IsSensitive(leafKey, v.Str) {
			return
		}
		c := p.Classify(leafKey, v.Str)
		c.Key = path
		*out = append(*out, c)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
