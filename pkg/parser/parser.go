// Package parser extracts candidate credentials from arbitrary text.
//
// A parse call detects the input layout (structured document, KEY=VALUE lines
// or free text), runs the matching extractors plus the signature scan, and
// returns a deduplicated list ranked by confidence. Parsing is a pure function
// of the input and the tables a Parser was built with; a Parser holds no state
// between calls and is safe for concurrent use.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNilInput is returned when ParseReader is called without a reader.
var ErrNilInput = errors.New("parser: nil input")

// Parser extracts candidates using a fixed set of tables.
type Parser struct {
	signatures     []Signature
	serviceMapping []ServiceAlias
	keyNameRules   []KeyNameRule
	extractors     []Extractor
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithSignatures replaces the signature table. Order is matching priority.
func WithSignatures(signatures []Signature) Option {
	return func(p *Parser) {
		p.signatures = append([]Signature(nil), signatures...)
	}
}

// WithServiceMapping replaces the key-name to service table.
func WithServiceMapping(mapping []ServiceAlias) Option {
	return func(p *Parser) {
		p.serviceMapping = append([]ServiceAlias(nil), mapping...)
	}
}

// WithKeyNameRules replaces the key-name heuristics.
func WithKeyNameRules(rules []KeyNameRule) Option {
	return func(p *Parser) {
		p.keyNameRules = append([]KeyNameRule(nil), rules...)
	}
}

// WithExtractors appends candidate sources that run after the signature scan.
// Their candidates lose deduplication ties against the built-in extractors.
func WithExtractors(extractors ...Extractor) Option {
	return func(p *Parser) {
		p.extractors = append(p.extractors, extractors...)
	}
}

// New builds a Parser using the default tables unless overridden.
func New(opts ...Option) *Parser {
	p := &Parser{
		signatures:     DefaultSignatures(),
		serviceMapping: DefaultServiceMapping(),
		keyNameRules:   DefaultKeyNameRules(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Signatures returns a copy of the parser's signature table.
func (p *Parser) Signatures() []Signature {
	return append([]Signature(nil), p.signatures...)
}

var defaultParser = New()

// Parse runs the default parser over text.
func Parse(text string) Outcome {
	return defaultParser.Parse(text)
}

// ParseReader reads all of r and parses it with the default parser.
func ParseReader(r io.Reader) (Outcome, error) {
	return defaultParser.ParseReader(r)
}

// ParseReader reads all of r and parses it.
func (p *Parser) ParseReader(r io.Reader) (Outcome, error) {
	if r == nil {
		return Outcome{}, ErrNilInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading parser input: %w", err)
	}

	return p.Parse(string(data)), nil
}

// Parse extracts, deduplicates and ranks the candidates found in text.
func (p *Parser) Parse(text string) Outcome {
	trimmed := strings.TrimSpace(text)
	format, root := detect(trimmed)

	var candidates []Candidate
	switch format {
	case FormatStructured:
		candidates = append(candidates, p.ExtractStructured(root)...)
	case FormatLineOriented:
		candidates = append(candidates, p.ExtractLines(text)...)
	default:
		if doc, ok := decodeYAMLMapping(trimmed); ok {
			format = FormatAmbiguous
			candidates = append(candidates, p.ExtractStructured(doc)...)
			candidates = append(candidates, p.ExtractLines(text)...)
		}
	}

	candidates = append(candidates, p.ExtractByPattern(text)...)

	for _, extractor := range p.extractors {
		extra := extractor.Extract(text)
		log.Trace().Str("extractor", extractor.Name()).Int("count", len(extra)).Msg("Ran additional extractor")
		candidates = append(candidates, extra...)
	}

	candidates = Finalize(candidates)

	return Outcome{
		Candidates: candidates,
		Format:     format,
		Count:      len(candidates),
	}
}
