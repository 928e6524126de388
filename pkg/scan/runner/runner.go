// Package runner wires input loading, the parser and the optional TruffleHog
// extractor into one pass over a list of inputs.
package runner

import (
	"github.com/CompassSecurity/keyleek/pkg/config"
	"github.com/CompassSecurity/keyleek/pkg/input"
	"github.com/CompassSecurity/keyleek/pkg/parser"
	"github.com/CompassSecurity/keyleek/pkg/scanner/engine"
	"github.com/rs/zerolog/log"
)

// Result is the outcome for one loaded document.
type Result struct {
	Document input.Document
	Outcome  parser.Outcome
}

// HandlerFunc receives every result as soon as its document was parsed.
type HandlerFunc func(Result) error

// NewParser builds a parser configured by opts.
func NewParser(opts config.ParseOptions) *parser.Parser {
	if !opts.TruffleHog {
		return parser.New()
	}

	log.Debug().Int("threads", opts.MaxThreads).Str("timeout", opts.Timeout.String()).Msg("TruffleHog detectors enabled")
	return parser.New(parser.WithExtractors(engine.NewTruffleHogExtractor(engine.Options{
		MaxThreads: opts.MaxThreads,
		Timeout:    opts.Timeout,
	})))
}

// InputOptions maps parse options onto input loading options.
func InputOptions(opts config.ParseOptions) input.Options {
	return input.Options{
		MaxSize:   opts.MaxInputSize,
		MaxDepth:  opts.ArchiveDepth,
		StripANSI: opts.StripANSI,
	}
}

// Run loads every path, parses each document in order and hands the result to
// handle. No paths means standard input. The first load or handler error stops the run.
func Run(paths []string, opts config.ParseOptions, handle HandlerFunc) error {
	if len(paths) == 0 {
		paths = []string{input.StdinPath}
	}

	p := NewParser(opts)
	inputOpts := InputOptions(opts)

	for _, path := range paths {
		docs, err := input.Load(path, inputOpts)
		if err != nil {
			return err
		}
		log.Debug().Str("input", path).Int("documents", len(docs)).Msg("Loaded input")

		for _, doc := range docs {
			outcome := p.Parse(doc.Content)
			log.Debug().Str("document", doc.Name).Str("format", string(outcome.Format)).Int("count", outcome.Count).Msg("Parsed document")

			if err := handle(Result{Document: doc, Outcome: outcome}); err != nil {
				return err
			}
		}
	}

	return nil
}

// Merge combines the outcomes of several results into one ranked outcome.
// The format is kept when all results agree and is unstructured otherwise.
func Merge(results []Result) parser.Outcome {
	if len(results) == 1 {
		return results[0].Outcome
	}

	candidates := []parser.Candidate{}
	format := parser.FormatUnstructured
	for i, r := range results {
		if i == 0 {
			format = r.Outcome.Format
		} else if r.Outcome.Format != format {
			format = parser.FormatUnstructured
		}
		candidates = append(candidates, r.Outcome.Candidates...)
	}

	candidates = parser.Deduplicate(candidates)
	parser.SortByConfidence(candidates)
	return parser.Outcome{Candidates: candidates, Format: format, Count: len(candidates)}
}
