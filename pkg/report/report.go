// Package report renders parse outcomes for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/CompassSecurity/keyleek/pkg/catalog"
	"github.com/CompassSecurity/keyleek/pkg/config"
	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/CompassSecurity/keyleek/pkg/logging"
	"github.com/CompassSecurity/keyleek/pkg/parser"
)

const maxTableValueWidth = 60

// Source identifies the document an outcome was parsed from.
type Source struct {
	Name    string
	Type    logging.SourceType
	Archive string
}

type Options struct {
	Format        string
	MinConfidence float64
	ShowValues    bool
	// Catalog resolves service display names to ids. Nil disables the lookup.
	Catalog *catalog.Catalog
}

type jsonCandidate struct {
	parser.Candidate
	ServiceID string                 `json:"serviceId,omitempty"`
	Level     parser.ConfidenceLevel `json:"confidenceLevel"`
}

type jsonReport struct {
	Source     string          `json:"source"`
	Type       string          `json:"type"`
	Archive    string          `json:"archive,omitempty"`
	Format     parser.Format   `json:"format"`
	Count      int             `json:"count"`
	Candidates []jsonCandidate `json:"candidates"`
	Stats      parser.Stats    `json:"stats"`
}

// Filter returns the candidates scored at or above minConfidence.
func Filter(candidates []parser.Candidate, minConfidence float64) []parser.Candidate {
	result := make([]parser.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence >= minConfidence {
			result = append(result, c)
		}
	}
	return result
}

// Write renders outcome in opts.Format. The log format emits hit events through
// the global logger and does not use w.
func Write(w io.Writer, src Source, outcome parser.Outcome, opts Options) error {
	candidates := Filter(outcome.Candidates, opts.MinConfidence)
	if !opts.ShowValues {
		candidates = masked(candidates)
	}

	switch opts.Format {
	case config.OutputLog, "":
		writeLog(src, outcome.Format, candidates, opts)
		return nil
	case config.OutputTable:
		return writeTable(w, src, outcome.Format, candidates, opts)
	case config.OutputJSON:
		return writeJSON(w, src, outcome, candidates, opts)
	case config.OutputEnv:
		text := parser.ToAssignmentText(candidates)
		if text == "" {
			return nil
		}
		_, err := io.WriteString(w, text+format.GetPlatformAgnosticNewline())
		return err
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func masked(candidates []parser.Candidate) []parser.Candidate {
	result := make([]parser.Candidate, len(candidates))
	for i, c := range candidates {
		c.Value = format.Mask(c.Value)
		result[i] = c
	}
	return result
}

func serviceID(opts Options, service string) string {
	if opts.Catalog == nil || service == "" {
		return ""
	}
	if s, ok := opts.Catalog.Resolve(service); ok {
		return s.ID
	}
	return ""
}

func writeLog(src Source, docFormat parser.Format, candidates []parser.Candidate, opts Options) {
	sourceType := src.Type
	if sourceType == "" {
		sourceType = logging.SourceTypeFile
	}

	for _, c := range candidates {
		event := logging.Hit().
			Str("type", string(sourceType)).
			Str("file", src.Name).
			Str("format", string(docFormat)).
			Str("key", c.Key).
			Str("kind", string(c.Kind)).
			Float64("confidence", c.Confidence).
			Str("value", c.Value)

		if c.Service != "" {
			event = event.Str("service", c.Service)
		}
		if id := serviceID(opts, c.Service); id != "" {
			event = event.Str("serviceId", id)
		}
		if src.Archive != "" {
			event = event.Str("archive", src.Archive)
		}

		event.Msg("SECRET")
	}
}

func writeTable(w io.Writer, src Source, docFormat parser.Format, candidates []parser.Candidate, opts Options) error {
	title := src.Name
	if src.Archive != "" {
		title = src.Archive + ":" + src.Name
	}
	header := fmt.Sprintf("%s (%s, %d candidates)", title, docFormat, len(candidates))

	t := newTable("KEY", "KIND", "SERVICE", "SERVICE ID", "CONFIDENCE", "LEVEL", "VALUE")
	for _, c := range candidates {
		t.Row(
			c.Key,
			string(c.Kind),
			c.Service,
			serviceID(opts, c.Service),
			strconv.FormatFloat(c.Confidence, 'f', 2, 64),
			string(c.Level()),
			format.Truncate(c.Value, maxTableValueWidth),
		)
	}

	newline := format.GetPlatformAgnosticNewline()
	_, err := io.WriteString(w, header+newline+t.String()+newline)
	return err
}

func writeJSON(w io.Writer, src Source, outcome parser.Outcome, candidates []parser.Candidate, opts Options) error {
	report := jsonReport{
		Source:     src.Name,
		Type:       string(src.Type),
		Archive:    src.Archive,
		Format:     outcome.Format,
		Count:      len(candidates),
		Candidates: make([]jsonCandidate, 0, len(candidates)),
		Stats:      parser.Summarize(parser.Outcome{Candidates: candidates, Format: outcome.Format, Count: len(candidates)}),
	}
	for _, c := range candidates {
		report.Candidates = append(report.Candidates, jsonCandidate{
			Candidate: c,
			ServiceID: serviceID(opts, c.Service),
			Level:     c.Level(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed encoding report: %w", err)
	}
	return nil
}
