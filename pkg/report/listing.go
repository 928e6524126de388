package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/CompassSecurity/keyleek/pkg/catalog"
	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/CompassSecurity/keyleek/pkg/parser"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeRendered(w io.Writer, t *table.Table) error {
	_, err := io.WriteString(w, t.String()+format.GetPlatformAgnosticNewline())
	return err
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed encoding output: %w", err)
	}
	return nil
}

// WriteStats renders summary counts as a table or as JSON.
func WriteStats(w io.Writer, stats parser.Stats, asJSON bool) error {
	if asJSON {
		return writeIndentedJSON(w, stats)
	}

	t := newTable("METRIC", "VALUE")
	t.Row("total", strconv.Itoa(stats.TotalKeys))
	t.Row("high confidence", strconv.Itoa(stats.HighConfidenceCount))
	for _, kind := range parser.Kinds {
		if n, ok := stats.ByKind[kind]; ok {
			t.Row("kind "+string(kind), strconv.Itoa(n))
		}
	}

	services := make([]string, 0, len(stats.ByService))
	for s := range stats.ByService {
		services = append(services, s)
	}
	slices.Sort(services)
	for _, s := range services {
		t.Row("service "+s, strconv.Itoa(stats.ByService[s]))
	}

	return writeRendered(w, t)
}

// WriteSignatures lists a signature table in matching order.
func WriteSignatures(w io.Writer, signatures []parser.Signature) error {
	t := newTable("#", "NAME", "KIND", "SERVICE", "CONFIDENCE", "PATTERN")
	for i, sig := range signatures {
		pattern := ""
		if sig.Matcher != nil {
			pattern = sig.Matcher.String()
		}
		t.Row(strconv.Itoa(i+1), sig.Name, string(sig.Kind), sig.Service, strconv.FormatFloat(sig.BaseConfidence, 'f', 2, 64), pattern)
	}
	return writeRendered(w, t)
}

// WriteServices lists catalog services as a table or as JSON.
func WriteServices(w io.Writer, services []catalog.Service, asJSON bool) error {
	if asJSON {
		if services == nil {
			services = []catalog.Service{}
		}
		return writeIndentedJSON(w, services)
	}

	t := newTable("ID", "NAME", "CATEGORY", "KEY NAME", "ALIASES", "WEBSITE")
	for _, s := range services {
		t.Row(s.ID, s.Name, s.Category, s.KeyName, strings.Join(s.Aliases, ", "), s.Website)
	}
	return writeRendered(w, t)
}
