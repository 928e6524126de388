package parse

import (
	"io"

	"github.com/CompassSecurity/keyleek/internal/cmd/flags"
	"github.com/CompassSecurity/keyleek/pkg/catalog"
	"github.com/CompassSecurity/keyleek/pkg/config"
	"github.com/CompassSecurity/keyleek/pkg/report"
	"github.com/CompassSecurity/keyleek/pkg/scan/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewParseCmd() *cobra.Command {
	opts := config.DefaultParseOptions()
	var maxInputSize string

	parseCmd := &cobra.Command{
		Use:   "parse [file|-]...",
		Short: "Extract candidate credentials from files, archives or stdin",
		Long: `Extract API keys, tokens and other secrets from arbitrary text.

Every input is classified as a structured document (JSON, JSON5 or a YAML mapping), KEY=VALUE lines or free text.
Candidates are attributed to a service where possible, scored between 0 and 1 and ranked by that score.
Values are masked unless --show-values is set. Without arguments standard input is read.
		`,
		Example: `
# Parse a dotenv file
keyleek parse .env

# Parse a config dump from stdin and print a table of the confident hits only
kubectl get cm app -o json | keyleek parse - --format table --min-confidence 0.8

# Parse every text file inside a build artifact, including the TruffleHog detectors
keyleek parse artifacts.zip --trufflehog --threads 8
		`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.Resolve(&opts, maxInputSize); err != nil {
				return err
			}
			return Parse(cmd.OutOrStdout(), args, opts)
		},
	}
	flags.AddInputFlags(parseCmd, &opts, &maxInputSize)
	flags.AddOutputFlags(parseCmd, &opts)

	return parseCmd
}

// Parse renders a report for every document loaded from paths.
func Parse(w io.Writer, paths []string, opts config.ParseOptions) error {
	reportOpts := report.Options{
		Format:        opts.OutputFormat,
		MinConfidence: opts.MinConfidence,
		ShowValues:    opts.ShowValues,
		Catalog:       catalog.Default(),
	}

	documents, candidates := 0, 0
	err := runner.Run(paths, opts, func(r runner.Result) error {
		documents++
		candidates += len(report.Filter(r.Outcome.Candidates, opts.MinConfidence))
		src := report.Source{Name: r.Document.Name, Type: r.Document.Source, Archive: r.Document.Archive}
		return report.Write(w, src, r.Outcome, reportOpts)
	})
	if err != nil {
		return err
	}

	event := log.Debug()
	if opts.OutputFormat == config.OutputLog {
		event = log.Info()
	}
	event.Int("documents", documents).Int("candidates", candidates).Msg("Parsing done")
	return nil
}
