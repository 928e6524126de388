// Package flags registers the flags shared by the commands that parse input.
package flags

import (
	"github.com/CompassSecurity/keyleek/pkg/config"
	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/spf13/cobra"
)

// AddInputFlags adds the input loading and TruffleHog flags.
func AddInputFlags(cmd *cobra.Command, opts *config.ParseOptions, maxInputSize *string) {
	cmd.Flags().StringVarP(maxInputSize, "max-size", "", format.HumanSize(opts.MaxInputSize), "Max. size of a single input or archive member e.g. 10MB, 500kB")
	cmd.Flags().BoolVarP(&opts.StripANSI, "strip-ansi", "", opts.StripANSI, "Remove terminal escape sequences before parsing")
	cmd.Flags().IntVarP(&opts.ArchiveDepth, "archive-depth", "", opts.ArchiveDepth, "Max. nested archive depth to extract, 0 disables archive extraction")
	cmd.Flags().BoolVarP(&opts.TruffleHog, "trufflehog", "", opts.TruffleHog, "Additionally run the TruffleHog detectors (never verifies)")
	cmd.Flags().IntVarP(&opts.MaxThreads, "threads", "", opts.MaxThreads, "Nr of concurrent TruffleHog detectors")
	cmd.Flags().DurationVarP(&opts.Timeout, "timeout", "", opts.Timeout, "Max. TruffleHog run time per document e.g. 30s, 2m")
}

// AddOutputFlags adds the report rendering flags.
func AddOutputFlags(cmd *cobra.Command, opts *config.ParseOptions) {
	cmd.Flags().StringVarP(&opts.OutputFormat, "format", "f", opts.OutputFormat, "Output format: log, table, json or env")
	cmd.Flags().Float64VarP(&opts.MinConfidence, "min-confidence", "c", opts.MinConfidence, "Hide candidates scored below this confidence (0-1)")
	cmd.Flags().BoolVarP(&opts.ShowValues, "show-values", "", opts.ShowValues, "Print candidate values unmasked")
}

// Resolve parses the human readable size flag into opts and validates the result.
func Resolve(opts *config.ParseOptions, maxInputSize string) error {
	size, err := config.ParseMaxInputSize(maxInputSize)
	if err != nil {
		return err
	}
	opts.MaxInputSize = size
	return opts.Validate()
}
