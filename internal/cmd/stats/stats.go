package stats

import (
	"fmt"
	"io"

	"github.com/CompassSecurity/keyleek/internal/cmd/flags"
	"github.com/CompassSecurity/keyleek/pkg/config"
	"github.com/CompassSecurity/keyleek/pkg/parser"
	"github.com/CompassSecurity/keyleek/pkg/report"
	"github.com/CompassSecurity/keyleek/pkg/scan/runner"
	"github.com/spf13/cobra"
)

func NewStatsCmd() *cobra.Command {
	opts := config.DefaultParseOptions()
	opts.OutputFormat = config.OutputTable
	var maxInputSize string

	statsCmd := &cobra.Command{
		Use:     "stats [file|-]...",
		Short:   "Summarize the candidates found in the inputs",
		Long:    "Count candidates by kind and service across all inputs, plus the number of candidates scored above 0.7.",
		Example: `keyleek stats .env config.json --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.Resolve(&opts, maxInputSize); err != nil {
				return err
			}
			return Stats(cmd.OutOrStdout(), args, opts)
		},
	}
	flags.AddInputFlags(statsCmd, &opts, &maxInputSize)
	statsCmd.Flags().StringVarP(&opts.OutputFormat, "format", "f", opts.OutputFormat, "Output format: table or json")

	return statsCmd
}

func Stats(w io.Writer, paths []string, opts config.ParseOptions) error {
	if opts.OutputFormat != config.OutputTable && opts.OutputFormat != config.OutputJSON {
		return fmt.Errorf("stats supports the table and json formats, got %q", opts.OutputFormat)
	}

	var results []runner.Result
	err := runner.Run(paths, opts, func(r runner.Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		return err
	}

	return report.WriteStats(w, parser.Summarize(runner.Merge(results)), opts.OutputFormat == config.OutputJSON)
}
