package export

import (
	"fmt"
	"io"
	"os"

	"github.com/CompassSecurity/keyleek/internal/cmd/flags"
	"github.com/CompassSecurity/keyleek/pkg/config"
	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/CompassSecurity/keyleek/pkg/parser"
	"github.com/CompassSecurity/keyleek/pkg/scan/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewExportCmd() *cobra.Command {
	opts := config.DefaultParseOptions()
	var maxInputSize string
	var outputFile string

	exportCmd := &cobra.Command{
		Use:   "export [file|-]...",
		Short: "Write the confident candidates as KEY=VALUE lines",
		Long: `Parse all inputs and write every candidate with a confidence above 0.5 as an unmasked KEY=VALUE line.
Candidates found in several inputs are written once. The output file is created readable by the owner only.`,
		Example: `
# Turn a JSON config into a dotenv file
keyleek export config.json -o .env.extracted

# Print to stdout
cat notes.txt | keyleek export
		`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.Resolve(&opts, maxInputSize); err != nil {
				return err
			}
			return Export(cmd.OutOrStdout(), args, outputFile, opts)
		},
	}
	flags.AddInputFlags(exportCmd, &opts, &maxInputSize)
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write to this file instead of stdout")

	return exportCmd
}

// Export merges the outcomes of all paths and writes them as assignment text
// to outputFile, or to w when outputFile is empty.
func Export(w io.Writer, paths []string, outputFile string, opts config.ParseOptions) error {
	var results []runner.Result
	err := runner.Run(paths, opts, func(r runner.Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		return err
	}

	merged := runner.Merge(results)
	text := parser.ToAssignmentText(merged.Candidates)
	if text != "" {
		text += format.GetPlatformAgnosticNewline()
	}

	if outputFile == "" {
		_, err := io.WriteString(w, text)
		return err
	}

	if err := os.WriteFile(outputFile, []byte(text), format.FileUserReadWrite); err != nil {
		return fmt.Errorf("failed writing export file: %w", err)
	}
	log.Info().Str("file", outputFile).Int("candidates", merged.Count).Msg("Exported candidates")
	return nil
}
