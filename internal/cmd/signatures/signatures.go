package signatures

import (
	"github.com/CompassSecurity/keyleek/pkg/parser"
	"github.com/CompassSecurity/keyleek/pkg/report"
	"github.com/spf13/cobra"
)

func NewSignaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signatures",
		Short: "List the built-in credential signatures",
		Long:  "List the signatures in matching order. The first signature matching a value decides its kind and service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.WriteSignatures(cmd.OutOrStdout(), parser.New().Signatures())
		},
	}
}
