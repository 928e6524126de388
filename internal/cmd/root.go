package cmd

import (
	"github.com/CompassSecurity/keyleek/internal/cmd/common"
	"github.com/CompassSecurity/keyleek/internal/cmd/docs"
	"github.com/CompassSecurity/keyleek/internal/cmd/export"
	"github.com/CompassSecurity/keyleek/internal/cmd/parse"
	"github.com/CompassSecurity/keyleek/internal/cmd/services"
	"github.com/CompassSecurity/keyleek/internal/cmd/signatures"
	"github.com/CompassSecurity/keyleek/internal/cmd/stats"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "keyleek",
		Short: "Extract API keys and secrets from unstructured text",
		Long: `Keyleek pulls credentials out of pasted config dumps, dotenv files, chat logs and build artifacts.
It scores every candidate, attributes it to a service where possible and exports the result as KEY=VALUE lines.`,
		Version:       common.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "extract", Title: "Extraction Commands"},
		&cobra.Group{ID: "reference", Title: "Reference Commands"},
	)

	for _, c := range []*cobra.Command{parse.NewParseCmd(), export.NewExportCmd(), stats.NewStatsCmd()} {
		c.GroupID = "extract"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{signatures.NewSignaturesCmd(), services.NewServicesCmd()} {
		c.GroupID = "reference"
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(docs.NewDocsCmd())

	common.SetupPersistentPreRun(rootCmd)
	common.AddCommonFlags(rootCmd)

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	return rootCmd
}
