package services

import (
	"fmt"
	"strings"

	"github.com/CompassSecurity/keyleek/pkg/catalog"
	"github.com/CompassSecurity/keyleek/pkg/report"
	"github.com/spf13/cobra"
)

func NewServicesCmd() *cobra.Command {
	var category string
	var asJSON bool

	servicesCmd := &cobra.Command{
		Use:   "services",
		Short: "List the known API services",
		Example: `
keyleek services
keyleek services --category ai --output-json
		`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()

			services := c.Services()
			if category != "" {
				services = c.ByCategory(category)
				if len(services) == 0 {
					return fmt.Errorf("unknown category %q, expected one of %s", category, strings.Join(c.Categories(), ", "))
				}
			}

			return report.WriteServices(cmd.OutOrStdout(), services, asJSON)
		},
	}
	servicesCmd.Flags().StringVarP(&category, "category", "", "", "Only list services of this category")
	servicesCmd.Flags().BoolVarP(&asJSON, "output-json", "", false, "Print the services as JSON")

	return servicesCmd
}
