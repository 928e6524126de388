package docs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const rootDocName = "keyleek"

func displayName(cmd *cobra.Command) string {
	return cases.Title(language.Und, cases.NoLower).String(cmd.Name())
}

func linkHandler(s string) string {
	if s == rootDocName+".md" {
		return "/"
	}

	s = strings.TrimPrefix(s, rootDocName+"_")
	s = strings.TrimSuffix(s, ".md")
	s = strings.ReplaceAll(s, "_", "/")
	return "/" + s
}

func generateDocs(cmd *cobra.Command, dir string) error {
	var filename string

	if cmd.HasAvailableSubCommands() {
		dir = filepath.Join(dir, cmd.Name())
		if err := os.MkdirAll(dir, format.DirUserOnly); err != nil {
			return err
		}
		filename = filepath.Join(dir, "index.md")
	} else {
		filename = filepath.Join(dir, cmd.Name()+".md")
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := doc.GenMarkdownCustom(cmd, f, linkHandler); err != nil {
		return err
	}

	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		if err := generateDocs(c, dir); err != nil {
			return err
		}
	}

	return nil
}

type NavEntry struct {
	Label    string
	FilePath string
	Children []*NavEntry
}

func buildNav(cmd *cobra.Command, parentPath string) *NavEntry {
	entry := &NavEntry{Label: displayName(cmd)}

	if cmd.HasAvailableSubCommands() {
		folder := filepath.Join(parentPath, cmd.Name())
		entry.FilePath = filepath.ToSlash(filepath.Join(folder, "index.md"))
		for _, c := range cmd.Commands() {
			if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
				continue
			}
			entry.Children = append(entry.Children, buildNav(c, folder))
		}
	} else {
		entry.FilePath = filepath.ToSlash(filepath.Join(parentPath, cmd.Name()+".md"))
	}

	return entry
}

func convertNavToYaml(entries []*NavEntry) []map[string]interface{} {
	yamlList := []map[string]interface{}{}
	for _, e := range entries {
		navPath := strings.TrimPrefix(e.FilePath, rootDocName+"/")
		if len(e.Children) == 0 {
			yamlList = append(yamlList, map[string]interface{}{
				e.Label: strings.TrimSuffix(navPath, ".md"),
			})
		} else {
			yamlList = append(yamlList, map[string]interface{}{
				e.Label: convertNavToYaml(e.Children),
			})
		}
	}
	return yamlList
}

func writeMkdocsYaml(rootCmd *cobra.Command, outputDir string) error {
	rootEntry := buildNav(rootCmd, "")
	mkdocs := map[string]interface{}{
		"site_name": "Keyleek CLI Docs",
		"docs_dir":  rootDocName,
		"site_dir":  "site",
		"theme": map[string]interface{}{
			"name": "material",
			"palette": map[string]string{
				"scheme":  "slate",
				"primary": "green",
			},
		},
		"nav": convertNavToYaml(rootEntry.Children),
	}

	yamlData, err := yaml.Marshal(mkdocs)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outputDir, "mkdocs.yml"), yamlData, format.FilePublicRead)
}

// Generate writes one Markdown page per command of rootCmd plus a mkdocs.yml
// navigation file into outputDir. An existing outputDir is replaced.
func Generate(rootCmd *cobra.Command, outputDir string) error {
	if _, err := os.Stat(outputDir); err == nil {
		log.Debug().Str("folder", outputDir).Msg("Output directory exists, deleting...")
		if err := os.RemoveAll(outputDir); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(outputDir, format.DirUserOnly); err != nil {
		return err
	}

	rootCmd.DisableAutoGenTag = true
	if err := generateDocs(rootCmd, outputDir); err != nil {
		return err
	}

	return writeMkdocsYaml(rootCmd, outputDir)
}

func NewDocsCmd() *cobra.Command {
	var outputDir string

	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate CLI documentation",
		Long:  "Generate Markdown documentation for all commands and a matching mkdocs.yml. Build the site with 'mkdocs build' in the output folder.",
		Example: `
keyleek docs --output ./cli-docs
		`,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := Generate(cmd.Root(), outputDir); err != nil {
				return err
			}
			log.Info().Str("folder", outputDir).Msg("Markdown successfully generated")
			return nil
		},
	}
	docsCmd.Flags().StringVarP(&outputDir, "output", "o", "./cli-docs", "Folder to write the documentation to")

	return docsCmd
}
