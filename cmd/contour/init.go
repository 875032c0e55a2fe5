package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var initSchemaDir string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter SDL file interactively",
	Long:  `Prompt for a first model name and a handful of fields, then write a starter .contour file to the schema directory.`,
	Example: `  # Scaffold into the default schema directory
  contour init

  # Scaffold into a specific directory
  contour init --schema-dir ./schemas`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.ResolvedSchemaDir(initSchemaDir)

		var modelName string
		var fieldLines string
		var provider string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Datastore provider").
					Value(&provider).
					Placeholder("postgres"),
				huh.NewInput().
					Title("First model name").
					Value(&modelName).
					Placeholder("Post").
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("a model name is required")
						}
						return nil
					}),
				huh.NewText().
					Title("Fields (one per line, e.g. \"title ShortStr\")").
					Value(&fieldLines).
					Placeholder("title ShortStr\npublished Boolean @default(false)"),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		if provider == "" {
			provider = "postgres"
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating schema directory: %w", err)
		}

		path := filepath.Join(dir, "schema.contour")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, not overwriting", path)
		}

		if err := os.WriteFile(path, []byte(scaffoldSource(provider, modelName, fieldLines)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		if !quiet {
			fmt.Printf("wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initSchemaDir, "schema-dir", "", "directory to scaffold into")
}

func scaffoldSource(provider, modelName, fieldLines string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "config db {\n  provider = %q\n}\n\n", provider)
	fmt.Fprintf(&b, "model %s {\n  id ShortStr @id @default(auto())\n", modelName)
	for _, line := range strings.Split(fieldLines, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}
	b.WriteString("}\n")
	return b.String()
}
