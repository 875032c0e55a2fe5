package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/contourhq/contour/internal/cli"
	"github.com/contourhq/contour/internal/model"
)

var validateSchemaDir string

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run semantic analysis and print diagnostics",
	Long:  `Parse every *.contour file in the schema directory and run semantic analysis, printing every diagnostic found.`,
	Example: `  # Validate the default schema directory
  contour validate

  # Validate a specific directory
  contour validate --schema-dir ./schemas`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.ResolvedSchemaDir(resolveString(validateSchemaDir, cfg.Validate.SchemaDir))

		result, err := loadSchema(dir)
		if err != nil {
			return err
		}

		printDiagnostics(result)

		if !quiet {
			if result.HasErrors() {
				fmt.Println(errorStyle.Render("schema is invalid"))
			} else {
				fmt.Printf("%s %d model(s), %d enum(s)\n",
					okStyle.Render("schema is valid —"), len(result.Graph.Models()), len(result.Graph.Enums()))
			}
		}

		if result.HasErrors() {
			return cli.SchemaParseError("schema has errors", nil)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaDir, "schema-dir", "", "directory of .contour files")
}

func printDiagnostics(result model.Result) {
	for _, d := range result.Diagnostics {
		style := warnStyle
		label := "warning"
		if d.Severity == model.SeverityError {
			style = errorStyle
			label = "error"
		}
		fmt.Fprintf(os.Stderr, "%s %s\n", style.Render(label+":"), d.Message)
		if d.Span.File != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", dimStyle.Render(fmt.Sprintf("at %s:%d:%d", d.Span.File, d.Span.Line, d.Span.Col)))
		}
	}
}
