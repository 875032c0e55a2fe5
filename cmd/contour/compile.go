package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contourhq/contour/internal/cli"
	"github.com/contourhq/contour/internal/model"
)

var compileSchemaDir string

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Validate then print the generated GraphQL schema",
	Example: `  # Compile the default schema directory and print the SDL
  contour compile

  # Compile a specific directory
  contour compile --schema-dir ./schemas`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.ResolvedSchemaDir(compileSchemaDir)

		result, err := loadSchema(dir)
		if err != nil {
			return err
		}
		if result.HasErrors() {
			printDiagnostics(result)
			return cli.SchemaParseError("schema has errors", nil)
		}

		fmt.Print(model.Schema(result.Graph))
		return nil
	},
}

func init() {
	compileCmd.Flags().StringVar(&compileSchemaDir, "schema-dir", "", "directory of .contour files")
}
