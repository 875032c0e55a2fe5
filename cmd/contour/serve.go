package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contourhq/contour/internal/cli"
	"github.com/contourhq/contour/internal/gateway"
	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/runtime"
	"github.com/contourhq/contour/internal/store"
	"github.com/contourhq/contour/internal/store/memory"
	"github.com/contourhq/contour/internal/store/postgres"
)

var (
	serveSchemaDir string
	serveAddr      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Validate, compile, and serve the schema over HTTP",
	Long: `Validate, compile, and serve the schema over HTTP using the
reference execution layer: POST /graphql dispatches one operation,
GET /meta/:model returns resolved field metadata. If database.host (or
database.url) is configured, records are persisted to PostgreSQL;
otherwise an in-memory store is used and records do not survive a
restart.`,
	Example: `  # Serve the default schema directory on :8080
  contour serve

  # Serve a specific directory on a custom address
  contour serve --schema-dir ./schemas --addr :9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.ResolvedSchemaDir(resolveString(serveSchemaDir, cfg.Serve.SchemaDir))
		addr := resolveString(serveAddr, cfg.Serve.Addr)

		result, err := loadSchema(dir)
		if err != nil {
			return err
		}
		if result.HasErrors() {
			printDiagnostics(result)
			return cli.SchemaParseError("schema has errors", nil)
		}

		st, closeStore, err := openStore(result)
		if err != nil {
			return err
		}
		defer closeStore()

		ex := runtime.New(result.Graph, st)
		gw := gateway.New(result.Graph, ex)

		if !quiet {
			fmt.Printf("contour serving %d model(s) on %s\n", len(result.Graph.Models()), addr)
		}
		return gw.Router().Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveSchemaDir, "schema-dir", "", "directory of .contour files")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on")
}

// openStore picks the in-memory or postgres store per configuration,
// applying the compiled schema's DDL when a database is configured.
func openStore(result model.Result) (store.Store, func(), error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, nil, cli.ConfigError("resolving database DSN", err)
	}
	if dsn == "" {
		return memory.New(), func() {}, nil
	}

	db, err := postgres.Open(dsn)
	if err != nil {
		return nil, nil, cli.DBConnectError("connecting to database", err)
	}
	if err := postgres.ApplyDDL(db, postgres.GenerateDDL(result.Graph)); err != nil {
		_ = db.Close()
		return nil, nil, cli.DBConnectError("applying schema DDL", err)
	}

	st := postgres.New(db, result.Graph)
	return st, func() { _ = db.Close() }, nil
}
