// Package model is a thin public facade over internal/semantic and
// internal/transpile: it exposes the types and entry points that
// cmd/contour, internal/runtime, and internal/gateway need without
// requiring them to import the internal packages directly. Mirrors the
// teacher's pkg/compiler wraps-an-internal-package layering.
package model

import (
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/internal/transpile"
	"github.com/contourhq/contour/pkg/ast"
	"github.com/contourhq/contour/pkg/gqlast"
	"github.com/contourhq/contour/pkg/gqlprint"
	"github.com/contourhq/contour/pkg/sdlparse"
)

// Graph is the resolved model graph: models, enums, and config, with
// relations fully paired and cardinality derived.
type Graph = semantic.Graph

// ModelDecl, EnumDecl, and Field are re-exported so callers can walk a
// Graph without importing internal/semantic.
type ModelDecl = semantic.ModelDecl
type EnumDecl = semantic.EnumDecl
type Field = semantic.Field

// Diagnostic is one analysis finding; Severity distinguishes hard
// failures from warnings.
type Diagnostic = semantic.Diagnostic
type Severity = semantic.Severity

const (
	SeverityError   = semantic.Error
	SeverityWarning = semantic.Warning
)

// Result is the outcome of compiling one SDL source: either a usable
// Graph with zero or more warnings, or a Graph plus one or more errors
// (diagnostics accumulate across the whole file; nothing aborts early).
type Result = semantic.Result

// Compile parses and analyzes one named SDL source, returning the
// resolved Result. A non-nil error is returned only for a syntax error
// the parser cannot recover from; semantic diagnostics are reported via
// Result.Diagnostics, not the error return.
func Compile(file, src string) (Result, error) {
	decls, err := sdlparse.Parse(file, src)
	if err != nil {
		return Result{}, err
	}
	return semantic.Analyze(decls), nil
}

// ParseDeclarations exposes the raw parser for callers that need the
// untyped ast.Declaration tree directly (e.g. a future formatter).
func ParseDeclarations(file, src string) ([]ast.Declaration, error) {
	return sdlparse.Parse(file, src)
}

// Schema renders the full GraphQL SDL text for a resolved Graph.
func Schema(g *Graph) string {
	return gqlprint.Print(transpile.Transpile(g))
}

// SchemaDocument returns the schema AST without rendering it to text,
// for callers (e.g. a future introspection endpoint) that want the
// structured form.
func SchemaDocument(g *Graph) *gqlast.Document {
	return transpile.Transpile(g)
}
