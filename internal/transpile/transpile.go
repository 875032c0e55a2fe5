// Package transpile implements the schema transpiler: it turns a
// semantic.Graph into a pkg/gqlast.Document. Generation is purely a
// function of the graph's already-deterministic declaration order —
// no pass here reorders or filters based on anything but the model's
// own shape, so two runs over the same graph always print identical
// text.
//
// Transpilation runs in three phases mirroring the teacher's
// Analysis/Planning/Rendering split: the prelude is emitted once
// (Analysis-equivalent, no per-model state), then every model
// contributes its fixed sibling sequence of definitions (Planning),
// and finally the root Query/Mutation types close out the document
// (Rendering). pkg/gqlprint does the actual text formatting; this
// package only builds the AST.
package transpile

import (
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/gqlast"
)

// Transpile builds the full GraphQL schema document for g.
func Transpile(g *semantic.Graph) *gqlast.Document {
	doc := &gqlast.Document{}
	doc.Definitions = append(doc.Definitions, prelude()...)

	for _, e := range g.Enums() {
		doc.Definitions = append(doc.Definitions, enumDef(e))
	}

	for _, m := range g.Models() {
		doc.Definitions = append(doc.Definitions, modelDefinitions(m)...)
	}

	doc.Definitions = append(doc.Definitions, rootTypes(g)...)
	return doc
}

// modelDefinitions returns one model's full sibling sequence: object
// type, edge/connection, create inputs, update inputs, upsert/connect
// inputs, where inputs, where-unique input, order-by enum.
func modelDefinitions(m *semantic.ModelDecl) []gqlast.Definition {
	var defs []gqlast.Definition
	defs = append(defs, objectType(m))
	defs = append(defs, edgeAndConnectionTypes(m)...)
	defs = append(defs, createInput(m))
	defs = append(defs, createInlineInputs(m)...)
	defs = append(defs, updateInput(m))
	defs = append(defs, updateInlineInputs(m)...)
	if umi := updateManyInput(m); umi != nil {
		defs = append(defs, umi)
	}
	defs = append(defs, upsertInput(m))
	defs = append(defs, connectInput(m))
	defs = append(defs, whereInput(m))
	defs = append(defs, whereUniqueInput(m))
	defs = append(defs, orderByEnum(m))
	return defs
}

func enumDef(e *semantic.EnumDecl) *gqlast.EnumDef {
	return &gqlast.EnumDef{Name: e.Name, Values: e.Variants}
}
