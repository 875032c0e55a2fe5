package transpile

import (
	"strings"

	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/gqlast"
)

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// pluralName is the naive English pluralization used for every
// list-shaped root field name (ms, msConnection,
// deleteManyMsConnection, ...). Models are named in the singular by convention,
// so a bare trailing "s" is sufficient for this schema's vocabulary.
func pluralName(m *semantic.ModelDecl) string { return m.Name + "s" }

// queryRootFields returns one model's contribution to the root Query
// type: singular lookup, plural list, and connection.
func queryRootFields(m *semantic.ModelDecl) []gqlast.FieldDef {
	single := lowerFirst(m.Name)
	plural := lowerFirst(pluralName(m))
	return []gqlast.FieldDef{
		{
			Name: single,
			Args: []gqlast.InputValue{{Name: "where", Type: gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput"))}},
			Type: gqlast.Named(m.Name),
		},
		{
			Name: plural,
			Args: paginationArgs(m.Name),
			Type: gqlast.NonNullT(listNonNull(m.Name)),
		},
		{
			Name: plural + "Connection",
			Args: paginationArgs(m.Name),
			Type: gqlast.NonNullT(gqlast.Named(m.Name + "Connection")),
		},
	}
}

// mutationRootFields returns one model's contribution to the root
// Mutation type. updateManyMsConnection is omitted when the model has
// no field eligible for MUpdateManyInput (see updateManyScalarFields).
func mutationRootFields(m *semantic.ModelDecl) []gqlast.FieldDef {
	plural := pluralName(m)
	fl := newFieldList()
	fl.Add(gqlast.FieldDef{
		Name: "create" + m.Name,
		Args: []gqlast.InputValue{{Name: "data", Type: gqlast.NonNullT(gqlast.Named(m.Name + "CreateInput"))}},
		Type: gqlast.NonNullT(gqlast.Named(m.Name)),
	})
	fl.Add(gqlast.FieldDef{
		Name: "update" + m.Name,
		Args: []gqlast.InputValue{
			{Name: "where", Type: gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput"))},
			{Name: "data", Type: gqlast.NonNullT(gqlast.Named(m.Name + "UpdateInput"))},
		},
		Type: gqlast.Named(m.Name),
	})
	fl.Add(gqlast.FieldDef{
		Name: "delete" + m.Name,
		Args: []gqlast.InputValue{{Name: "where", Type: gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput"))}},
		Type: gqlast.Named(m.Name),
	})
	fl.Add(gqlast.FieldDef{
		Name: "upsert" + m.Name,
		Args: []gqlast.InputValue{
			{Name: "where", Type: gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput"))},
			{Name: "data", Type: gqlast.NonNullT(gqlast.Named(m.Name + "UpsertInput"))},
		},
		Type: gqlast.NonNullT(gqlast.Named(m.Name)),
	})
	fl.AddIf(len(updateManyScalarFields(m)) > 0, gqlast.FieldDef{
		Name: "updateMany" + plural + "Connection",
		Args: []gqlast.InputValue{
			{Name: "where", Type: gqlast.Named(m.Name + "WhereInput")},
			{Name: "data", Type: gqlast.NonNullT(gqlast.Named(m.Name + "UpdateManyInput"))},
		},
		Type: gqlast.NonNullT(gqlast.Named(m.Name + "Connection")),
	})
	fl.Add(gqlast.FieldDef{
		Name: "deleteMany" + plural + "Connection",
		Args: []gqlast.InputValue{{Name: "where", Type: gqlast.Named(m.Name + "WhereInput")}},
		Type: gqlast.NonNullT(gqlast.Named(m.Name + "Connection")),
	})
	return fl.Build()
}

// rootTypes assembles the Query and Mutation root types for the whole
// graph, in model declaration order, plus the single Node lookup field.
func rootTypes(g *semantic.Graph) []gqlast.Definition {
	queryFields := newFieldList()
	queryFields.Add(gqlast.FieldDef{
		Name: "node",
		Args: []gqlast.InputValue{{Name: "id", Type: gqlast.NonNullT(gqlast.Named("ID"))}},
		Type: gqlast.Named("Node"),
	})
	mutationFields := newFieldList()
	for _, m := range g.Models() {
		for _, f := range queryRootFields(m) {
			queryFields.Add(f)
		}
		for _, f := range mutationRootFields(m) {
			mutationFields.Add(f)
		}
	}
	return []gqlast.Definition{
		&gqlast.TypeDef{Name: "Query", Fields: queryFields.Build()},
		&gqlast.TypeDef{Name: "Mutation", Fields: mutationFields.Build()},
	}
}
