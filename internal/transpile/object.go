package transpile

import (
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/gqlast"
)

// objectType emits `type M implements Node { ... }`: every scalar field
// (the id field rendered as ID with a @map directive back to its
// declared name), enum fields as enum refs, and relation fields as
// either a single optional/required reference or a pair of list/
// connection fields.
func objectType(m *semantic.ModelDecl) *gqlast.TypeDef {
	fl := newFieldList()
	for _, f := range m.Fields {
		switch {
		case f == m.IDField:
			fl.Add(idField(f))
		case f.IsRelation():
			addRelationObjectFields(fl, f)
		default:
			fl.Add(scalarObjectField(f))
		}
	}
	return &gqlast.TypeDef{Name: m.Name, Implements: []string{"Node"}, Fields: fl.Build()}
}

func idField(f *semantic.Field) gqlast.FieldDef {
	return gqlast.FieldDef{
		Name: "id",
		Type: gqlast.NonNullT(gqlast.Named("ID")),
		Directives: []gqlast.Directive{
			{Name: "map", Args: map[string]string{"name": quote(f.Name)}},
			{Name: "unique"},
		},
	}
}

func scalarObjectField(f *semantic.Field) gqlast.FieldDef {
	base := gqlast.Named(scalarGraphQLName(f.Type))
	t := base
	if f.IsArray() {
		t = gqlast.ListOf(gqlast.NonNullT(base))
		t.NonNull = true
	} else if !f.Optional() {
		t = gqlast.NonNullT(base)
	}
	var dirs []gqlast.Directive
	if f.Attrs.Unique {
		dirs = append(dirs, gqlast.Directive{Name: "unique"})
	}
	if f.Attrs.Indexed {
		dirs = append(dirs, gqlast.Directive{Name: "indexed"})
	}
	if f.Attrs.MappedName != nil {
		dirs = append(dirs, gqlast.Directive{Name: "map", Args: map[string]string{"name": quote(*f.Attrs.MappedName)}})
	}
	return gqlast.FieldDef{Name: f.Name, Type: t, Directives: dirs}
}

// addRelationObjectFields emits the singular reference field, or the
// list + connection pair, for one relation field.
func addRelationObjectFields(fl *fieldList, f *semantic.Field) {
	other := f.Type.RefName
	if !f.IsArray() {
		t := gqlast.Named(other)
		if !f.Optional() {
			t = gqlast.NonNullT(t)
		}
		fl.Add(gqlast.FieldDef{Name: f.Name, Type: t})
		return
	}
	listName := f.Name
	connName := f.Name + "Connection"
	fl.Add(gqlast.FieldDef{
		Name: listName,
		Args: paginationArgs(other),
		Type: gqlast.NonNullT(listNonNull(other)),
	})
	fl.Add(gqlast.FieldDef{
		Name: connName,
		Args: paginationArgs(other),
		Type: gqlast.NonNullT(gqlast.Named(other + "Connection")),
	})
}

func listNonNull(name string) gqlast.Type {
	t := gqlast.ListOf(gqlast.NonNullT(gqlast.Named(name)))
	return t
}

// edgeAndConnectionTypes emits `MEdge` and `MConnection`.
func edgeAndConnectionTypes(m *semantic.ModelDecl) []gqlast.Definition {
	edge := &gqlast.TypeDef{
		Name: m.Name + "Edge",
		Fields: []gqlast.FieldDef{
			{Name: "node", Type: gqlast.NonNullT(gqlast.Named(m.Name))},
			{Name: "cursor", Type: gqlast.NonNullT(gqlast.Named("String"))},
		},
	}
	conn := &gqlast.TypeDef{
		Name: m.Name + "Connection",
		Fields: []gqlast.FieldDef{
			{Name: "pageInfo", Type: gqlast.NonNullT(gqlast.Named("PageInfo"))},
			{Name: "edges", Type: gqlast.NonNullT(listNonNull(m.Name + "Edge"))},
			{Name: "aggregate", Type: gqlast.NonNullT(gqlast.Named("Aggregate"))},
		},
	}
	return []gqlast.Definition{edge, conn}
}

func quote(s string) string { return `"` + s + `"` }
