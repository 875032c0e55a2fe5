package transpile

import (
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/gqlast"
)

// updateInput emits `input MUpdateInput`: every scalar field optional
// regardless of its SDL arity, since an update only ever touches the
// fields the caller supplies. Relation-owning scalars are excluded —
// set only through the relation field's own inline input. Relation
// fields become nested inline update inputs carrying the full action
// set.
func updateInput(m *semantic.ModelDecl) *gqlast.InputDef {
	relScalars := m.RelationScalarFieldNames()
	iv := newInputValueList()
	for _, f := range m.Fields {
		if f == m.IDField {
			continue
		}
		if f.IsRelation() {
			iv.Add(updateRelationField(f))
			continue
		}
		// Relation-owning scalars are updated through the relation
		// field's own *UpdateInlineInput, not set directly.
		if relScalars[f.Name] {
			continue
		}
		iv.Add(updateScalarField(f))
	}
	return &gqlast.InputDef{Name: m.Name + "UpdateInput", Fields: iv.Build()}
}

func updateScalarField(f *semantic.Field) gqlast.InputValue {
	base := gqlast.Named(scalarGraphQLName(f.Type))
	t := base
	if f.IsArray() {
		t = gqlast.ListOf(gqlast.NonNullT(base))
	}
	return gqlast.InputValue{Name: f.Name, Type: t}
}

func updateRelationField(f *semantic.Field) gqlast.InputValue {
	other := f.Type.RefName
	if f.IsArray() {
		return gqlast.InputValue{Name: f.Name, Type: gqlast.Named(other + "UpdateManyInlineInput")}
	}
	return gqlast.InputValue{Name: f.Name, Type: gqlast.Named(other + "UpdateOneInlineInput")}
}

// updateInlineInputs emits the UpdateOneInlineInput/UpdateManyInlineInput
// pair: the nested action set a relation field's update input exposes.
// `set` only makes sense for a to-many edge, so the many variant alone
// carries it; there `disconnect`/`delete` take WhereUniqueInput lists,
// while the one variant's `disconnect`/`delete` are bare Booleans.
func updateInlineInputs(m *semantic.ModelDecl) []gqlast.Definition {
	nestedWhereUpdate := &gqlast.InputDef{
		Name: m.Name + "UpdateWithNestedWhereUniqueInput",
		Fields: []gqlast.InputValue{
			{Name: "where", Type: gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput"))},
			{Name: "data", Type: gqlast.NonNullT(gqlast.Named(m.Name + "UpdateInput"))},
		},
	}
	nestedWhereUpsert := &gqlast.InputDef{
		Name: m.Name + "UpsertWithNestedWhereUniqueInput",
		Fields: []gqlast.InputValue{
			{Name: "where", Type: gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput"))},
			{Name: "create", Type: gqlast.NonNullT(gqlast.Named(m.Name + "CreateInput"))},
			{Name: "update", Type: gqlast.NonNullT(gqlast.Named(m.Name + "UpdateInput"))},
		},
	}
	one := &gqlast.InputDef{
		Name: m.Name + "UpdateOneInlineInput",
		Fields: []gqlast.InputValue{
			{Name: "create", Type: gqlast.Named(m.Name + "CreateInput")},
			{Name: "update", Type: gqlast.Named(m.Name + "UpdateWithNestedWhereUniqueInput")},
			{Name: "upsert", Type: gqlast.Named(m.Name + "UpsertWithNestedWhereUniqueInput")},
			{Name: "connect", Type: gqlast.Named(m.Name + "WhereUniqueInput")},
			{Name: "disconnect", Type: gqlast.Named("Boolean")},
			{Name: "delete", Type: gqlast.Named("Boolean")},
		},
	}
	many := &gqlast.InputDef{
		Name: m.Name + "UpdateManyInlineInput",
		Fields: []gqlast.InputValue{
			{Name: "create", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "CreateInput")))},
			{Name: "update", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "UpdateWithNestedWhereUniqueInput")))},
			{Name: "upsert", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "UpsertWithNestedWhereUniqueInput")))},
			{Name: "connect", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "ConnectInput")))},
			{Name: "set", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput")))},
			{Name: "disconnect", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput")))},
			{Name: "delete", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput")))},
		},
	}
	return []gqlast.Definition{nestedWhereUpdate, nestedWhereUpsert, one, many}
}

// updateManyScalarFields returns the subset of m's fields eligible for
// a bulk MUpdateManyInput: non-relation, non-unique scalars, excluding
// relation-owning scalars (set only through the relation field itself).
// A model whose only eligible fields are all unique (e.g. an all-key
// lookup table) has no such subset, so its MUpdateManyInput is omitted
// entirely by the caller.
func updateManyScalarFields(m *semantic.ModelDecl) []*semantic.Field {
	relScalars := m.RelationScalarFieldNames()
	var out []*semantic.Field
	for _, f := range m.ScalarFields() {
		if f == m.IDField || f.Attrs.Unique || relScalars[f.Name] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// updateManyInput emits `input MUpdateManyInput`, or nil if m has no
// eligible field (see updateManyScalarFields).
func updateManyInput(m *semantic.ModelDecl) *gqlast.InputDef {
	fields := updateManyScalarFields(m)
	if len(fields) == 0 {
		return nil
	}
	iv := newInputValueList()
	for _, f := range fields {
		iv.Add(updateScalarField(f))
	}
	return &gqlast.InputDef{Name: m.Name + "UpdateManyInput", Fields: iv.Build()}
}
