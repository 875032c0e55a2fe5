package transpile

import (
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/gqlast"
)

// createInput emits `input MCreateInput`: every scalar field required
// unless the SDL marks it optional, array, or it carries a @default
// (auto()/now()/literal/enum variant all make the field independently
// satisfiable, so the caller may omit it). Relation-owning scalars
// (e.g. Post.authorId) and auto-gen @id fields are excluded outright —
// the former is set through the relation field's own inline input, the
// latter is assigned by the store. Relation fields become nested
// create/connect inline inputs.
func createInput(m *semantic.ModelDecl) *gqlast.InputDef {
	relScalars := m.RelationScalarFieldNames()
	iv := newInputValueList()
	for _, f := range m.Fields {
		if f.IsRelation() {
			iv.Add(createRelationField(f))
			continue
		}
		// Relation-owning scalars are populated through the relation
		// field's own *CreateInlineInput, and auto-gen ids are assigned
		// by the store, so neither is an input the caller supplies.
		if relScalars[f.Name] || f.IsAutoGenID() {
			continue
		}
		iv.Add(createScalarField(f))
	}
	return &gqlast.InputDef{Name: m.Name + "CreateInput", Fields: iv.Build()}
}

func createScalarField(f *semantic.Field) gqlast.InputValue {
	base := gqlast.Named(scalarGraphQLName(f.Type))
	t := base
	if f.IsArray() {
		t = gqlast.ListOf(gqlast.NonNullT(base))
	}
	if !f.IsArray() && !f.Optional() && f.Attrs.Default == nil {
		t = gqlast.NonNullT(base)
	}
	return gqlast.InputValue{Name: f.Name, Type: t}
}

func createRelationField(f *semantic.Field) gqlast.InputValue {
	other := f.Type.RefName
	if f.IsArray() {
		return gqlast.InputValue{Name: f.Name, Type: gqlast.Named(other + "CreateManyInlineInput")}
	}
	t := gqlast.Named(other + "CreateOneInlineInput")
	if !f.Optional() {
		t = gqlast.NonNullT(t)
	}
	return gqlast.InputValue{Name: f.Name, Type: t}
}

// createInlineInputs emits the CreateOneInlineInput/CreateManyInlineInput
// pair used by other models' create/update inputs to reference m.
func createInlineInputs(m *semantic.ModelDecl) []gqlast.Definition {
	one := &gqlast.InputDef{
		Name: m.Name + "CreateOneInlineInput",
		Fields: []gqlast.InputValue{
			{Name: "create", Type: gqlast.Named(m.Name + "CreateInput")},
			{Name: "connect", Type: gqlast.Named(m.Name + "WhereUniqueInput")},
		},
	}
	many := &gqlast.InputDef{
		Name: m.Name + "CreateManyInlineInput",
		Fields: []gqlast.InputValue{
			{Name: "create", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "CreateInput")))},
			{Name: "connect", Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput")))},
		},
	}
	return []gqlast.Definition{one, many}
}
