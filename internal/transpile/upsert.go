package transpile

import (
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/gqlast"
)

// upsertInput emits the root `input MUpsertInput` used by the upsertM
// mutation. Both fields are non-null: the spec's nullable-upsert-data
// example is treated as a typo (SPEC_FULL.md §9), since an upsert with
// a null create or update branch has no well-defined behavior.
func upsertInput(m *semantic.ModelDecl) *gqlast.InputDef {
	return &gqlast.InputDef{
		Name: m.Name + "UpsertInput",
		Fields: []gqlast.InputValue{
			{Name: "create", Type: gqlast.NonNullT(gqlast.Named(m.Name + "CreateInput"))},
			{Name: "update", Type: gqlast.NonNullT(gqlast.Named(m.Name + "UpdateInput"))},
		},
	}
}

// connectInput emits `input MConnectInput`, used by to-many
// UpdateManyInlineInput.connect to let the caller position the newly
// connected edge within the existing list.
func connectInput(m *semantic.ModelDecl) *gqlast.InputDef {
	return &gqlast.InputDef{
		Name: m.Name + "ConnectInput",
		Fields: []gqlast.InputValue{
			{Name: "where", Type: gqlast.NonNullT(gqlast.Named(m.Name + "WhereUniqueInput"))},
			{Name: "position", Type: gqlast.Named("ConnectPositionInput")},
		},
	}
}
