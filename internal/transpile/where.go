package transpile

import (
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/pkg/gqlast"
)

// stringLikeSuffixes is the full operator suffix family shared by
// string-like scalars and, per the elementwise open-question
// resolution (SPEC_FULL.md §9), scalar arrays: every _contains/
// _starts_with/_ends_with variant matches against individual array
// elements rather than a stringified array.
var stringLikeSuffixes = []string{
	"_not", "_contains", "_not_contains", "_starts_with", "_not_starts_with",
	"_ends_with", "_not_ends_with", "_lt", "_lte", "_gt", "_gte",
}

var numericSuffixes = []string{"_not", "_lt", "_lte", "_gt", "_gte"}

var listSuffixes = []string{"_in", "_not_in"}

// whereInput emits `input MWhereInput` for one model: AND/OR/NOT
// combinators first, then per-field filter families.
func whereInput(m *semantic.ModelDecl) *gqlast.InputDef {
	iv := newInputValueList()
	selfList := gqlast.ListOf(gqlast.NonNullT(gqlast.Named(m.Name + "WhereInput")))
	iv.Add(gqlast.InputValue{Name: "AND", Type: selfList})
	iv.Add(gqlast.InputValue{Name: "OR", Type: selfList})
	iv.Add(gqlast.InputValue{Name: "NOT", Type: selfList})

	for _, f := range m.Fields {
		if f.IsRelation() {
			addRelationWhereFields(iv, f)
			continue
		}
		addScalarWhereFields(iv, f)
	}
	return &gqlast.InputDef{Name: m.Name + "WhereInput", Fields: iv.Build()}
}

func addScalarWhereFields(iv *inputValueList, f *semantic.Field) {
	gqlType := scalarGraphQLName(f.Type)
	iv.Add(gqlast.InputValue{Name: f.Name, Type: gqlast.Named(gqlType)})

	if classifyFamily(f.Type) == familyBoolean && !f.IsArray() {
		iv.Add(gqlast.InputValue{Name: f.Name + "_not", Type: gqlast.Named(gqlType)})
		return
	}

	var suffixes []string
	switch classifyFamily(f.Type) {
	case familyStringLike:
		suffixes = append(suffixes, stringLikeSuffixes...)
	case familyNumericOrDateTime:
		suffixes = append(suffixes, numericSuffixes...)
	case familyEnum:
		suffixes = append(suffixes, "_not")
	}
	// Scalar arrays carry the full string-like suffix family regardless
	// of element kind (§4.4's where-input table), applied elementwise.
	// This overrides the per-family suffixes above, including Boolean[]
	// (handled above only for the non-array case).
	if f.IsArray() {
		suffixes = stringLikeSuffixes
	}
	for _, s := range suffixes {
		iv.Add(gqlast.InputValue{Name: f.Name + s, Type: gqlast.Named(gqlType)})
	}
	for _, s := range listSuffixes {
		iv.Add(gqlast.InputValue{Name: f.Name + s, Type: gqlast.ListOf(gqlast.NonNullT(gqlast.Named(gqlType)))})
	}
}

func addRelationWhereFields(iv *inputValueList, f *semantic.Field) {
	other := f.Type.RefName
	if !f.IsArray() {
		iv.Add(gqlast.InputValue{Name: f.Name, Type: gqlast.Named(other + "WhereInput")})
		iv.Add(gqlast.InputValue{Name: f.Name + "_is_null", Type: gqlast.Named("Boolean")})
		return
	}
	iv.Add(gqlast.InputValue{Name: f.Name + "_every", Type: gqlast.Named(other + "WhereInput")})
	iv.Add(gqlast.InputValue{Name: f.Name + "_some", Type: gqlast.Named(other + "WhereInput")})
	iv.Add(gqlast.InputValue{Name: f.Name + "_none", Type: gqlast.Named(other + "WhereInput")})
	iv.Add(gqlast.InputValue{Name: f.Name + "_is_empty", Type: gqlast.Named("Boolean")})
}

// whereUniqueInput emits `input MWhereUniqueInput`: every @id/@unique
// scalar field, each individually nullable. Exactly-one-supplied is
// enforced at query-engine time, not here.
func whereUniqueInput(m *semantic.ModelDecl) *gqlast.InputDef {
	iv := newInputValueList()
	for _, f := range m.UniqueFields() {
		iv.Add(gqlast.InputValue{Name: f.Name, Type: gqlast.Named(scalarGraphQLName(f.Type))})
	}
	return &gqlast.InputDef{Name: m.Name + "WhereUniqueInput", Fields: iv.Build()}
}

// orderByEnum emits `enum MOrderByInput` with <field>_ASC/_DSC for
// every scalar (non-relation) field, in declaration order.
func orderByEnum(m *semantic.ModelDecl) *gqlast.EnumDef {
	var values []string
	for _, f := range m.ScalarFields() {
		values = append(values, f.Name+"_ASC", f.Name+"_DSC")
	}
	return &gqlast.EnumDef{Name: m.Name + "OrderByInput", Values: values}
}
