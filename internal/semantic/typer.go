package semantic

import "github.com/contourhq/contour/pkg/ast"

// resolveFieldType resolves a raw TypeRef name against the built-in
// scalars first, then the enum and model registries; an unknown name is
// reported once and the field is left TypeUnknown so later passes can
// still run without cascading.
func resolveFieldType(tr ast.TypeRef, enums map[string]*EnumDecl, models map[string]bool, bag *diagBag) FieldType {
	if kind, ok := builtinScalars[tr.Name]; ok {
		return FieldType{Kind: kind}
	}
	if _, ok := enums[tr.Name]; ok {
		return FieldType{Kind: TypeEnumRef, RefName: tr.Name}
	}
	if models[tr.Name] {
		return FieldType{Kind: TypeModelRef, RefName: tr.Name}
	}
	bag.addf(UnknownType, Error, tr.Sp, "unknown type %q", tr.Name)
	return FieldType{Kind: TypeUnknown}
}

// resolveArity combines the raw '?' / '[]' markers into an ArityKind.
// Array implies required elements; there is no optional-array form.
func resolveArity(tr ast.TypeRef) ArityKind {
	switch {
	case tr.Array:
		return Array
	case tr.Optional:
		return Optional
	default:
		return Required
	}
}
