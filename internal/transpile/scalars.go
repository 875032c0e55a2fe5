package transpile

import "github.com/contourhq/contour/internal/semantic"

// scalarGraphQLName maps a resolved scalar primitive to its GraphQL
// type name. Int64 gets its own custom scalar since GraphQL's built-in
// Int is 32-bit, and DateTime is a custom scalar as well; everything
// else maps onto a GraphQL built-in.
func scalarGraphQLName(ft semantic.FieldType) string {
	switch ft.Kind {
	case semantic.TypeShortStr, semantic.TypeLongStr:
		return "String"
	case semantic.TypeBoolean:
		return "Boolean"
	case semantic.TypeDateTime:
		return "DateTime"
	case semantic.TypeInt32:
		return "Int"
	case semantic.TypeInt64:
		return "Int64"
	case semantic.TypeFloat64:
		return "Float"
	case semantic.TypeEnumRef:
		return ft.RefName
	default:
		return "String"
	}
}

// filterFamily classifies a scalar field for the purpose of which
// operator family the where-input emits (§4.4's per-kind table).
type filterFamily int

const (
	familyStringLike filterFamily = iota
	familyNumericOrDateTime
	familyBoolean
	familyEnum
)

func classifyFamily(ft semantic.FieldType) filterFamily {
	switch ft.Kind {
	case semantic.TypeShortStr, semantic.TypeLongStr:
		return familyStringLike
	case semantic.TypeInt32, semantic.TypeInt64, semantic.TypeFloat64, semantic.TypeDateTime:
		return familyNumericOrDateTime
	case semantic.TypeBoolean:
		return familyBoolean
	case semantic.TypeEnumRef:
		return familyEnum
	default:
		return familyStringLike
	}
}
