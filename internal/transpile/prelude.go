package transpile

import "github.com/contourhq/contour/pkg/gqlast"

// prelude returns the definitions emitted exactly once, ahead of any
// model-derived definitions: scalars, directives, the Node interface,
// and the shared pagination/connect-position types.
func prelude() []gqlast.Definition {
	return []gqlast.Definition{
		&gqlast.ScalarDef{Name: "DateTime"},
		&gqlast.ScalarDef{Name: "Int64"},
		&gqlast.DirectiveDef{
			Name: "map",
			Args: []gqlast.InputValue{{Name: "name", Type: gqlast.NonNullT(gqlast.Named("String"))}},
			On:   []string{"FIELD_DEFINITION"},
		},
		&gqlast.DirectiveDef{Name: "unique", On: []string{"FIELD_DEFINITION"}},
		&gqlast.DirectiveDef{Name: "indexed", On: []string{"FIELD_DEFINITION"}},
		&gqlast.InterfaceDef{
			Name: "Node",
			Fields: []gqlast.FieldDef{
				{Name: "id", Type: gqlast.NonNullT(gqlast.Named("ID"))},
			},
		},
		&gqlast.TypeDef{
			Name: "PageInfo",
			Fields: []gqlast.FieldDef{
				{Name: "hasNextPage", Type: gqlast.NonNullT(gqlast.Named("Boolean"))},
				{Name: "hasPreviousPage", Type: gqlast.NonNullT(gqlast.Named("Boolean"))},
				{Name: "startCursor", Type: gqlast.Named("String")},
				{Name: "endCursor", Type: gqlast.Named("String")},
			},
		},
		&gqlast.TypeDef{
			Name: "Aggregate",
			Fields: []gqlast.FieldDef{
				{Name: "count", Type: gqlast.NonNullT(gqlast.Named("Int"))},
			},
		},
		&gqlast.InputDef{
			Name: "ConnectPositionInput",
			Fields: []gqlast.InputValue{
				{Name: "before", Type: gqlast.Named("ID")},
				{Name: "after", Type: gqlast.Named("ID")},
				{Name: "start", Type: gqlast.Named("Boolean")},
				{Name: "end", Type: gqlast.Named("Boolean")},
			},
		},
	}
}

// paginationArgs is the shared argument list for list-returning fields
// and root query list fields: where/orderBy plus cursor pagination.
func paginationArgs(model string) []gqlast.InputValue {
	return []gqlast.InputValue{
		{Name: "where", Type: gqlast.Named(model + "WhereInput")},
		{Name: "orderBy", Type: gqlast.Named(model + "OrderByInput")},
		{Name: "skip", Type: gqlast.Named("Int")},
		{Name: "after", Type: gqlast.Named("String")},
		{Name: "before", Type: gqlast.Named("String")},
		{Name: "first", Type: gqlast.Named("Int")},
		{Name: "last", Type: gqlast.Named("Int")},
	}
}
