// Package runtime is a thin, best-effort reference executor for the
// schema internal/transpile produces: it validates one operation's
// field name and argument shape against the compiled schema, then
// dispatches CRUD to a store.Store. It is not a GraphQL executor — no
// selection sets, no nested field resolution, no query planning —
// just enough to prove a compiled schema is servable and to let
// integration tests exercise the storage backends end to end. Grounded
// on melange's Checker: a small struct wrapping a validated backend,
// constructed once and safe to reuse across requests.
package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/store"
	"github.com/contourhq/contour/pkg/gqlast"
)

// OperationKind distinguishes a root Query field from a root Mutation
// field; the two root types never share a field name so this mostly
// disambiguates intent rather than resolving ambiguity.
type OperationKind int

const (
	Query OperationKind = iota
	Mutation
)

func (k OperationKind) String() string {
	if k == Mutation {
		return "mutation"
	}
	return "query"
}

// Operation is one root-field invocation: the field name as it
// appears in the generated schema (e.g. "createUser", "users",
// "usersConnection") plus its arguments, already decoded from
// whatever wire format the caller used (JSON body, form values, ...).
type Operation struct {
	Kind  OperationKind
	Field string
	Args  map[string]any
}

// Executor validates and dispatches Operations against one compiled
// schema and one storage backend.
type Executor struct {
	graph  *model.Graph
	schema *gqlast.Document
	store  store.Store
}

// New constructs an Executor. graph and its derived schema are assumed
// immutable for the Executor's lifetime, same assumption the compiled
// Graph itself makes.
func New(graph *model.Graph, st store.Store) *Executor {
	return &Executor{graph: graph, schema: model.SchemaDocument(graph), store: st}
}

// Execute validates op against the root field of the matching kind and
// dispatches to the store. The returned value is either a store.Record,
// a store.ListResult, or nil (a single-record lookup that found no
// record); callers are expected to shape it into their own response
// envelope.
func (e *Executor) Execute(ctx context.Context, op Operation) (any, error) {
	field, err := e.rootField(op.Kind, op.Field)
	if err != nil {
		return nil, err
	}
	if err := validateArgs(field, op.Args); err != nil {
		return nil, fmt.Errorf("%s %s: %w", op.Kind, op.Field, err)
	}

	action, modelName, ok := resolveAction(e.graph, op.Field)
	if !ok {
		return nil, fmt.Errorf("%s %s: no CRUD mapping for this field", op.Kind, op.Field)
	}

	switch action {
	case actionGet:
		return e.dispatchGet(ctx, modelName, op.Args)
	case actionList:
		return e.dispatchList(ctx, modelName, op.Args)
	case actionCreate:
		return e.dispatchCreate(ctx, modelName, op.Args)
	case actionUpdate:
		return e.dispatchUpdate(ctx, modelName, op.Args)
	case actionDelete:
		return e.dispatchDelete(ctx, modelName, op.Args)
	case actionUpsert:
		return e.dispatchUpsert(ctx, modelName, op.Args)
	default:
		return nil, fmt.Errorf("%s %s: unsupported operation kind %v", op.Kind, op.Field, action)
	}
}

func (e *Executor) rootField(kind OperationKind, name string) (gqlast.FieldDef, error) {
	rootName := "Query"
	if kind == Mutation {
		rootName = "Mutation"
	}
	for _, def := range e.schema.Definitions {
		t, ok := def.(*gqlast.TypeDef)
		if !ok || t.Name != rootName {
			continue
		}
		for _, f := range t.Fields {
			if f.Name == name {
				return f, nil
			}
		}
		return gqlast.FieldDef{}, fmt.Errorf("unknown %s field %q", strings.ToLower(rootName), name)
	}
	return gqlast.FieldDef{}, fmt.Errorf("root type %q missing from schema", rootName)
}

// validateArgs checks that every non-null argument without a default
// is present. It does not descend into input-object shape — that is
// out of scope for a best-effort executor.
func validateArgs(field gqlast.FieldDef, args map[string]any) error {
	for _, a := range field.Args {
		if !a.Type.NonNull || a.Default != nil {
			continue
		}
		if _, ok := args[a.Name]; !ok {
			return fmt.Errorf("missing required argument %q", a.Name)
		}
	}
	return nil
}
