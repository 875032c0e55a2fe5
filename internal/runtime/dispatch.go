package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/store"
)

// crudAction tags which store.Store method a root field maps to.
type crudAction int

const (
	actionGet crudAction = iota
	actionList
	actionCreate
	actionUpdate
	actionDelete
	actionUpsert
)

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func pluralName(m *model.ModelDecl) string { return m.Name + "s" }

// resolveAction maps a root field name back to the (action, model)
// pair that produced it, mirroring internal/transpile's root field
// naming convention (queryRootFields/mutationRootFields) in reverse.
// updateMany/deleteMany are deliberately left unmapped here — the
// reference executor only dispatches single-record operations; bulk
// mutations are schema-complete but not executed (see Executor doc).
func resolveAction(g *model.Graph, field string) (crudAction, string, bool) {
	for _, m := range g.Models() {
		single := lowerFirst(m.Name)
		plural := lowerFirst(pluralName(m))
		switch field {
		case single:
			return actionGet, m.Name, true
		case plural, plural + "Connection":
			return actionList, m.Name, true
		case "create" + m.Name:
			return actionCreate, m.Name, true
		case "update" + m.Name:
			return actionUpdate, m.Name, true
		case "delete" + m.Name:
			return actionDelete, m.Name, true
		case "upsert" + m.Name:
			return actionUpsert, m.Name, true
		}
	}
	return 0, "", false
}

// whereUniqueID extracts the single identifying value out of a
// WhereUniqueInput-shaped argument. The reference executor only
// supports id-keyed lookups; looking a record up by another unique
// field would require the store to index on it, which store.Store
// does not offer.
func whereUniqueID(m *model.ModelDecl, where map[string]any) (string, error) {
	v, ok := where[m.IDField.Name]
	if !ok {
		return "", fmt.Errorf("where must include %q (lookup by another unique field is not supported by the reference executor)", m.IDField.Name)
	}
	id, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q must be a string", m.IDField.Name)
	}
	return id, nil
}

func dataMap(args map[string]any, key string) (map[string]any, error) {
	v, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing %q argument", key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q must be an object", key)
	}
	return m, nil
}

// scalarValues strips any key not naming one of the model's own
// scalar fields, so a caller-supplied create/update payload that still
// carries relation-shaped nested input (create/connect/...) doesn't
// get forwarded to the store as a bogus column value.
func scalarValues(m *model.ModelDecl, data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for _, f := range m.ScalarFields() {
		if v, ok := data[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

func (e *Executor) dispatchGet(ctx context.Context, modelName string, args map[string]any) (any, error) {
	m := e.graph.Model(modelName)
	where, err := dataMap(args, "where")
	if err != nil {
		return nil, err
	}
	id, err := whereUniqueID(m, where)
	if err != nil {
		return nil, err
	}
	rec, found, err := e.store.Get(ctx, modelName, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return rec, nil
}

func (e *Executor) dispatchList(ctx context.Context, modelName string, args map[string]any) (any, error) {
	opts := store.ListOptions{}
	if v, ok := args["first"].(int); ok {
		opts.First = v
	}
	if v, ok := args["skip"].(int); ok {
		opts.Skip = v
	}
	if v, ok := args["orderBy"].(string); ok {
		opts.OrderBy, opts.Desc = parseOrderBy(v)
	}
	return e.store.List(ctx, modelName, opts)
}

// parseOrderBy splits the generated "<field>_ASC"/"<field>_DSC" enum
// value into a bare column name and direction.
func parseOrderBy(v string) (field string, desc bool) {
	switch {
	case len(v) > 4 && v[len(v)-4:] == "_ASC":
		return v[:len(v)-4], false
	case len(v) > 4 && v[len(v)-4:] == "_DSC":
		return v[:len(v)-4], true
	default:
		return v, false
	}
}

func (e *Executor) dispatchCreate(ctx context.Context, modelName string, args map[string]any) (any, error) {
	m := e.graph.Model(modelName)
	data, err := dataMap(args, "data")
	if err != nil {
		return nil, err
	}
	return e.store.Create(ctx, modelName, scalarValues(m, data))
}

func (e *Executor) dispatchUpdate(ctx context.Context, modelName string, args map[string]any) (any, error) {
	m := e.graph.Model(modelName)
	where, err := dataMap(args, "where")
	if err != nil {
		return nil, err
	}
	id, err := whereUniqueID(m, where)
	if err != nil {
		return nil, err
	}
	data, err := dataMap(args, "data")
	if err != nil {
		return nil, err
	}
	return e.store.Update(ctx, modelName, id, scalarValues(m, data))
}

func (e *Executor) dispatchDelete(ctx context.Context, modelName string, args map[string]any) (any, error) {
	m := e.graph.Model(modelName)
	where, err := dataMap(args, "where")
	if err != nil {
		return nil, err
	}
	id, err := whereUniqueID(m, where)
	if err != nil {
		return nil, err
	}
	return e.store.Delete(ctx, modelName, id)
}

// dispatchUpsert performs a get-then-create-or-update; not atomic, a
// documented limitation of the reference executor (a real executor
// would push this into a single statement at the store layer).
func (e *Executor) dispatchUpsert(ctx context.Context, modelName string, args map[string]any) (any, error) {
	m := e.graph.Model(modelName)
	where, err := dataMap(args, "where")
	if err != nil {
		return nil, err
	}
	id, err := whereUniqueID(m, where)
	if err != nil {
		return nil, err
	}
	data, err := dataMap(args, "data")
	if err != nil {
		return nil, err
	}

	_, found, err := e.store.Get(ctx, modelName, id)
	if err != nil {
		return nil, err
	}

	if found {
		update, _ := data["update"].(map[string]any)
		return e.store.Update(ctx, modelName, id, scalarValues(m, update))
	}
	create, _ := data["create"].(map[string]any)
	values := scalarValues(m, create)
	values[m.IDField.Name] = id
	return e.store.Create(ctx, modelName, values)
}
