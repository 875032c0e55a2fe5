package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/semantic"
	"github.com/contourhq/contour/internal/store"
)

// Store implements store.Store against PostgreSQL. Unlike the teacher's
// Checker (which accepts any Querier and leaves schema management to a
// separate migrate command), Store also carries the compiled model
// graph so it knows each model's column set and can decide which
// fields need JSON (de)serialization for the jsonb array columns.
type Store struct {
	db    *sql.DB
	graph *model.Graph
}

// New wraps db, using graph's resolved fields to drive column mapping.
// Callers are expected to have already applied GenerateDDL/ApplyDDL.
func New(db *sql.DB, graph *model.Graph) *Store {
	return &Store{db: db, graph: graph}
}

func (s *Store) modelDecl(name string) *model.ModelDecl {
	return s.graph.Model(name)
}

func (s *Store) Create(ctx context.Context, modelName string, values map[string]any) (store.Record, error) {
	m := s.modelDecl(modelName)
	if m == nil {
		return store.Record{}, fmt.Errorf("postgres: unknown model %q", modelName)
	}

	row := make(map[string]any, len(values)+1)
	for k, v := range values {
		row[k] = v
	}
	if _, hasID := row[m.IDField.Name]; !hasID && m.IDField.Attrs.Default != nil && m.IDField.Attrs.Default.Kind == semantic.DefaultAuto {
		row[m.IDField.Name] = uuid.NewString()
	}

	var cols, placeholders []string
	var args []any
	for _, f := range m.ScalarFields() {
		v, ok := row[f.Name]
		if !ok {
			continue
		}
		cols = append(cols, quoteIdent(f.Name))
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)+1))
		args = append(args, encodeValue(f, v))
	}

	query := fmt.Sprintf("insert into %s (%s) values (%s)",
		quoteIdent(tableName(m.Name)), strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return store.Record{}, fmt.Errorf("postgres: insert into %s: %w", tableName(m.Name), err)
	}

	id, _ := row[m.IDField.Name].(string)
	return store.Record{ID: id, Values: row}, nil
}

func (s *Store) Get(ctx context.Context, modelName, id string) (store.Record, bool, error) {
	m := s.modelDecl(modelName)
	if m == nil {
		return store.Record{}, false, fmt.Errorf("postgres: unknown model %q", modelName)
	}

	cols := scalarColumnNames(m)
	query := fmt.Sprintf("select %s from %s where %s = $1",
		strings.Join(quoteAll(cols), ", "), quoteIdent(tableName(m.Name)), quoteIdent(m.IDField.Name))

	row, err := s.scanOne(ctx, m, query, id)
	if err == sql.ErrNoRows {
		return store.Record{}, false, nil
	}
	if err != nil {
		return store.Record{}, false, err
	}
	return row, true, nil
}

func (s *Store) List(ctx context.Context, modelName string, opts store.ListOptions) (store.ListResult, error) {
	m := s.modelDecl(modelName)
	if m == nil {
		return store.ListResult{}, fmt.Errorf("postgres: unknown model %q", modelName)
	}

	cols := scalarColumnNames(m)
	base := fmt.Sprintf("select %s from %s", strings.Join(quoteAll(cols), ", "), quoteIdent(tableName(m.Name)))

	var total int
	countQuery := fmt.Sprintf("select count(*) from %s", quoteIdent(tableName(m.Name)))
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return store.ListResult{}, fmt.Errorf("postgres: count %s: %w", tableName(m.Name), err)
	}

	query := base
	if opts.OrderBy != "" {
		dir := "asc"
		if opts.Desc {
			dir = "desc"
		}
		query += fmt.Sprintf(" order by %s %s", quoteIdent(opts.OrderBy), dir)
	} else {
		query += fmt.Sprintf(" order by %s asc", quoteIdent(m.IDField.Name))
	}
	if opts.Filter == nil {
		if opts.First > 0 {
			query += fmt.Sprintf(" limit %d", opts.First)
		}
		if opts.Skip > 0 {
			query += fmt.Sprintf(" offset %d", opts.Skip)
		}
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return store.ListResult{}, fmt.Errorf("postgres: list %s: %w", tableName(m.Name), err)
	}
	defer func() { _ = rows.Close() }()

	var records []store.Record
	for rows.Next() {
		rec, err := scanRow(m, rows)
		if err != nil {
			return store.ListResult{}, err
		}
		if opts.Filter == nil || opts.Filter(rec) {
			records = append(records, rec)
		}
	}
	if opts.Filter != nil {
		total = len(records)
		records = records[min(opts.Skip, len(records)):]
		if opts.First > 0 && opts.First < len(records) {
			records = records[:opts.First]
		}
	}
	return store.ListResult{Records: records, Total: total}, rows.Err()
}

func (s *Store) Update(ctx context.Context, modelName, id string, values map[string]any) (store.Record, error) {
	m := s.modelDecl(modelName)
	if m == nil {
		return store.Record{}, fmt.Errorf("postgres: unknown model %q", modelName)
	}

	var sets []string
	var args []any
	i := 1
	for _, f := range m.ScalarFields() {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", quoteIdent(f.Name), i))
		args = append(args, encodeValue(f, v))
		i++
	}
	args = append(args, id)

	query := fmt.Sprintf("update %s set %s where %s = $%d",
		quoteIdent(tableName(m.Name)), strings.Join(sets, ", "), quoteIdent(m.IDField.Name), i)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return store.Record{}, fmt.Errorf("postgres: update %s: %w", tableName(m.Name), err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.Record{}, &store.ErrNotFound{Model: modelName, ID: id}
	}

	rec, found, err := s.Get(ctx, modelName, id)
	if err != nil {
		return store.Record{}, err
	}
	if !found {
		return store.Record{}, &store.ErrNotFound{Model: modelName, ID: id}
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, modelName, id string) (store.Record, error) {
	rec, found, err := s.Get(ctx, modelName, id)
	if err != nil {
		return store.Record{}, err
	}
	if !found {
		return store.Record{}, &store.ErrNotFound{Model: modelName, ID: id}
	}

	m := s.modelDecl(modelName)
	query := fmt.Sprintf("delete from %s where %s = $1", quoteIdent(tableName(m.Name)), quoteIdent(m.IDField.Name))
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return store.Record{}, fmt.Errorf("postgres: delete from %s: %w", tableName(m.Name), err)
	}
	return rec, nil
}

func scalarColumnNames(m *model.ModelDecl) []string {
	var out []string
	for _, f := range m.ScalarFields() {
		out = append(out, f.Name)
	}
	return out
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = quoteIdent(n)
	}
	return out
}

// encodeValue marshals array-valued fields to JSON for the jsonb
// column; every other scalar kind passes through to the driver as-is.
func encodeValue(f *model.Field, v any) any {
	if !f.IsArray() {
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func (s *Store) scanOne(ctx context.Context, m *model.ModelDecl, query string, args ...any) (store.Record, error) {
	row := s.db.QueryRowContext(ctx, query, args...)
	dest, scan := scanDest(m)
	if err := row.Scan(dest...); err != nil {
		return store.Record{}, err
	}
	return scan(), nil
}

func scanRow(m *model.ModelDecl, rows *sql.Rows) (store.Record, error) {
	dest, scan := scanDest(m)
	if err := rows.Scan(dest...); err != nil {
		return store.Record{}, err
	}
	return scan(), nil
}

// scanDest builds scan targets for every scalar column and a closure
// that assembles the resulting Record, decoding jsonb array columns
// back into Go slices.
func scanDest(m *model.ModelDecl) ([]any, func() store.Record) {
	fields := m.ScalarFields()
	raw := make([]any, len(fields))
	for i := range raw {
		raw[i] = new(any)
	}
	return raw, func() store.Record {
		values := make(map[string]any, len(fields))
		var id string
		for i, f := range fields {
			v := *(raw[i].(*any))
			if f.IsArray() {
				if s, ok := v.(string); ok {
					var decoded []any
					_ = json.Unmarshal([]byte(s), &decoded)
					v = decoded
				} else if b, ok := v.([]byte); ok {
					var decoded []any
					_ = json.Unmarshal(b, &decoded)
					v = decoded
				}
			}
			values[f.Name] = v
			if f == m.IDField {
				id, _ = v.(string)
			}
		}
		return store.Record{ID: id, Values: values}
	}
}
