package postgres

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"github.com/contourhq/contour/internal/model"
	"github.com/contourhq/contour/internal/semantic"
)

// tableName is the lower-cased, pluralized table name for a model,
// matching the teacher pack's "elementary pluralization is enough"
// convention (users, projects, ... — contour's SDL model names are
// already PascalCase singular nouns, same as the source DSL's entities).
func tableName(modelName string) string {
	t := strings.ToLower(modelName)
	if strings.HasSuffix(t, "s") {
		return t
	}
	return t + "s"
}

func quoteIdent(s string) string { return pq.QuoteIdentifier(s) }

func columnType(ft model.Field) string {
	if ft.IsArray() {
		return "jsonb"
	}
	switch ft.Type.Kind {
	case semantic.TypeShortStr, semantic.TypeLongStr:
		return "text"
	case semantic.TypeBoolean:
		return "boolean"
	case semantic.TypeDateTime:
		return "timestamp with time zone"
	case semantic.TypeInt32:
		return "integer"
	case semantic.TypeInt64:
		return "bigint"
	case semantic.TypeFloat64:
		return "double precision"
	case semantic.TypeEnumRef:
		return "text"
	default:
		return "text"
	}
}

// GenerateDDL returns one CREATE TABLE statement per model plus a
// trailing batch of ALTER TABLE ... ADD CONSTRAINT foreign keys,
// mirroring the teacher's two-phase schemas-then-constraints split so
// every referenced table exists before a constraint names it.
func GenerateDDL(g *model.Graph) map[string]string {
	out := make(map[string]string)

	var tablesSQL strings.Builder
	var fks []string

	for _, m := range g.Models() {
		tbl := tableName(m.Name)
		var cols []string
		for _, f := range m.ScalarFields() {
			col := quoteIdent(f.Name)
			typ := columnType(*f)
			null := "null"
			if !f.Optional() && !f.IsArray() {
				null = "not null"
			}
			cols = append(cols, fmt.Sprintf("%s %s %s", col, typ, null))
		}
		fmt.Fprintf(&tablesSQL, "create table if not exists %s (\n  %s,\n  primary key (%s)\n);\n",
			quoteIdent(tbl), strings.Join(cols, ",\n  "), quoteIdent(m.IDField.Name))

		for _, f := range m.ScalarFields() {
			if f.Attrs.Unique && f != m.IDField {
				fmt.Fprintf(&tablesSQL, "create unique index if not exists %s on %s(%s);\n",
					quoteIdent(tbl+"_"+f.Name+"_uq"), quoteIdent(tbl), quoteIdent(f.Name))
			}
			if f.Attrs.Indexed {
				fmt.Fprintf(&tablesSQL, "create index if not exists %s on %s(%s);\n",
					quoteIdent(tbl+"_"+f.Name+"_idx"), quoteIdent(tbl), quoteIdent(f.Name))
			}
		}

		for _, f := range m.RelationFields() {
			rel := f.Attrs.Relation
			if rel == nil || rel.Role != semantic.RoleOwner {
				continue
			}
			refTable := tableName(rel.Pair.Referenced.ModelName)
			fks = append(fks, fmt.Sprintf(
				"alter table %s add constraint %s foreign key (%s) references %s(id);",
				quoteIdent(tbl), quoteIdent(tbl+"_"+rel.ScalarField+"_fk"), quoteIdent(rel.ScalarField), quoteIdent(refTable)))
		}
	}

	out["000_tables"] = tablesSQL.String()
	if len(fks) > 0 {
		sort.Strings(fks)
		out["100_foreign_keys"] = strings.Join(fks, "\n") + "\n"
	}
	return out
}
