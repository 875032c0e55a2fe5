// Package semantic implements the compiler's semantic analyzer: the
// registry, attribute resolver, field typer, and relation resolver that
// turn a raw ast.Declaration tree into an invariant-bearing model
// graph. Diagnostics accumulate across passes; later passes run only
// when earlier ones produced no fatal errors (see Analyze).
package semantic

import "github.com/contourhq/contour/pkg/ast"

// Config is the singleton datastore configuration block.
type Config struct {
	Name     string
	Provider string
	Sp       ast.Span
}

// EnumDecl is a resolved enum type: an ordered, name-unique set of
// variants.
type EnumDecl struct {
	Name     string
	Variants []string
	Sp       ast.Span
}

func (e *EnumDecl) HasVariant(name string) bool {
	for _, v := range e.Variants {
		if v == name {
			return true
		}
	}
	return false
}

// FieldTypeKind tags the FieldType variant.
type FieldTypeKind int

const (
	TypeUnknown FieldTypeKind = iota
	TypeShortStr
	TypeLongStr
	TypeBoolean
	TypeDateTime
	TypeInt32
	TypeInt64
	TypeFloat64
	TypeEnumRef
	TypeModelRef
)

// FieldType is a resolved, tagged-variant field type. RefName is
// populated only for TypeEnumRef / TypeModelRef.
type FieldType struct {
	Kind    FieldTypeKind
	RefName string
}

func (t FieldType) IsScalarPrimitive() bool {
	switch t.Kind {
	case TypeShortStr, TypeLongStr, TypeBoolean, TypeDateTime, TypeInt32, TypeInt64, TypeFloat64:
		return true
	}
	return false
}

func (t FieldType) IsEnum() bool  { return t.Kind == TypeEnumRef }
func (t FieldType) IsModel() bool { return t.Kind == TypeModelRef }

// IsScalar reports whether the type may appear on a scalar (non-relation)
// field: primitives and enums, not model references.
func (t FieldType) IsScalar() bool { return t.IsScalarPrimitive() || t.IsEnum() }

// ArityKind tags the Arity variant. Array implies required elements —
// an array of optional scalars is not representable.
type ArityKind int

const (
	Required ArityKind = iota
	Optional
	Array
)

// DefaultExprKind tags the DefaultExpr variant.
type DefaultExprKind int

const (
	DefaultLiteral DefaultExprKind = iota
	DefaultAuto
	DefaultNow
	DefaultEnumVariant
)

type DefaultExpr struct {
	Kind        DefaultExprKind
	Literal     any
	VariantName string
}

// RelationRole is assigned to a RelationEndpoint once the relation
// resolver has paired it.
type RelationRole int

const (
	RoleUnassigned RelationRole = iota
	RoleOwner
	RoleReferenced
)

// RelationEndpoint is one side of a (possibly still-unpaired) relation,
// as declared on a single field.
type RelationEndpoint struct {
	Name           string // relation name from @relation(name: ...)
	ModelName      string
	TargetModel    string // model named by the relation field's own type
	FieldName      string
	ScalarField    string // raw "field:" argument, empty if absent
	References     string // raw "references:" argument, empty if absent
	HasScalarField bool
	HasReferences  bool
	FieldArity     ArityKind
	FieldOptional  bool
	Sp             ast.Span

	Role RelationRole
	Pair *RelationPair // set once resolved
}

// Cardinality describes the derived multiplicity of a resolved relation.
type Cardinality int

const (
	OneToOne Cardinality = iota
	OneToMany
	ManyToMany
)

func (c Cardinality) String() string {
	switch c {
	case OneToOne:
		return "1-1"
	case OneToMany:
		return "1-N"
	case ManyToMany:
		return "N-N"
	}
	return "?"
}

// RelationPair is the resolved, symmetric relation between exactly two
// endpoints (self-relations have both endpoints on the same model).
type RelationPair struct {
	Name        string
	Owner       *RelationEndpoint
	Referenced  *RelationEndpoint
	Cardinality Cardinality
}

// AttrSet holds every resolved attribute of a field; each kind appears
// at most once (duplicates are reported by the attribute resolver, not
// represented here).
type AttrSet struct {
	ID         bool
	Unique     bool
	Indexed    bool
	Default    *DefaultExpr
	MappedName *string
	Relation   *RelationEndpoint
}

// Field is a fully resolved model field.
type Field struct {
	Name     string
	Type     FieldType
	Arity    ArityKind
	Attrs    AttrSet
	Sp       ast.Span
}

func (f *Field) Optional() bool { return f.Arity == Optional }
func (f *Field) IsArray() bool  { return f.Arity == Array }
func (f *Field) IsRelation() bool { return f.Type.IsModel() }

// IsAutoGenID reports whether f is an @id field whose value the store
// generates, so input types never ask the caller for it.
func (f *Field) IsAutoGenID() bool {
	return f.Attrs.ID && f.Attrs.Default != nil && f.Attrs.Default.Kind == DefaultAuto
}

// ModelDecl is a fully resolved model: ordered, name-unique fields plus
// a cached pointer to the id field (if declared literally; auto-id
// models still have one physical id field after attribute resolution).
type ModelDecl struct {
	Name    string
	Fields  []*Field
	IDField *Field
	Sp      ast.Span
}

func (m *ModelDecl) Field(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (m *ModelDecl) ScalarFields() []*Field {
	var out []*Field
	for _, f := range m.Fields {
		if !f.IsRelation() {
			out = append(out, f)
		}
	}
	return out
}

func (m *ModelDecl) RelationFields() []*Field {
	var out []*Field
	for _, f := range m.Fields {
		if f.IsRelation() {
			out = append(out, f)
		}
	}
	return out
}

func (m *ModelDecl) UniqueFields() []*Field {
	var out []*Field
	for _, f := range m.Fields {
		if f.Attrs.Unique || f == m.IDField {
			out = append(out, f)
		}
	}
	return out
}

// RelationScalarFieldNames returns the set of scalar field names that
// back an owner-side relation's foreign key on m (e.g. Post.authorId
// backing Post.author). These are populated through the relation
// field's own *CreateInlineInput/*UpdateInlineInput, never directly, so
// callers building Create/Update input field lists exclude them from
// scalar iteration the same way they exclude m.IDField.
func (m *ModelDecl) RelationScalarFieldNames() map[string]bool {
	out := make(map[string]bool)
	for _, f := range m.RelationFields() {
		rel := f.Attrs.Relation
		if rel == nil || rel.Role != RoleOwner || rel.ScalarField == "" {
			continue
		}
		out[rel.ScalarField] = true
	}
	return out
}
