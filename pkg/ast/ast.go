// Package ast defines the raw, un-interpreted syntax tree produced by
// parsing SDL source: a sequence of top-level declarations with spans
// attached, before any name, type, or attribute resolution has happened.
package ast

// Span marks a source location for diagnostics.
type Span struct {
	File        string
	Line, Col   int
	EndLine     int
	EndCol      int
}

// Declaration is one of Config, Model, or Enum.
type Declaration interface {
	declNode()
	Span() Span
}

// Config is a `config <name> { provider = "..." }` block.
type Config struct {
	Name     string
	Provider string
	Sp       Span
}

func (c *Config) declNode()   {}
func (c *Config) Span() Span { return c.Sp }

// Model is a `model Name { <field>+ }` block.
type Model struct {
	Name   string
	Fields []*Field
	Sp     Span
}

func (m *Model) declNode()   {}
func (m *Model) Span() Span { return m.Sp }

// Enum is an `enum Name { <VARIANT>+ }` block.
type Enum struct {
	Name     string
	Variants []EnumVariant
	Sp       Span
}

func (e *Enum) declNode()   {}
func (e *Enum) Span() Span { return e.Sp }

// EnumVariant is a single bareword inside an enum body.
type EnumVariant struct {
	Name string
	Sp   Span
}

// TypeRef is the raw `Ident ('?' | '[]')?` type reference on a field.
type TypeRef struct {
	Name     string
	Optional bool
	Array    bool
	Sp       Span
}

// Field is one `ident TypeRef attrs?` line inside a model body.
type Field struct {
	Name  string
	Type  TypeRef
	Attrs []AttrCall
	Sp    Span
}

// AttrCall is an unresolved `@name(args?)` invocation.
type AttrCall struct {
	Name string
	Args []Arg
	Sp   Span
}

// ArgKind discriminates the Arg variants.
type ArgKind int

const (
	ArgLiteral ArgKind = iota
	ArgIdent
	ArgCall
	ArgKeyValue
)

// Arg is one positional or named argument of an AttrCall. Exactly the
// fields relevant to Kind are populated.
type Arg struct {
	Kind ArgKind

	// ArgLiteral
	Literal any // string, int64, float64, or bool

	// ArgIdent / bareword
	Ident string

	// ArgCall
	CallName string
	CallArgs []Arg

	// ArgKeyValue
	Key   string
	Value *Arg

	Sp Span
}
