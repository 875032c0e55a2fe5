// Package gqlast defines the GraphQL schema AST that the transpiler
// produces: an ordered list of top-level definitions (scalar,
// directive, interface, enum, input, type) whose order and
// field order are normative output, per the external output contract.
// Textual rendering is a separate concern, left to pkg/gqlprint.
package gqlast

// Definition is one top-level schema definition.
type Definition interface {
	definitionNode()
}

// Document is the full ordered schema: exactly the sequence the
// transpiler emits, never re-sorted downstream.
type Document struct {
	Definitions []Definition
}

type ScalarDef struct{ Name string }

func (*ScalarDef) definitionNode() {}

type DirectiveDef struct {
	Name string
	Args []InputValue
	On   []string // directive locations, e.g. "FIELD_DEFINITION"
}

func (*DirectiveDef) definitionNode() {}

type InterfaceDef struct {
	Name   string
	Fields []FieldDef
}

func (*InterfaceDef) definitionNode() {}

type EnumDef struct {
	Name   string
	Values []string
}

func (*EnumDef) definitionNode() {}

type InputDef struct {
	Name   string
	Fields []InputValue
}

func (*InputDef) definitionNode() {}

type TypeDef struct {
	Name       string
	Implements []string
	Fields     []FieldDef
}

func (*TypeDef) definitionNode() {}

// Type is a GraphQL type reference: a named type, optionally a list
// of it, optionally non-null at either level.
type Type struct {
	Name     string
	List     bool
	NonNull  bool // non-null at the outer level (the list itself when List is set)
	ListElemNonNull bool
}

func Named(name string) Type                  { return Type{Name: name} }
func NonNullT(t Type) Type                     { t.NonNull = true; return t }
func ListOf(elem Type) Type                    { return Type{List: true, Name: elem.Name, ListElemNonNull: elem.NonNull} }

// FieldDef is one field of an object/interface type, with optional
// arguments (Query/Mutation root fields and relation list fields use
// these; plain scalar fields have none) and directives.
type FieldDef struct {
	Name       string
	Args       []InputValue
	Type       Type
	Directives []Directive
}

// InputValue is one argument of a field or one field of an input type.
type InputValue struct {
	Name    string
	Type    Type
	Default *string // raw default literal text, nil if none
}

type Directive struct {
	Name string
	Args map[string]string
}
