package transpile

import "github.com/contourhq/contour/pkg/gqlast"

// fieldList accumulates gqlast.FieldDef values in emission order,
// filtering out conditional fields without the caller needing an if
// at every call site. Modeled directly on the teacher's SQLBuilder/
// Joiner method-chaining idiom, retargeted from SQL text fragments to
// typed schema-AST nodes.
type fieldList struct {
	fields []gqlast.FieldDef
}

func newFieldList() *fieldList { return &fieldList{} }

func (l *fieldList) Add(f gqlast.FieldDef) *fieldList {
	l.fields = append(l.fields, f)
	return l
}

func (l *fieldList) AddIf(cond bool, f gqlast.FieldDef) *fieldList {
	if cond {
		l.fields = append(l.fields, f)
	}
	return l
}

func (l *fieldList) Build() []gqlast.FieldDef { return l.fields }

// inputValueList is the InputValue analog of fieldList, used for
// building Where/Create/Update input field sets.
type inputValueList struct {
	values []gqlast.InputValue
}

func newInputValueList() *inputValueList { return &inputValueList{} }

func (l *inputValueList) Add(v gqlast.InputValue) *inputValueList {
	l.values = append(l.values, v)
	return l
}

func (l *inputValueList) AddIf(cond bool, v gqlast.InputValue) *inputValueList {
	if cond {
		l.values = append(l.values, v)
	}
	return l
}

func (l *inputValueList) Empty() bool { return len(l.values) == 0 }

func (l *inputValueList) Build() []gqlast.InputValue { return l.values }
