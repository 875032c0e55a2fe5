package semantic

import (
	"fmt"
	"sort"

	"github.com/contourhq/contour/pkg/ast"
)

// DiagnosticKind is the machine-matchable taxonomy of everything
// semantic analysis can report. Kinds are distinct and exhaustive per
// pass; nothing in this package returns a bare error for a condition
// that has a kind here.
type DiagnosticKind int

const (
	DuplicateDeclaration DiagnosticKind = iota
	DuplicateField
	DuplicateEnumVariant

	UnknownType
	UnknownAttribute
	UnknownAttributeArg
	InvalidAttributeArg
	DuplicateAttribute

	MissingId
	MultipleId
	InvalidIdType

	UniqueOnRelation
	IndexedOnRelation

	InvalidDefaultForType
	UnknownDefaultFunction
	InvalidEnumDefault

	RelationMissing
	PartialRelation
	AmbiguousRelation
	UnpairedRelation
	DuplicateRelation

	ScalarFieldNotFound
	ReferencedFieldNotFound
	ReferencedFieldNotScalar
	ScalarFieldTypeMismatch
	ScalarFieldArityMismatch
)

var diagnosticKindNames = map[DiagnosticKind]string{
	DuplicateDeclaration:     "DuplicateDeclaration",
	DuplicateField:           "DuplicateField",
	DuplicateEnumVariant:     "DuplicateEnumVariant",
	UnknownType:              "UnknownType",
	UnknownAttribute:         "UnknownAttribute",
	UnknownAttributeArg:      "UnknownAttributeArg",
	InvalidAttributeArg:      "InvalidAttributeArg",
	DuplicateAttribute:       "DuplicateAttribute",
	MissingId:                "MissingId",
	MultipleId:               "MultipleId",
	InvalidIdType:            "InvalidIdType",
	UniqueOnRelation:         "UniqueOnRelation",
	IndexedOnRelation:        "IndexedOnRelation",
	InvalidDefaultForType:    "InvalidDefaultForType",
	UnknownDefaultFunction:   "UnknownDefaultFunction",
	InvalidEnumDefault:       "InvalidEnumDefault",
	RelationMissing:          "RelationMissing",
	PartialRelation:          "PartialRelation",
	AmbiguousRelation:        "AmbiguousRelation",
	UnpairedRelation:         "UnpairedRelation",
	DuplicateRelation:        "DuplicateRelation",
	ScalarFieldNotFound:      "ScalarFieldNotFound",
	ReferencedFieldNotFound:  "ReferencedFieldNotFound",
	ReferencedFieldNotScalar: "ReferencedFieldNotScalar",
	ScalarFieldTypeMismatch:  "ScalarFieldTypeMismatch",
	ScalarFieldArityMismatch: "ScalarFieldArityMismatch",
}

func (k DiagnosticKind) String() string {
	if s, ok := diagnosticKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Severity distinguishes fatal diagnostics (no schema is emitted) from
// warnings (reported but non-blocking).
type Severity int

const (
	Error Severity = iota
	Warning
)

// Diagnostic is a single structured finding from any analysis pass.
type Diagnostic struct {
	Kind         DiagnosticKind
	Severity     Severity
	Span         ast.Span
	Message      string
	RelatedSpans []ast.Span
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Span.File, d.Span.Line, d.Span.Col, d.Kind, d.Message)
}

// diagBag accumulates diagnostics across every pass of a single
// compilation; passes never abort on the first error, they keep
// producing a best-effort partial result alongside the bag.
type diagBag struct {
	diags []Diagnostic
}

func (b *diagBag) add(d Diagnostic) {
	b.diags = append(b.diags, d)
}

func (b *diagBag) addf(kind DiagnosticKind, sev Severity, sp ast.Span, format string, args ...any) {
	b.add(Diagnostic{Kind: kind, Severity: sev, Span: sp, Message: fmt.Sprintf(format, args...)})
}

func (b *diagBag) hasErrors() bool {
	for _, d := range b.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// sorted returns diagnostics ordered by span then kind, the stable
// order the propagation policy requires.
func (b *diagBag) sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.diags))
	copy(out, b.diags)
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i].Span, out[j].Span
		if a.File != c.File {
			return a.File < c.File
		}
		if a.Line != c.Line {
			return a.Line < c.Line
		}
		if a.Col != c.Col {
			return a.Col < c.Col
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
