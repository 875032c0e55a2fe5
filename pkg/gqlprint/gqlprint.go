// Package gqlprint renders a gqlast.Document to GraphQL SDL text. It
// owns layout only — definition order and field order are fixed by the
// AST it is given, per gqlast's normative-order contract.
package gqlprint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/contourhq/contour/pkg/gqlast"
)

// Print renders the full document.
func Print(doc *gqlast.Document) string {
	var b strings.Builder
	for i, d := range doc.Definitions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		printDef(&b, d)
	}
	b.WriteString("\n")
	return b.String()
}

func printDef(b *strings.Builder, d gqlast.Definition) {
	switch d := d.(type) {
	case *gqlast.ScalarDef:
		fmt.Fprintf(b, "scalar %s", d.Name)
	case *gqlast.DirectiveDef:
		fmt.Fprintf(b, "directive @%s%s on %s", d.Name, printArgs(d.Args), strings.Join(d.On, " | "))
	case *gqlast.InterfaceDef:
		fmt.Fprintf(b, "interface %s {\n", d.Name)
		printFields(b, d.Fields)
		b.WriteString("}")
	case *gqlast.EnumDef:
		fmt.Fprintf(b, "enum %s {\n", d.Name)
		for _, v := range d.Values {
			fmt.Fprintf(b, "  %s\n", v)
		}
		b.WriteString("}")
	case *gqlast.InputDef:
		fmt.Fprintf(b, "input %s {\n", d.Name)
		for _, f := range d.Fields {
			fmt.Fprintf(b, "  %s: %s%s\n", f.Name, printType(f.Type), printDefault(f.Default))
		}
		b.WriteString("}")
	case *gqlast.TypeDef:
		impl := ""
		if len(d.Implements) > 0 {
			impl = " implements " + strings.Join(d.Implements, " & ")
		}
		fmt.Fprintf(b, "type %s%s {\n", d.Name, impl)
		printFields(b, d.Fields)
		b.WriteString("}")
	}
}

func printFields(b *strings.Builder, fields []gqlast.FieldDef) {
	for _, f := range fields {
		fmt.Fprintf(b, "  %s%s: %s%s\n", f.Name, printArgs(f.Args), printType(f.Type), printDirectives(f.Directives))
	}
}

func printArgs(args []gqlast.InputValue) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%s: %s%s", a.Name, printType(a.Type), printDefault(a.Default))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func printDefault(d *string) string {
	if d == nil {
		return ""
	}
	return " = " + *d
}

func printDirectives(ds []gqlast.Directive) string {
	if len(ds) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(" @")
		b.WriteString(d.Name)
		if len(d.Args) > 0 {
			keys := make([]string, 0, len(d.Args))
			for k := range d.Args {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, len(keys))
			for i, k := range keys {
				parts[i] = fmt.Sprintf("%s: %s", k, d.Args[k])
			}
			b.WriteString("(" + strings.Join(parts, ", ") + ")")
		}
	}
	return b.String()
}

func printType(t gqlast.Type) string {
	var inner string
	if t.List {
		elem := t.Name
		if t.ListElemNonNull {
			elem += "!"
		}
		inner = "[" + elem + "]"
	} else {
		inner = t.Name
	}
	if t.NonNull {
		inner += "!"
	}
	return inner
}
