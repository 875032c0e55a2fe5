package semantic

import "github.com/contourhq/contour/pkg/ast"

// Result is the outcome of a compilation: either a usable Graph plus
// any non-fatal warnings, or the accumulated diagnostics when analysis
// failed. Exactly one of Graph / Diagnostics describes a failed run;
// callers should check HasErrors() rather than nil-checking Graph.
type Result struct {
	Graph       *Graph
	Diagnostics []Diagnostic
}

func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Analyze runs the full semantic-analysis pipeline: registration, enum
// resolution, per-model field/attribute/type resolution, and relation
// resolution (Pass A + Pass B). Each pass runs to completion and adds
// to a single diagnostic bag; relation resolution — the pass most
// dependent on a well-formed graph — only runs if the earlier passes
// produced no fatal errors, per the propagation policy in §7.
func Analyze(decls []ast.Declaration) Result {
	bag := &diagBag{}
	reg := newRegistry()
	reg.register(decls, bag)

	graph := newGraph()
	if reg.config != nil {
		graph.config = &Config{Name: reg.config.Name, Provider: reg.config.Provider, Sp: reg.config.Span()}
	}

	// Enums first: models may reference them by name.
	for _, name := range reg.enumOrder {
		raw := reg.enums[name]
		graph.enumOrder = append(graph.enumOrder, name)
		graph.enumsByN[name] = resolveEnum(raw, bag)
	}

	modelExists := map[string]bool{}
	for _, name := range reg.modelOrder {
		modelExists[name] = true
	}

	var endpoints []*RelationEndpoint
	for _, name := range reg.modelOrder {
		raw := reg.models[name]
		md, eps := resolveModel(raw, graph.enumsByN, modelExists, bag)
		graph.modelOrder = append(graph.modelOrder, name)
		graph.modelsByN[name] = md
		endpoints = append(endpoints, eps...)
	}

	if !bag.hasErrors() {
		resolveRelations(graph.modelsByN, endpoints, bag)
	}

	return Result{Graph: graph, Diagnostics: bag.sorted()}
}

func resolveEnum(raw *ast.Enum, bag *diagBag) *EnumDecl {
	e := &EnumDecl{Name: raw.Name, Sp: raw.Span()}
	seen := map[string]bool{}
	for _, v := range raw.Variants {
		if seen[v.Name] {
			bag.addf(DuplicateEnumVariant, Error, v.Sp, "duplicate variant %q in enum %s", v.Name, raw.Name)
			continue
		}
		seen[v.Name] = true
		e.Variants = append(e.Variants, v.Name)
	}
	return e
}

func resolveModel(raw *ast.Model, enums map[string]*EnumDecl, models map[string]bool, bag *diagBag) (*ModelDecl, []*RelationEndpoint) {
	md := &ModelDecl{Name: raw.Name, Sp: raw.Span()}
	var endpoints []*RelationEndpoint
	seenFields := map[string]bool{}

	for _, rf := range raw.Fields {
		if seenFields[rf.Name] {
			bag.addf(DuplicateField, Error, rf.Sp, "duplicate field %q on model %s", rf.Name, raw.Name)
			continue
		}
		seenFields[rf.Name] = true

		ft := resolveFieldType(rf.Type, enums, models, bag)
		arity := resolveArity(rf.Type)
		attrs := resolveAttrs(raw.Name, rf, ft, arity, bag)

		f := &Field{Name: rf.Name, Type: ft, Arity: arity, Attrs: attrs, Sp: rf.Sp}
		md.Fields = append(md.Fields, f)

		if attrs.ID {
			if md.IDField != nil {
				bag.addf(MultipleId, Error, rf.Sp, "model %s has more than one @id field", raw.Name)
			} else {
				md.IDField = f
			}
		}
		if attrs.Relation != nil {
			endpoints = append(endpoints, attrs.Relation)
		}
	}

	if md.IDField == nil {
		bag.addf(MissingId, Error, raw.Span(), "model %s has no @id field", raw.Name)
	}

	return md, endpoints
}
