package semantic

import "github.com/contourhq/contour/pkg/ast"

// builtinScalars are the reserved primitive type names; they may not be
// redeclared as a model or enum name.
var builtinScalars = map[string]FieldTypeKind{
	"ShortStr": TypeShortStr,
	"LongStr":  TypeLongStr,
	"Boolean":  TypeBoolean,
	"DateTime": TypeDateTime,
	"Int32":    TypeInt32,
	"Int64":    TypeInt64,
	"Float64":  TypeFloat64,
}

// registry interns model and enum names into a single flat namespace
// and rejects collisions across the two spaces and against builtins.
// It owns nothing beyond name -> declaration-site span bookkeeping; the
// actual ModelDecl/EnumDecl values are built by the caller once
// uniqueness has been checked.
type registry struct {
	models map[string]*ast.Model
	enums  map[string]*ast.Enum
	config *ast.Config

	// modelOrder and enumOrder preserve first-seen order within each
	// space so the model graph can report declarations deterministically
	// even when duplicates are later dropped.
	modelOrder []string
	enumOrder  []string
}

func newRegistry() *registry {
	return &registry{models: map[string]*ast.Model{}, enums: map[string]*ast.Enum{}}
}

// register walks the raw declarations once, building the registry and
// reporting every duplicate (top-level name collisions, including a
// model/enum sharing a name, and duplicate config blocks). It does not
// consult the attribute or field-type resolvers.
func (r *registry) register(decls []ast.Declaration, bag *diagBag) {
	for _, d := range decls {
		switch d := d.(type) {
		case *ast.Config:
			if r.config != nil {
				bag.add(Diagnostic{
					Kind: DuplicateDeclaration, Severity: Error, Span: d.Span(),
					Message:      "duplicate config block",
					RelatedSpans: []ast.Span{r.config.Span()},
				})
				continue
			}
			r.config = d
		case *ast.Model:
			r.registerName(d.Name, d.Span(), bag)
			_, isEnum := r.enums[d.Name]
			if existing, ok := r.models[d.Name]; !ok && !isEnum {
				r.models[d.Name] = d
				r.modelOrder = append(r.modelOrder, d.Name)
			} else {
				_ = existing
			}
		case *ast.Enum:
			r.registerName(d.Name, d.Span(), bag)
			_, isModel := r.models[d.Name]
			if _, ok := r.enums[d.Name]; !ok && !isModel {
				r.enums[d.Name] = d
				r.enumOrder = append(r.enumOrder, d.Name)
			}
		}
	}
}

// registerName checks a model/enum name against builtins and against
// both namespaces, reporting DuplicateDeclaration for any collision.
// The first declaration of a name wins for downstream construction;
// later ones are reported but otherwise ignored.
func (r *registry) registerName(name string, sp ast.Span, bag *diagBag) {
	if _, ok := builtinScalars[name]; ok {
		bag.addf(DuplicateDeclaration, Error, sp, "%q collides with a built-in scalar type", name)
		return
	}
	if existing, ok := r.models[name]; ok {
		bag.add(Diagnostic{
			Kind: DuplicateDeclaration, Severity: Error, Span: sp,
			Message:      "duplicate top-level declaration " + name,
			RelatedSpans: []ast.Span{existing.Span()},
		})
		return
	}
	if existing, ok := r.enums[name]; ok {
		bag.add(Diagnostic{
			Kind: DuplicateDeclaration, Severity: Error, Span: sp,
			Message:      "duplicate top-level declaration " + name,
			RelatedSpans: []ast.Span{existing.Span()},
		})
	}
}
