package semantic

import (
	"github.com/contourhq/contour/pkg/ast"
)

// attrShape is one row of the static attribute dispatch table: adding an
// attribute means adding a row here, not a new type hierarchy.
type attrShape struct {
	// allowedNamed lists permissible named ("key: value") argument
	// names; nil means the attribute takes no named arguments.
	allowedNamed map[string]bool
}

var attrTable = map[string]attrShape{
	"id":       {},
	"unique":   {},
	"indexed":  {},
	"map":      {allowedNamed: map[string]bool{"name": true}},
	"default":  {},
	"relation": {allowedNamed: map[string]bool{"name": true, "field": true, "references": true}},
}

// resolveAttrs applies every raw @attribute on a field against the
// static table, producing the field's AttrSet. modelName and f
// identify the owning field for relation-endpoint bookkeeping; ft is
// the field's already-resolved type, used to validate @unique/@id/
// @default/@indexed placement (§3 invariants 3-5).
func resolveAttrs(modelName string, f *ast.Field, ft FieldType, arity ArityKind, bag *diagBag) AttrSet {
	var out AttrSet
	seen := map[string]bool{}

	for _, call := range f.Attrs {
		shape, ok := attrTable[call.Name]
		if !ok {
			bag.addf(UnknownAttribute, Error, call.Sp, "unknown attribute @%s", call.Name)
			continue
		}
		if seen[call.Name] {
			bag.addf(DuplicateAttribute, Error, call.Sp, "duplicate @%s on field %q", call.Name, f.Name)
			continue
		}
		for _, a := range call.Args {
			if a.Kind == ast.ArgKeyValue && !shape.allowedNamed[a.Key] {
				bag.addf(UnknownAttributeArg, Error, a.Sp, "unknown argument %q for @%s", a.Key, call.Name)
			}
		}
		seen[call.Name] = true

		switch call.Name {
		case "id":
			out.ID = true
			if !(ft.IsScalarPrimitive()) {
				bag.addf(InvalidIdType, Error, f.Sp, "@id field %q must be a scalar primitive type", f.Name)
			}
		case "unique":
			if !ft.IsScalar() {
				bag.addf(UniqueOnRelation, Error, f.Sp, "@unique is not permitted on relation field %q", f.Name)
				continue
			}
			out.Unique = true
		case "indexed":
			if !ft.IsScalar() {
				bag.addf(IndexedOnRelation, Error, f.Sp, "@indexed is not permitted on relation field %q", f.Name)
				continue
			}
			out.Indexed = true
		case "map":
			name, diagOK := requireStringNamed(call, "name", bag)
			if !diagOK {
				continue
			}
			if !isValidIdent(name) {
				bag.addf(InvalidAttributeArg, Error, call.Sp, "@map name %q is not a valid identifier", name)
				continue
			}
			out.MappedName = &name
		case "default":
			de, diagOK := resolveDefault(call, ft, bag)
			if diagOK {
				out.Default = de
			}
		case "relation":
			if !ft.IsModel() {
				bag.addf(InvalidAttributeArg, Error, call.Sp, "@relation is only permitted on relation fields")
				continue
			}
			ep := resolveRelationAttr(modelName, f.Name, arity, f.Type.Optional, call, bag)
			ep.TargetModel = ft.RefName
			out.Relation = ep
		}
	}

	if out.Default != nil && out.Default.Kind == DefaultAuto && !out.ID {
		bag.addf(InvalidDefaultForType, Error, f.Sp, "auto() is only permitted on ShortStr @id fields")
	}

	return out
}

func requireStringNamed(call ast.AttrCall, key string, bag *diagBag) (string, bool) {
	for _, a := range call.Args {
		if a.Kind == ast.ArgKeyValue && a.Key == key {
			if a.Value.Kind == ast.ArgLiteral {
				if s, ok := a.Value.Literal.(string); ok {
					return s, true
				}
			}
			bag.addf(InvalidAttributeArg, Error, call.Sp, "@%s %s: must be a string literal", call.Name, key)
			return "", false
		}
	}
	bag.addf(UnknownAttributeArg, Error, call.Sp, "@%s requires a %q argument", call.Name, key)
	return "", false
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

// resolveDefault validates @default's single positional argument against
// the field's resolved type (§3 invariant 4).
func resolveDefault(call ast.AttrCall, ft FieldType, bag *diagBag) (*DefaultExpr, bool) {
	if len(call.Args) != 1 {
		bag.addf(InvalidAttributeArg, Error, call.Sp, "@default takes exactly one argument")
		return nil, false
	}
	arg := call.Args[0]

	switch arg.Kind {
	case ast.ArgCall:
		switch arg.CallName {
		case "auto":
			if ft.Kind != TypeShortStr {
				bag.addf(InvalidDefaultForType, Error, call.Sp, "auto() is only permitted on ShortStr @id fields")
				return nil, false
			}
			return &DefaultExpr{Kind: DefaultAuto}, true
		case "now":
			if ft.Kind != TypeDateTime {
				bag.addf(InvalidDefaultForType, Error, call.Sp, "now() is only permitted on DateTime fields")
				return nil, false
			}
			return &DefaultExpr{Kind: DefaultNow}, true
		default:
			bag.addf(UnknownDefaultFunction, Error, arg.Sp, "unknown default function %q", arg.CallName)
			return nil, false
		}
	case ast.ArgIdent:
		if !ft.IsEnum() {
			bag.addf(InvalidEnumDefault, Error, call.Sp, "bareword default %q is only permitted on enum fields", arg.Ident)
			return nil, false
		}
		return &DefaultExpr{Kind: DefaultEnumVariant, VariantName: arg.Ident}, true
	case ast.ArgLiteral:
		if !literalMatchesType(arg.Literal, ft) {
			bag.addf(InvalidDefaultForType, Error, call.Sp, "default literal does not match field type")
			return nil, false
		}
		return &DefaultExpr{Kind: DefaultLiteral, Literal: arg.Literal}, true
	default:
		bag.addf(InvalidAttributeArg, Error, call.Sp, "unsupported @default argument")
		return nil, false
	}
}

func literalMatchesType(v any, ft FieldType) bool {
	switch ft.Kind {
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeShortStr, TypeLongStr:
		_, ok := v.(string)
		return ok
	case TypeInt32, TypeInt64:
		_, ok := v.(int64)
		return ok
	case TypeFloat64:
		if _, ok := v.(float64); ok {
			return true
		}
		_, ok := v.(int64)
		return ok
	case TypeDateTime:
		_, ok := v.(string)
		return ok
	default:
		return false
	}
}

// resolveRelationAttr builds an unresolved RelationEndpoint from
// @relation(name: ..., field: ..., references: ...); pairing happens
// later in the relation resolver.
func resolveRelationAttr(modelName, fieldName string, arity ArityKind, optional bool, call ast.AttrCall, bag *diagBag) *RelationEndpoint {
	ep := &RelationEndpoint{ModelName: modelName, FieldName: fieldName, FieldArity: arity, FieldOptional: optional, Sp: call.Sp}
	for _, a := range call.Args {
		if a.Kind != ast.ArgKeyValue {
			bag.addf(InvalidAttributeArg, Error, a.Sp, "@relation arguments must be named")
			continue
		}
		switch a.Key {
		case "name":
			if a.Value.Kind == ast.ArgLiteral {
				if s, ok := a.Value.Literal.(string); ok {
					ep.Name = s
					continue
				}
			}
			bag.addf(InvalidAttributeArg, Error, a.Sp, "@relation name must be a string literal")
		case "field":
			if a.Value.Kind == ast.ArgIdent {
				ep.ScalarField = a.Value.Ident
				ep.HasScalarField = true
				continue
			}
			bag.addf(InvalidAttributeArg, Error, a.Sp, "@relation field must be an identifier")
		case "references":
			if a.Value.Kind == ast.ArgIdent {
				ep.References = a.Value.Ident
				ep.HasReferences = true
				continue
			}
			bag.addf(InvalidAttributeArg, Error, a.Sp, "@relation references must be an identifier")
		default:
			bag.addf(UnknownAttributeArg, Error, a.Sp, "unknown @relation argument %q", a.Key)
		}
	}
	if ep.Name == "" {
		bag.addf(UnknownAttributeArg, Error, call.Sp, "@relation requires a name")
	}
	return ep
}
