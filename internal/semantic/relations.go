package semantic

// resolveRelations runs Pass B of the relation resolver over every
// endpoint collected during attribute resolution (Pass A happens
// implicitly: endpoints are gathered as fields are resolved). Endpoints
// are grouped by relation name; each group is paired, validated, and
// turned into a RelationPair cross-linked from both fields.
func resolveRelations(models map[string]*ModelDecl, endpoints []*RelationEndpoint, bag *diagBag) {
	groups := map[string][]*RelationEndpoint{}
	order := []string{}
	for _, ep := range endpoints {
		if _, ok := groups[ep.Name]; !ok {
			order = append(order, ep.Name)
		}
		groups[ep.Name] = append(groups[ep.Name], ep)
	}

	for _, name := range order {
		group := groups[name]
		if len(group) > 2 {
			for _, extra := range group[2:] {
				bag.addf(DuplicateRelation, Error, extra.Sp, "relation %q appears on more than two endpoints", name)
			}
			group = group[:2]
		}
		var owner, referenced *RelationEndpoint

		switch len(group) {
		case 2:
			a, b := group[0], group[1]
			var ok bool
			owner, referenced, ok = pickOwner(a, b, bag)
			if !ok {
				continue
			}
		case 1:
			ep := group[0]
			// A lone endpoint is only valid for a self-relation: the
			// field's own type names the model it is declared on. It
			// must then supply both field: and references: — it
			// stands for both sides of a reflexive pairing (e.g. a
			// symmetric "spouse" relation). A self-typed endpoint
			// missing one of them is an incomplete owner declaration,
			// not a missing second side, so it's PartialRelation.
			if ep.TargetModel != ep.ModelName {
				bag.addf(UnpairedRelation, Error, ep.Sp, "relation %q has only one endpoint", name)
				continue
			}
			if !ep.HasScalarField || !ep.HasReferences {
				bag.addf(PartialRelation, Error, ep.Sp, "relation %q: owner endpoint missing field: or references:", name)
				continue
			}
			owner, referenced = ep, ep
		default:
			continue
		}
		owner.Role = RoleOwner
		if referenced != owner {
			referenced.Role = RoleReferenced
		}

		ownerModel := models[owner.ModelName]
		refModel := models[referenced.ModelName]
		if ownerModel == nil || refModel == nil {
			continue
		}

		scalarField := ownerModel.Field(owner.ScalarField)
		if scalarField == nil {
			bag.addf(ScalarFieldNotFound, Error, owner.Sp, "relation %q: scalar field %q not found on %s", name, owner.ScalarField, owner.ModelName)
			continue
		}
		refField := refModel.Field(owner.References)
		if refField == nil {
			bag.addf(ReferencedFieldNotFound, Error, owner.Sp, "relation %q: referenced field %q not found on %s", name, owner.References, referenced.ModelName)
			continue
		}
		if !refField.Attrs.ID && !refField.Attrs.Unique {
			bag.addf(ReferencedFieldNotScalar, Error, owner.Sp, "relation %q: referenced field %q must be @id or @unique", name, owner.References)
			continue
		}
		if scalarField.Type != refField.Type {
			bag.addf(ScalarFieldTypeMismatch, Error, owner.Sp, "relation %q: scalar field %q type does not match referenced field %q", name, owner.ScalarField, owner.References)
			continue
		}
		wantArity := owner.FieldArity
		if wantArity == Array && scalarField.Arity != Array {
			bag.addf(ScalarFieldArityMismatch, Error, owner.Sp, "relation %q: array relation requires an array scalar field", name)
			continue
		}
		if wantArity != Array && scalarField.Arity == Array {
			bag.addf(ScalarFieldArityMismatch, Error, owner.Sp, "relation %q: singular relation requires a non-array scalar field", name)
			continue
		}

		pair := &RelationPair{
			Name:        name,
			Owner:       owner,
			Referenced:  referenced,
			Cardinality: deriveCardinality(owner, referenced),
		}
		owner.Pair = pair
		referenced.Pair = pair
	}
}

// pickOwner determines which of the two endpoints is the owner (the one
// that supplies both field: and references:); the other must supply
// neither. Any other combination is PartialRelation/AmbiguousRelation.
func pickOwner(a, b *RelationEndpoint, bag *diagBag) (owner, referenced *RelationEndpoint, ok bool) {
	aFull := a.HasScalarField && a.HasReferences
	bFull := b.HasScalarField && b.HasReferences
	aEmpty := !a.HasScalarField && !a.HasReferences
	bEmpty := !b.HasScalarField && !b.HasReferences

	switch {
	case aFull && bEmpty:
		return a, b, true
	case bFull && aEmpty:
		return b, a, true
	case aFull && bFull:
		bag.addf(AmbiguousRelation, Error, a.Sp, "relation %q: both endpoints supply field/references", a.Name)
		return nil, nil, false
	default:
		ep := a
		if !a.HasScalarField && !a.HasReferences {
			ep = b
		}
		bag.addf(PartialRelation, Error, ep.Sp, "relation %q: owner endpoint missing field: or references:", a.Name)
		return nil, nil, false
	}
}

func deriveCardinality(owner, referenced *RelationEndpoint) Cardinality {
	switch {
	case owner.FieldArity == Array && referenced.FieldArity == Array:
		return ManyToMany
	case owner.FieldArity == Array || referenced.FieldArity == Array:
		return OneToMany
	default:
		return OneToOne
	}
}
