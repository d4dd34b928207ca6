package ir

import (
	language "github.com/gqlkit/gqlcodegen/internal/language"
	schema "github.com/gqlkit/gqlcodegen/internal/schema"
)

// compileSelectionSet compiles AST selections against their parent
// composite type, in document order. A literal __typename written by the
// user is dropped here; the network source transformer reinjects it into
// the wire text unconditionally.
func (c *compiler) compileSelectionSet(sel language.SelectionSet, parent *language.Definition, refs *fragmentRefs) (*SelectionSet, error) {
	set := &SelectionSet{Type: parent}
	for _, s := range sel {
		switch node := s.(type) {
		case *language.Field:
			if node.Name == typenameField {
				continue
			}
			field, err := c.compileField(node, parent, refs)
			if err != nil {
				return nil, err
			}
			set.Selections = append(set.Selections, field)

		case *language.InlineFragment:
			inline, err := c.compileInlineFragment(node, parent, refs)
			if err != nil {
				return nil, err
			}
			set.Selections = append(set.Selections, inline)

		case *language.FragmentSpread:
			frag, err := c.compileFragmentByName(node.Name, node.Position)
			if err != nil {
				return nil, err
			}
			directives, err := c.compileDirectives(node.Directives)
			if err != nil {
				return nil, err
			}
			conditions, err := c.inclusionConditions(node.Directives)
			if err != nil {
				return nil, err
			}
			refs.add(frag)
			set.Selections = append(set.Selections, &FragmentSpread{
				Fragment:            frag,
				InclusionConditions: conditions,
				Directives:          directives,
			})
		}
	}
	return set, nil
}

func (c *compiler) compileField(node *language.Field, parent *language.Definition, refs *fragmentRefs) (*Field, error) {
	fieldDef := c.resolveFieldDefinition(parent, node.Name)
	if fieldDef == nil {
		return nil, errUnknownField(node.Name, parent.Name, node.Position)
	}

	field := &Field{
		Name:        node.Name,
		Type:        fieldDef.Type,
		Description: fieldDef.Description,
	}
	if node.Alias != "" && node.Alias != node.Name {
		field.Alias = node.Alias
	}
	if err := c.checkFieldName(field, node.Position); err != nil {
		return nil, err
	}

	var err error
	if field.Arguments, err = c.bindFieldArguments(fieldDef, parent.Name, node.Arguments); err != nil {
		return nil, err
	}
	if field.Directives, err = c.compileDirectives(node.Directives); err != nil {
		return nil, err
	}
	if field.InclusionConditions, err = c.inclusionConditions(node.Directives); err != nil {
		return nil, err
	}
	field.DeprecationReason = deprecationReason(fieldDef.Directives)

	namedType := c.schema.Types[fieldDef.Type.Name()]
	if namedType != nil {
		c.addReferencedType(namedType)
		if schema.IsComposite(namedType) {
			if len(node.SelectionSet) == 0 {
				return nil, errMissingSelectionSet(node.Name, namedType.Name, node.Position)
			}
			if field.SelectionSet, err = c.compileSelectionSet(node.SelectionSet, namedType, refs); err != nil {
				return nil, err
			}
		}
	}
	return field, nil
}

func (c *compiler) compileInlineFragment(node *language.InlineFragment, parent *language.Definition, refs *fragmentRefs) (*InlineFragment, error) {
	narrowed := parent
	if node.TypeCondition != "" {
		def, ok := c.schema.Types[node.TypeCondition]
		if !ok {
			return nil, errUnknownTypeCondition(node.TypeCondition, node.Position)
		}
		if !schema.IsComposite(def) {
			return nil, errInvalidTypeCondition(node.TypeCondition, node.Position)
		}
		c.addReferencedType(def)
		narrowed = def
	} else if node.Directives.ForName(schema.DeferDirective) != nil {
		// Pipeline policy: deferred payloads are emitted as their own typed
		// models, which requires a concrete type condition.
		return nil, errDeferWithoutTypeCondition(node.Position)
	}

	directives, err := c.compileDirectives(node.Directives)
	if err != nil {
		return nil, err
	}
	conditions, err := c.inclusionConditions(node.Directives)
	if err != nil {
		return nil, err
	}
	selectionSet, err := c.compileSelectionSet(node.SelectionSet, narrowed, refs)
	if err != nil {
		return nil, err
	}
	return &InlineFragment{
		SelectionSet:        selectionSet,
		InclusionConditions: conditions,
		Directives:          directives,
	}, nil
}

// resolveFieldDefinition resolves a field on the parent type, including the
// schema meta-fields: __schema and __type are valid only on the query root
// type. __typename never reaches this point; it is elided earlier.
func (c *compiler) resolveFieldDefinition(parent *language.Definition, name string) *language.FieldDefinition {
	switch name {
	case "__schema":
		if parent == c.schema.Query {
			return &language.FieldDefinition{
				Name: "__schema",
				Type: language.NonNullNamedType("__Schema", nil),
			}
		}
		return nil
	case "__type":
		if parent == c.schema.Query {
			return &language.FieldDefinition{
				Name: "__type",
				Type: language.NamedType("__Type", nil),
				Arguments: language.ArgumentDefinitionList{
					{Name: "name", Type: language.NonNullNamedType("String", nil)},
				},
			}
		}
		return nil
	}
	return parent.Fields.ForName(name)
}

// checkFieldName rejects response keys the generated models cannot carry.
func (c *compiler) checkFieldName(field *Field, pos *language.Position) error {
	key := lowerFirst(field.ResponseKey())
	for _, reserved := range c.options.Validation.DisallowedFieldNames.forType(field.Type) {
		if key == lowerFirst(reserved) {
			return errReservedFieldName(key, pos)
		}
	}
	if ns := c.options.Validation.SchemaNamespace; ns != "" && key == lowerFirst(ns) {
		return errReservedFieldName(key, pos)
	}
	return nil
}
