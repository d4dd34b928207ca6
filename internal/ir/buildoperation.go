package ir

import (
	language "github.com/gqlkit/gqlcodegen/internal/language"
	schema "github.com/gqlkit/gqlcodegen/internal/schema"
)

// fragmentRefs collects the fragments spread directly within one
// definition's own selection tree, deduplicated in first-spread order.
type fragmentRefs struct {
	seen    map[string]struct{}
	ordered []*FragmentDefinition
}

func newFragmentRefs() *fragmentRefs {
	return &fragmentRefs{seen: make(map[string]struct{})}
}

func (r *fragmentRefs) add(frag *FragmentDefinition) {
	if _, ok := r.seen[frag.Name]; ok {
		return
	}
	r.seen[frag.Name] = struct{}{}
	r.ordered = append(r.ordered, frag)
}

func (c *compiler) compileOperation(node *language.OperationDefinition) (*OperationDefinition, error) {
	if node.Name == "" {
		return nil, errUnnamedOperation(node.Position)
	}

	rootType := schema.RootType(c.schema, node.Operation)
	if rootType == nil {
		return nil, errMissingRootType(string(node.Operation), node.Position)
	}
	c.addReferencedType(rootType)

	variables, err := c.compileVariables(node.VariableDefinitions)
	if err != nil {
		return nil, err
	}
	directives, err := c.compileDirectives(node.Directives)
	if err != nil {
		return nil, err
	}

	refs := newFragmentRefs()
	selectionSet, err := c.compileSelectionSet(node.SelectionSet, rootType, refs)
	if err != nil {
		return nil, err
	}

	op := &OperationDefinition{
		Name:                node.Name,
		OperationType:       node.Operation,
		Variables:           variables,
		RootType:            rootType,
		SelectionSet:        selectionSet,
		Directives:          directives,
		ReferencedFragments: refs.ordered,
		Source:              c.operationNetworkSource(node),
		FilePath:            filePathOf(node.Position),
	}

	// Marked operations propagate immediately; the post-pass over the
	// finished result is a no-op for fragments already flagged here.
	if hasLocalCacheMutationDirective(directives) {
		op.IsLocalCacheMutation = true
		c.flagLocalCacheFragments(op.ReferencedFragments)
	}
	return op, nil
}

func (c *compiler) compileVariables(defs language.VariableDefinitionList) ([]*Variable, error) {
	var out []*Variable
	for _, vd := range defs {
		typeName := vd.Type.Name()
		def, ok := c.schema.Types[typeName]
		if !ok {
			return nil, errUnresolvedVariableType(vd.Variable, typeName, vd.Position)
		}
		c.addReferencedType(def)
		out = append(out, &Variable{
			Name:         vd.Variable,
			Type:         vd.Type,
			DefaultValue: vd.DefaultValue,
		})
	}
	return out, nil
}

// compileFragmentByName resolves a fragment lazily: each fragment is
// compiled at most once, on first reference, and shared by identity across
// every spread. The compiling state defensively rejects self-referential
// cycles instead of trusting upstream validation.
func (c *compiler) compileFragmentByName(name string, pos *language.Position) (*FragmentDefinition, error) {
	switch c.fragmentState[name] {
	case fragmentCompiled:
		return c.fragments[name], nil
	case fragmentCompiling:
		return nil, errCyclicFragmentReference(name, pos)
	}
	node, ok := c.fragmentASTs[name]
	if !ok {
		return nil, errUnknownFragment(name, pos)
	}

	c.fragmentState[name] = fragmentCompiling
	frag, err := c.compileFragment(node)
	if err != nil {
		return nil, err
	}
	c.fragments[name] = frag
	c.fragmentState[name] = fragmentCompiled
	return frag, nil
}

func (c *compiler) compileFragment(node *language.FragmentDefinition) (*FragmentDefinition, error) {
	typeCondition, ok := c.schema.Types[node.TypeCondition]
	if !ok {
		return nil, errUnknownTypeCondition(node.TypeCondition, node.Position)
	}
	if !schema.IsComposite(typeCondition) {
		return nil, errInvalidTypeCondition(node.TypeCondition, node.Position)
	}
	c.addReferencedType(typeCondition)

	directives, err := c.compileDirectives(node.Directives)
	if err != nil {
		return nil, err
	}

	refs := newFragmentRefs()
	selectionSet, err := c.compileSelectionSet(node.SelectionSet, typeCondition, refs)
	if err != nil {
		return nil, err
	}

	return &FragmentDefinition{
		Name:                node.Name,
		TypeCondition:       typeCondition,
		SelectionSet:        selectionSet,
		Directives:          directives,
		ReferencedFragments: refs.ordered,
		Source:              c.fragmentNetworkSource(node),
		FilePath:            filePathOf(node.Position),
	}, nil
}
