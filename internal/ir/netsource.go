package ir

import (
	language "github.com/gqlkit/gqlcodegen/internal/language"
	schema "github.com/gqlkit/gqlcodegen/internal/schema"
)

const typenameField = "__typename"

// The network source transformer rewrites a definition's original AST into
// the canonical text actually transmitted: __typename injection, alias and
// directive stripping on __typename itself, and removal of tool-private
// directives. The input AST is shared with the caller and never mutated;
// every rewritten node is a copy.

func (c *compiler) operationNetworkSource(node *language.OperationDefinition) string {
	op := *node
	op.Directives = stripPrivateDirectives(node.Directives)
	op.SelectionSet = transformSelectionSet(node.SelectionSet, false)
	if c.options.LegacySafelistingCompatibleOperations {
		// Legacy safelisting infrastructure expects typename metadata at the
		// operation root as well.
		op.SelectionSet = injectTypename(op.SelectionSet)
	}
	return language.FormatOperation(&op)
}

func (c *compiler) fragmentNetworkSource(node *language.FragmentDefinition) string {
	frag := *node
	frag.Directives = stripPrivateDirectives(node.Directives)
	frag.SelectionSet = injectTypename(transformSelectionSet(node.SelectionSet, true))
	return language.FormatFragment(&frag)
}

// transformSelectionSet rewrites one selection set. inFieldContext reports
// whether the set sits under a field or fragment definition, possibly
// through enclosing inline fragments; only such sets receive an injected
// __typename. An operation's top-level set does not qualify.
func transformSelectionSet(sel language.SelectionSet, inFieldContext bool) language.SelectionSet {
	out := make(language.SelectionSet, 0, len(sel))
	for _, s := range sel {
		switch node := s.(type) {
		case *language.Field:
			field := *node
			if node.Name == typenameField {
				// __typename is always requested bare: no alias, no directives.
				field.Alias = field.Name
				field.Directives = nil
				field.SelectionSet = nil
			} else {
				field.Directives = stripPrivateDirectives(node.Directives)
				if len(node.SelectionSet) > 0 {
					field.SelectionSet = injectTypename(transformSelectionSet(node.SelectionSet, true))
				}
			}
			out = append(out, &field)

		case *language.InlineFragment:
			inline := *node
			inline.Directives = stripPrivateDirectives(node.Directives)
			inline.SelectionSet = transformSelectionSet(node.SelectionSet, inFieldContext)
			if inFieldContext {
				inline.SelectionSet = injectTypename(inline.SelectionSet)
			}
			out = append(out, &inline)

		case *language.FragmentSpread:
			spread := *node
			spread.Directives = stripPrivateDirectives(node.Directives)
			out = append(out, &spread)
		}
	}
	return out
}

func injectTypename(sel language.SelectionSet) language.SelectionSet {
	for _, s := range sel {
		if field, ok := s.(*language.Field); ok && field.Name == typenameField {
			return sel
		}
	}
	return append(sel, &language.Field{Name: typenameField, Alias: typenameField})
}

func stripPrivateDirectives(list language.DirectiveList) language.DirectiveList {
	out := make(language.DirectiveList, 0, len(list))
	for _, d := range list {
		switch d.Name {
		case schema.LocalCacheMutationDirective, schema.ImportDirective:
			continue
		}
		out = append(out, d)
	}
	return out
}
