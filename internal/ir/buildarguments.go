package ir

import (
	language "github.com/gqlkit/gqlcodegen/internal/language"
)

// Argument binding has two explicit entry points, one per formal argument
// list kind. Both fail on argument names the definition does not declare;
// nothing is silently dropped.

func (c *compiler) bindFieldArguments(def *language.FieldDefinition, typeName string, args language.ArgumentList) ([]*Argument, error) {
	var out []*Argument
	for _, node := range args {
		formal := def.Arguments.ForName(node.Name)
		if formal == nil {
			return nil, errUnknownFieldArgument(node.Name, def.Name, typeName, node.Position)
		}
		out = append(out, bindArgument(node, formal))
	}
	return out, nil
}

func (c *compiler) bindDirectiveArguments(def *language.DirectiveDefinition, args language.ArgumentList) ([]*Argument, error) {
	var out []*Argument
	for _, node := range args {
		formal := def.Arguments.ForName(node.Name)
		if formal == nil {
			return nil, errUnknownDirectiveArgument(node.Name, def.Name, node.Position)
		}
		out = append(out, bindArgument(node, formal))
	}
	return out, nil
}

func bindArgument(node *language.Argument, formal *language.ArgumentDefinition) *Argument {
	return &Argument{
		Name:              node.Name,
		Value:             node.Value,
		Type:              formal.Type,
		DeprecationReason: deprecationReason(formal.Directives),
	}
}
