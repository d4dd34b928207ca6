package ir

import (
	language "github.com/gqlkit/gqlcodegen/internal/language"
)

const (
	includeDirective = "include"
	skipDirective    = "skip"
)

// compileDirectives resolves every directive use against its schema
// definition and binds its arguments. Unknown directives are fatal.
func (c *compiler) compileDirectives(list language.DirectiveList) ([]*Directive, error) {
	var out []*Directive
	for _, node := range list {
		def := c.schema.Directives[node.Name]
		if def == nil {
			return nil, errUnknownDirective(node.Name, node.Position)
		}
		args, err := c.bindDirectiveArguments(def, node.Arguments)
		if err != nil {
			return nil, err
		}
		out = append(out, &Directive{Name: node.Name, Arguments: args})
	}
	return out, nil
}

// inclusionConditions statically evaluates @include/@skip uses. A boolean
// literal resolves to a constant; a variable reference becomes a deferred
// condition. Conditions accumulate in encounter order and are evaluated as
// a conjunction by consumers.
func (c *compiler) inclusionConditions(list language.DirectiveList) ([]InclusionCondition, error) {
	var out []InclusionCondition
	for _, node := range list {
		if node.Name != includeDirective && node.Name != skipDirective {
			continue
		}
		inverted := node.Name == skipDirective

		arg := node.Arguments.ForName("if")
		if arg == nil {
			return nil, errInvalidInclusionCondition(node.Name, node.Position)
		}
		switch arg.Value.Kind {
		case language.BooleanValue:
			included := (arg.Value.Raw == "true") != inverted
			if included {
				out = append(out, InclusionCondition{Kind: InclusionKindIncluded})
			} else {
				out = append(out, InclusionCondition{Kind: InclusionKindSkipped})
			}
		case language.Variable:
			out = append(out, InclusionCondition{
				Kind:     InclusionKindVariable,
				Variable: arg.Value.Raw,
				Inverted: inverted,
			})
		default:
			return nil, errInvalidInclusionCondition(node.Name, arg.Position)
		}
	}
	return out, nil
}

func deprecationReason(dirs language.DirectiveList) string {
	d := dirs.ForName("deprecated")
	if d == nil {
		return ""
	}
	if arg := d.Arguments.ForName("reason"); arg != nil {
		return arg.Value.Raw
	}
	return "No longer supported"
}
