// Package schema loads and inspects the GraphQL schema the operation
// compiler resolves documents against. Parsing and validation are delegated
// to gqlparser; this package only adds the lookups the compiler needs.
package schema

import (
	"github.com/vektah/gqlparser/v2"

	language "github.com/gqlkit/gqlcodegen/internal/language"
)

// Load builds a validated schema from the given SDL sources. The tool's
// own directive vocabulary (builtin.go) is always appended, and gqlparser
// contributes the standard prelude (built-in scalars, @include/@skip/
// @deprecated/@defer, introspection types).
func Load(sources ...*language.Source) (*language.Schema, error) {
	sources = append(sources, Builtin())
	return gqlparser.LoadSchema(sources...)
}

// RootType returns the schema's root type for the given operation kind,
// or nil if the schema does not define one.
func RootType(s *language.Schema, op language.Operation) *language.Definition {
	switch op {
	case language.Query:
		return s.Query
	case language.Mutation:
		return s.Mutation
	case language.Subscription:
		return s.Subscription
	}
	return nil
}

// IsComposite reports whether def is an object, interface or union type.
func IsComposite(def *language.Definition) bool {
	if def == nil {
		return false
	}
	switch def.Kind {
	case language.Object, language.Interface, language.Union:
		return true
	}
	return false
}

// Implementors returns the concrete object types that can appear where the
// given abstract type is expected, in schema declaration order.
func Implementors(s *language.Schema, def *language.Definition) []*language.Definition {
	var out []*language.Definition
	for _, t := range s.PossibleTypes[def.Name] {
		if t.Kind == language.Object {
			out = append(out, t)
		}
	}
	return out
}
