package ir

import (
	language "github.com/gqlkit/gqlcodegen/internal/language"
	schema "github.com/gqlkit/gqlcodegen/internal/schema"
)

// ReferencedTypes is the monotonic set of named schema types reachable from
// the compiled documents, in first-reference order. Interface implementor
// lists are kept in a side table owned by the compilation; the shared
// schema is never mutated.
type ReferencedTypes struct {
	order        []*language.Definition
	seen         map[string]struct{}
	implementors map[string][]*language.Definition
}

func newReferencedTypes() *ReferencedTypes {
	return &ReferencedTypes{
		seen:         make(map[string]struct{}),
		implementors: make(map[string][]*language.Definition),
	}
}

// Types returns every referenced type, each exactly once, in the order it
// was first encountered.
func (r *ReferencedTypes) Types() []*language.Definition { return r.order }

func (r *ReferencedTypes) Contains(name string) bool {
	_, ok := r.seen[name]
	return ok
}

// Implementors returns the concrete types recorded for a referenced
// interface, for the downstream emitter.
func (r *ReferencedTypes) Implementors(interfaceName string) []*language.Definition {
	return r.implementors[interfaceName]
}

// addReferencedType records def and everything reachable from it through
// interface/union/input-object/object relationships. The visited-set test
// runs before any recursion, so cycles in the schema graph terminate.
func (c *compiler) addReferencedType(def *language.Definition) {
	r := c.referencedTypes
	if _, ok := r.seen[def.Name]; ok {
		return
	}
	r.seen[def.Name] = struct{}{}
	r.order = append(r.order, def)

	switch def.Kind {
	case language.Interface:
		impls := make([]*language.Definition, 0)
		for _, impl := range schema.Implementors(c.schema, def) {
			if c.options.ReduceGeneratedSchemaTypes && impl.Directives.ForName(schema.TypePolicyDirective) == nil {
				continue
			}
			impls = append(impls, impl)
			c.addReferencedType(impl)
		}
		r.implementors[def.Name] = impls

	case language.Union:
		for _, member := range c.schema.PossibleTypes[def.Name] {
			c.addReferencedType(member)
		}

	case language.InputObject:
		for _, f := range def.Fields {
			if t := c.schema.Types[f.Type.Name()]; t != nil {
				c.addReferencedType(t)
			}
		}

	case language.Object:
		for _, ifaceName := range def.Interfaces {
			if t := c.schema.Types[ifaceName]; t != nil {
				c.addReferencedType(t)
			}
		}
	}
}
