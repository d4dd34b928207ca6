package schema

import language "github.com/gqlkit/gqlcodegen/internal/language"

// Tool-private directive vocabulary. These are compiled into the IR but
// stripped from wire-bound operation text; @typePolicy is a schema-side
// marker only.
const (
	LocalCacheMutationDirective = "localCacheMutation"
	ImportDirective             = "import"
	TypePolicyDirective         = "typePolicy"
	DeferDirective              = "defer"
)

const builtinSDL = `
"""
Marks an operation or fragment as a local cache mutation. Marked
definitions are never sent over the network and exist only to shape
local cache state.
"""
directive @localCacheMutation on QUERY | MUTATION | SUBSCRIPTION | FRAGMENT_DEFINITION

"""
Records a cross-module import for the generated declaration.
"""
directive @import(module: String!) repeatable on QUERY | MUTATION | SUBSCRIPTION | FRAGMENT_DEFINITION

"""
Marks a schema type as requiring explicit code generation even when the
reduced-schema-types option would otherwise prune it.
"""
directive @typePolicy(keyFields: String) on OBJECT | INTERFACE
`

// Builtin returns the SDL source declaring the tool-private directives.
// It is appended to every schema load so documents may use them without
// declaring them per project.
func Builtin() *language.Source {
	return &language.Source{Name: "gqlcodegen/builtin.graphql", Input: builtinSDL, BuiltIn: true}
}
