package ir

import schema "github.com/gqlkit/gqlcodegen/internal/schema"

// The local-cache-mutation propagator reclassifies every definition
// reachable from a marked root through direct fragment references.
// Re-applying to an already-flagged fragment short-circuits, which both
// bounds the recursion and makes the pass idempotent.

func (c *compiler) propagateLocalCacheMutations(result *CompilationResult) {
	for _, op := range result.Operations {
		if op.IsLocalCacheMutation {
			c.flagLocalCacheFragments(op.ReferencedFragments)
		}
	}
	for _, frag := range result.Fragments {
		if hasLocalCacheMutationDirective(frag.Directives) && !frag.IsLocalCacheMutation {
			frag.IsLocalCacheMutation = true
			c.flagLocalCacheFragments(frag.ReferencedFragments)
		}
	}
}

func (c *compiler) flagLocalCacheFragments(frags []*FragmentDefinition) {
	for _, frag := range frags {
		if frag.IsLocalCacheMutation {
			continue
		}
		frag.IsLocalCacheMutation = true
		c.flagLocalCacheFragments(frag.ReferencedFragments)
	}
}

func hasLocalCacheMutationDirective(dirs []*Directive) bool {
	for _, d := range dirs {
		if d.Name == schema.LocalCacheMutationDirective {
			return true
		}
	}
	return false
}
