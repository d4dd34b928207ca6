// Package ir compiles schema-validated GraphQL documents into the fully
// resolved intermediate representation consumed by downstream code emitters.
package ir

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	language "github.com/gqlkit/gqlcodegen/internal/language"
)

var tracer = otel.Tracer("gqlcodegen/ir")

type fragmentState int

const (
	fragmentPending fragmentState = iota
	fragmentCompiling
	fragmentCompiled
)

// compiler is the shared state threaded through every compilation pass.
// All mutation during a compile happens here; the schema is never written.
type compiler struct {
	schema  *language.Schema
	options Options

	fragmentASTs  map[string]*language.FragmentDefinition
	fragmentOrder []string
	fragmentState map[string]fragmentState
	fragments     map[string]*FragmentDefinition

	referencedTypes *ReferencedTypes
}

// Compile turns a parsed document set into a CompilationResult. The inputs
// are assumed to have passed standard parsing and schema validation
// upstream; compilation is synchronous, deterministic and performs no I/O.
func Compile(ctx context.Context, schema *language.Schema, doc *language.QueryDocument, options Options) (*CompilationResult, error) {
	_, span := tracer.Start(ctx, "ir.compile")
	defer span.End()

	if schema.Query == nil {
		return nil, errMissingQueryRootType()
	}

	c := &compiler{
		schema:          schema,
		options:         options,
		fragmentASTs:    make(map[string]*language.FragmentDefinition),
		fragmentState:   make(map[string]fragmentState),
		fragments:       make(map[string]*FragmentDefinition),
		referencedTypes: newReferencedTypes(),
	}
	c.indexFragments(doc)

	result := &CompilationResult{
		Schema:          c.schemaMetadata(),
		ReferencedTypes: c.referencedTypes,
	}

	for _, node := range doc.Operations {
		op, err := c.compileOperation(node)
		if err != nil {
			return nil, err
		}
		result.Operations = append(result.Operations, op)
	}

	// Fragments never spread by an operation are still part of the result;
	// compile the remaining pending ones in input order.
	for _, name := range c.fragmentOrder {
		if _, err := c.compileFragmentByName(name, c.fragmentASTs[name].Position); err != nil {
			return nil, err
		}
	}
	for _, name := range c.fragmentOrder {
		result.Fragments = append(result.Fragments, c.fragments[name])
	}

	c.propagateLocalCacheMutations(result)

	span.SetAttributes(
		attribute.Int("graphql.operation_count", len(result.Operations)),
		attribute.Int("graphql.fragment_count", len(result.Fragments)),
		attribute.Int("graphql.referenced_type_count", len(result.ReferencedTypes.Types())),
	)
	return result, nil
}

// indexFragments registers every fragment AST up front so spreads can be
// resolved lazily in any order.
func (c *compiler) indexFragments(doc *language.QueryDocument) {
	for _, frag := range doc.Fragments {
		if _, ok := c.fragmentASTs[frag.Name]; ok {
			continue
		}
		c.fragmentASTs[frag.Name] = frag
		c.fragmentOrder = append(c.fragmentOrder, frag.Name)
		c.fragmentState[frag.Name] = fragmentPending
	}
}

func (c *compiler) schemaMetadata() *SchemaMetadata {
	md := &SchemaMetadata{
		QueryTypeName: c.schema.Query.Name,
		Description:   c.schema.Description,
	}
	if c.schema.Mutation != nil {
		md.MutationTypeName = c.schema.Mutation.Name
	}
	if c.schema.Subscription != nil {
		md.SubscriptionTypeName = c.schema.Subscription.Name
	}
	return md
}

func filePathOf(pos *language.Position) string {
	if pos == nil || pos.Src == nil {
		return ""
	}
	return pos.Src.Name
}
