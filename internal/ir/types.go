package ir

import (
	"strings"

	language "github.com/gqlkit/gqlcodegen/internal/language"
)

// CompilationResult is the fully resolved intermediate representation of a
// document set compiled against a schema. It is immutable once Compile
// returns, except for the IsLocalCacheMutation flags which are settled by
// the propagator before the result is handed out.
type CompilationResult struct {
	Schema          *SchemaMetadata
	Operations      []*OperationDefinition
	Fragments       []*FragmentDefinition
	ReferencedTypes *ReferencedTypes
}

// SchemaMetadata carries the schema-level facts downstream emitters need:
// the root-type triple and the schema's documentation text.
type SchemaMetadata struct {
	QueryTypeName        string
	MutationTypeName     string
	SubscriptionTypeName string
	Description          string
}

type OperationDefinition struct {
	Name          string
	OperationType language.Operation
	Variables     []*Variable
	RootType      *language.Definition
	SelectionSet  *SelectionSet
	Directives    []*Directive

	// ReferencedFragments holds the fragments spread directly anywhere in
	// this operation's own selection tree, in first-spread order. Fragments
	// reached only through another fragment's body are not included.
	ReferencedFragments []*FragmentDefinition

	// Source is the canonical text transmitted over the network, with
	// typename injection applied and tool-private directives removed.
	Source string

	FilePath             string
	IsLocalCacheMutation bool
}

type FragmentDefinition struct {
	Name                string
	TypeCondition       *language.Definition
	SelectionSet        *SelectionSet
	Directives          []*Directive
	ReferencedFragments []*FragmentDefinition
	Source              string
	FilePath            string

	// IsLocalCacheMutation starts false and is flipped only by the
	// local-cache-mutation propagator.
	IsLocalCacheMutation bool
}

// SelectionSet is an ordered set of selections requested against one
// composite type. A user-written __typename selection is never present
// here; it exists only in the wire text.
type SelectionSet struct {
	Type       *language.Definition
	Selections []Selection
}

// Selection is one of *Field, *InlineFragment or *FragmentSpread.
type Selection interface {
	isSelection()
}

type Field struct {
	Name      string
	Alias     string
	Type      *language.Type
	Arguments []*Argument

	// InclusionConditions is evaluated as a conjunction: the field is part
	// of the response only when every condition holds.
	InclusionConditions []InclusionCondition

	Description       string
	DeprecationReason string
	Directives        []*Directive

	// SelectionSet is present iff the field's named type is composite.
	SelectionSet *SelectionSet
}

type InlineFragment struct {
	SelectionSet        *SelectionSet
	InclusionConditions []InclusionCondition
	Directives          []*Directive
}

type FragmentSpread struct {
	Fragment            *FragmentDefinition
	InclusionConditions []InclusionCondition
	Directives          []*Directive
}

func (*Field) isSelection()          {}
func (*InlineFragment) isSelection() {}
func (*FragmentSpread) isSelection() {}

// ResponseKey returns the key under which the field appears in a response:
// the alias when present, the field name otherwise.
func (f *Field) ResponseKey() string {
	if f.Alias != "" && f.Alias != f.Name {
		return f.Alias
	}
	return f.Name
}

// InclusionCondition governs whether a selection is present. It is either a
// statically resolved constant or a condition deferred to a variable value.
type InclusionCondition struct {
	Kind InclusionConditionKind

	// Variable and Inverted are set only for KindVariable. Inverted is true
	// for @skip, false for @include.
	Variable string
	Inverted bool
}

type InclusionConditionKind string

const (
	InclusionKindIncluded InclusionConditionKind = "INCLUDED"
	InclusionKindSkipped  InclusionConditionKind = "SKIPPED"
	InclusionKindVariable InclusionConditionKind = "VARIABLE"
)

type Variable struct {
	Name         string
	Type         *language.Type
	DefaultValue *language.Value
}

type Argument struct {
	Name              string
	Value             *language.Value
	Type              *language.Type
	DeprecationReason string
}

type Directive struct {
	Name      string
	Arguments []*Argument
}

// Options control compilation behavior. The zero value is a valid default.
type Options struct {
	// LegacySafelistingCompatibleOperations additionally injects __typename
	// into each operation's top-level selection set so the wire text matches
	// legacy query-allowlisting infrastructure.
	LegacySafelistingCompatibleOperations bool

	// ReduceGeneratedSchemaTypes prunes interface implementors that carry no
	// @typePolicy marker from the referenced-type closure.
	ReduceGeneratedSchemaTypes bool

	Validation ValidationOptions
}

type ValidationOptions struct {
	DisallowedFieldNames DisallowedFieldNames

	// SchemaNamespace reserves the namespace's own name: a response key
	// matching it (lower-first) is treated as a collision.
	SchemaNamespace string
}

// DisallowedFieldNames lists response keys the generated models cannot
// accommodate, split by whether the field's value is a list.
type DisallowedFieldNames struct {
	Entity     []string
	EntityList []string
}

func (d DisallowedFieldNames) forType(t *language.Type) []string {
	if t != nil && t.Elem != nil {
		return d.EntityList
	}
	return d.Entity
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
