package ir

import (
	"fmt"

	language "github.com/gqlkit/gqlcodegen/internal/language"
)

// Common reusable error constructors (template helpers)
// NOTE: Keep messages stable to avoid breaking tests that match on them.

func errMissingQueryRootType() *CompileError {
	return &CompileError{Message: "Schema does not define a query root type"}
}

func errMissingRootType(kind string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Schema does not define a %s root type", kind),
		pos,
	)
}

func errUnnamedOperation(pos *language.Position) *CompileError {
	return errorWithPosition(
		"Operations must be named for code generation",
		pos,
	)
}

func errUnresolvedVariableType(varName, typeName string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Type %q of variable $%s not found in schema", typeName, varName),
		pos,
	)
}

func errUnknownField(fieldName, typeName string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Unknown field %q on type %q", fieldName, typeName),
		pos,
	)
}

func errMissingSelectionSet(fieldName, typeName string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Field %q of composite type %q requires a selection set", fieldName, typeName),
		pos,
	)
}

func errUnknownFragment(name string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Unknown fragment %q", name),
		pos,
	)
}

func errCyclicFragmentReference(name string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Fragment %q references itself, directly or transitively", name),
		pos,
	)
}

func errUnknownDirective(name string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Unknown directive @%s", name),
		pos,
	)
}

func errUnknownFieldArgument(arg, field, typeName string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Unknown argument %q on field %q of type %q", arg, field, typeName),
		pos,
	)
}

func errUnknownDirectiveArgument(arg, directive string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Unknown argument %q in @%s directive", arg, directive),
		pos,
	)
}

func errInvalidInclusionCondition(directive string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("@%s requires a boolean literal or a variable for its 'if' argument", directive),
		pos,
	)
}

func errReservedFieldName(key string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Field name %q is reserved and cannot be used as a response key; alias the field, e.g. %q", key, key+"_: "+key),
		pos,
	)
}

func errInvalidTypeCondition(typeName string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Type condition %q must be an object, interface or union type", typeName),
		pos,
	)
}

func errUnknownTypeCondition(typeName string, pos *language.Position) *CompileError {
	return errorWithPosition(
		fmt.Sprintf("Type condition %q not found in schema", typeName),
		pos,
	)
}

func errDeferWithoutTypeCondition(pos *language.Position) *CompileError {
	return errorWithPosition(
		"Deferred inline fragments must carry an explicit type condition",
		pos,
	)
}
