package ir

import (
	"fmt"

	language "github.com/gqlkit/gqlcodegen/internal/language"
)

// CompileError aborts compilation immediately; there is no partial result
// and no multi-error accumulation in this package.
type CompileError struct {
	Message string
	File    string
	Line    int
	Column  int
}

func (e *CompileError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s (%s:%d:%d)", e.Message, e.File, e.Line, e.Column)
	}
	return e.Message
}

// Core primitive used by all template helpers.
func errorWithPosition(message string, pos *language.Position) *CompileError {
	e := &CompileError{Message: message}
	if pos != nil {
		e.Line = pos.Line
		e.Column = pos.Column
		if pos.Src != nil {
			e.File = pos.Src.Name
		}
	}
	return e
}
