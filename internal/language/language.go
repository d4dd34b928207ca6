package language

import (
	"bytes"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseQuery parses a single executable document. The name is recorded as
// the source name so node positions carry the originating file path.
func ParseQuery(name, source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func ParseSchema(name, source string) (*SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FormatOperation serializes one operation definition to canonical text.
func FormatOperation(op *OperationDefinition) string {
	return formatQueryDocument(&QueryDocument{Operations: OperationList{op}})
}

// FormatFragment serializes one fragment definition to canonical text.
func FormatFragment(frag *FragmentDefinition) string {
	return formatQueryDocument(&QueryDocument{Fragments: FragmentDefinitionList{frag}})
}

func formatQueryDocument(doc *QueryDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return strings.TrimSpace(buf.String())
}
