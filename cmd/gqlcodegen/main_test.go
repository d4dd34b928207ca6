package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

const testSchemaSDL = `
type Query { user: User }
type User { id: ID! name: String! }
`

func writeCompileInputs(t *testing.T) (schemaPath, opsDir string) {
	t.Helper()
	dir := t.TempDir()
	schemaPath = filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchemaSDL), 0644))
	opsDir = filepath.Join(dir, "documents")
	require.NoError(t, os.MkdirAll(opsDir, 0755))
	query := `query GetUser { user { id name } }`
	require.NoError(t, os.WriteFile(filepath.Join(opsDir, "query.graphql"), []byte(query), 0644))
	return schemaPath, opsDir
}

func TestCompileCommand(t *testing.T) {
	schemaPath, opsDir := writeCompileInputs(t)
	outPath := filepath.Join(t.TempDir(), "report.json")

	err := run([]string{"compile", "-schema", schemaPath, "-operations", opsDir, "-out", outPath})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Operations, 1)
	require.Contains(t, report.Operations[0].Source, "__typename")

	// Blank the formatted operation text so the golden file does not depend
	// on the formatter's whitespace; the wire text itself is covered by the
	// compiler's own tests.
	for i := range report.Operations {
		report.Operations[i].Source = ""
	}
	for i := range report.Fragments {
		report.Fragments[i].Source = ""
	}
	normalized, err := json.MarshalIndent(&report, "", "  ")
	require.NoError(t, err)
	normalized = append(normalized, '\n')

	g := goldie.New(t)
	g.Assert(t, "report", normalized)
}

func TestCompileCommandWithConfig(t *testing.T) {
	schemaPath, opsDir := writeCompileInputs(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.json")

	configYAML := "schema:\n  - " + schemaPath + "\noperations: " + opsDir + "\noutput: " + outPath + "\n"
	configPath := filepath.Join(dir, "gqlcodegen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0644))

	require.NoError(t, run([]string{"compile", "-config", configPath}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	require.Equal(t, "Query", report.Schema.QueryType)
	require.Equal(t, []string{"Query", "User", "ID", "String"}, report.ReferencedTypes)
}

func TestCompileRequiresSchema(t *testing.T) {
	err := run([]string{"compile"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "-schema")
}

func TestCompileReportsCompileErrors(t *testing.T) {
	schemaPath, _ := writeCompileInputs(t)
	opsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(opsDir, "bad.graphql"), []byte(`query Bad { nope }`), 0644))

	err := run([]string{"compile", "-schema", schemaPath, "-operations", opsDir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope")
}

func TestRunUnknownCommand(t *testing.T) {
	require.Error(t, run([]string{"frobnicate"}))
	require.Error(t, run(nil))
}
