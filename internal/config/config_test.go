package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlkit/gqlcodegen/internal/config"
)

const testYAML = `
schema:
  - schemas/*.graphql
operations: documents
output: report.json
options:
  legacySafelistingCompatibleOperations: true
  reduceGeneratedSchemaTypes: true
  validation:
    schemaNamespace: PetClinic
    disallowedFieldNames:
      entity: [id, self]
      entityList: [items]
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(testYAML))
	require.NoError(t, err)

	require.Equal(t, []string{"schemas/*.graphql"}, cfg.Schema)
	require.Equal(t, "documents", cfg.Operations)
	require.Equal(t, "report.json", cfg.Output)
	require.True(t, cfg.Options.LegacySafelistingCompatibleOperations)
	require.True(t, cfg.Options.ReduceGeneratedSchemaTypes)
	require.Equal(t, "PetClinic", cfg.Options.Validation.SchemaNamespace)
	require.Equal(t, []string{"id", "self"}, cfg.Options.Validation.DisallowedFieldNames.Entity)
	require.Equal(t, []string{"items"}, cfg.Options.Validation.DisallowedFieldNames.EntityList)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`schema: ["schema.graphql"]`))
	require.NoError(t, err)
	require.Equal(t, ".", cfg.Operations)
	require.Empty(t, cfg.Output)
	require.False(t, cfg.Options.ReduceGeneratedSchemaTypes)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("schema: [unclosed"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlcodegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "documents", cfg.Operations)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestCompilerOptions(t *testing.T) {
	cfg, err := config.Parse([]byte(testYAML))
	require.NoError(t, err)

	options := cfg.CompilerOptions()
	require.True(t, options.LegacySafelistingCompatibleOperations)
	require.True(t, options.ReduceGeneratedSchemaTypes)
	require.Equal(t, "PetClinic", options.Validation.SchemaNamespace)
	require.Equal(t, []string{"id", "self"}, options.Validation.DisallowedFieldNames.Entity)
	require.Equal(t, []string{"items"}, options.Validation.DisallowedFieldNames.EntityList)
}
