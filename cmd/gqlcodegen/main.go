package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/gqlkit/gqlcodegen/internal/config"
	"github.com/gqlkit/gqlcodegen/internal/ir"
	language "github.com/gqlkit/gqlcodegen/internal/language"
	"github.com/gqlkit/gqlcodegen/internal/otel"
	"github.com/gqlkit/gqlcodegen/internal/schema"
)

const rootUsage = `gqlcodegen — GraphQL operation compiler for code generation

USAGE:
  gqlcodegen <command> [flags]

COMMANDS:
  compile          Compile a schema plus operation documents into the IR report
  help             Show help for any command
`

const compileUsage = `compile FLAGS:
  -config <file>             YAML configuration file
  -schema <glob>             Schema SDL file glob. Repeatable; overrides config
  -operations <dir>          Root directory of .graphql operation documents (default: .)
  -out <file>                Write the compiled report to file (default: stdout)
  -safelisting               Legacy-safelisting compatible operation text
  -reduce-schema-types       Prune interface implementors without @typePolicy
  -otel.endpoint <addr>      OTLP collector endpoint
  -otel.service <name>       OpenTelemetry service name (default: gqlcodegen)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "compile":
		return cmdCompile(args[1:])
	case "help":
		return cmdHelp(args[1:])
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "compile":
		fmt.Print(compileUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdCompile(args []string) error {
	configPath := ""
	operationsDir := ""
	outFile := ""
	safelisting := false
	reduceSchemaTypes := false
	otelEndpoint := ""
	otelService := "gqlcodegen"
	var schemaGlobs stringListFlag

	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer)) // silence automatic output
	fs.StringVar(&configPath, "config", configPath, "YAML configuration file")
	fs.Var(&schemaGlobs, "schema", "Schema SDL file glob")
	fs.StringVar(&operationsDir, "operations", operationsDir, "Operation document root")
	fs.StringVar(&outFile, "out", outFile, "Write the compiled report to file")
	fs.BoolVar(&safelisting, "safelisting", safelisting, "Legacy-safelisting compatible operation text")
	fs.BoolVar(&reduceSchemaTypes, "reduce-schema-types", reduceSchemaTypes, "Prune interface implementors without @typePolicy")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, compileUsage)
		return err
	}

	cfg := &config.Config{Operations: "."}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if len(schemaGlobs) > 0 {
		cfg.Schema = schemaGlobs
	}
	if operationsDir != "" {
		cfg.Operations = operationsDir
	}
	if outFile != "" {
		cfg.Output = outFile
	}
	if safelisting {
		cfg.Options.LegacySafelistingCompatibleOperations = true
	}
	if reduceSchemaTypes {
		cfg.Options.ReduceGeneratedSchemaTypes = true
	}
	if len(cfg.Schema) == 0 {
		fmt.Fprint(os.Stderr, compileUsage)
		return fmt.Errorf("-schema or a config file with schema globs is required")
	}

	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	sources, err := loadSchemaSources(cfg.Schema)
	if err != nil {
		return err
	}
	sch, err := schema.Load(sources...)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	result, err := ir.Load(context.Background(), sch, cfg.Operations, cfg.CompilerOptions())
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	report := buildReport(result)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if cfg.Output == "" {
		fmt.Print(string(data))
		return nil
	}
	return os.WriteFile(cfg.Output, data, 0644)
}

func loadSchemaSources(globs []string) ([]*language.Source, error) {
	var paths []string
	for _, glob := range globs {
		matches, err := filepath.Glob(glob)
		if err != nil {
			return nil, fmt.Errorf("invalid schema glob %q: %w", glob, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema files matched %v", globs)
	}
	sort.Strings(paths)

	var sources []*language.Source
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %q: %w", path, err)
		}
		sources = append(sources, &language.Source{Name: path, Input: string(content)})
	}
	return sources, nil
}
