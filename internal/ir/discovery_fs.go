package ir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	language "github.com/gqlkit/gqlcodegen/internal/language"
)

// FileSystemDiscovery implements Discovery over a tree of .graphql
// operation documents.
type FileSystemDiscovery struct {
	rootDir string
	paths   []string
}

// NewFileSystemDiscovery walks rootDir and records every .graphql file.
// Paths are sorted so compilation output is deterministic regardless of
// directory iteration order.
func NewFileSystemDiscovery(rootDir string) (*FileSystemDiscovery, error) {
	d := &FileSystemDiscovery{rootDir: rootDir}
	err := filepath.WalkDir(rootDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".graphql" {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", path, err)
		}
		d.paths = append(d.paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root directory %q: %w", rootDir, err)
	}
	sort.Strings(d.paths)
	return d, nil
}

func (d *FileSystemDiscovery) ListDocuments(ctx context.Context) ([]*DocumentMetadata, error) {
	docs := make([]*DocumentMetadata, 0, len(d.paths))
	for _, rel := range d.paths {
		docs = append(docs, &DocumentMetadata{
			Name:     strings.TrimSuffix(filepath.Base(rel), ".graphql"),
			FilePath: rel,
		})
	}
	return docs, nil
}

func (d *FileSystemDiscovery) ReadDocument(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(filepath.Join(d.rootDir, path))
	if err != nil {
		return "", fmt.Errorf("failed to read document %q: %w", path, err)
	}
	return string(content), nil
}

// Load is a convenience function that discovers, parses and compiles every
// document under rootDir against the given schema.
func Load(ctx context.Context, sch *language.Schema, rootDir string, options Options) (*CompilationResult, error) {
	discovery, err := NewFileSystemDiscovery(rootDir)
	if err != nil {
		return nil, err
	}
	return Build(ctx, sch, discovery, options)
}

// Build reads every discovered document, merges them into one document set
// and compiles it. Per-definition file paths come from the parser's source
// positions.
func Build(ctx context.Context, sch *language.Schema, discovery Discovery, options Options) (*CompilationResult, error) {
	docs, err := discovery.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	merged := &language.QueryDocument{}
	for _, md := range docs {
		content, err := discovery.ReadDocument(ctx, md.FilePath)
		if err != nil {
			return nil, err
		}
		doc, err := language.ParseQuery(md.FilePath, content)
		if err != nil {
			return nil, err
		}
		merged.Operations = append(merged.Operations, doc.Operations...)
		merged.Fragments = append(merged.Fragments, doc.Fragments...)
	}
	return Compile(ctx, sch, merged, options)
}
