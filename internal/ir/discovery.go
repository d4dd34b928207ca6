package ir

import (
	"context"
)

// DocumentMetadata identifies one executable document in a project.
type DocumentMetadata struct {
	Name     string
	FilePath string
}

// Discovery enumerates the operation documents to compile. Implementations
// must return documents in a deterministic order; compilation output
// follows it.
type Discovery interface {
	ListDocuments(ctx context.Context) ([]*DocumentMetadata, error)
	ReadDocument(ctx context.Context, path string) (string, error)
}
