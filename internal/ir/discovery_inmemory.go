package ir

import (
	"context"
	"fmt"
)

type InMemoryDocument struct {
	Name    string
	Content string
}

// InMemoryDiscovery is a test implementation of Discovery that stores
// documents in memory, preserving registration order.
type InMemoryDiscovery struct {
	order    []*DocumentMetadata
	contents map[string]string
}

func NewInMemoryDiscovery(docs []InMemoryDocument) *InMemoryDiscovery {
	discovery := &InMemoryDiscovery{contents: make(map[string]string)}
	for _, doc := range docs {
		path := doc.Name + ".graphql"
		discovery.order = append(discovery.order, &DocumentMetadata{
			Name:     doc.Name,
			FilePath: path,
		})
		discovery.contents[path] = doc.Content
	}
	return discovery
}

func (d *InMemoryDiscovery) ListDocuments(ctx context.Context) ([]*DocumentMetadata, error) {
	return d.order, nil
}

func (d *InMemoryDiscovery) ReadDocument(ctx context.Context, path string) (string, error) {
	content, ok := d.contents[path]
	if !ok {
		return "", fmt.Errorf("document %q not found", path)
	}
	return content, nil
}
