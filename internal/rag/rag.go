package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"multi-agent-code-assistant/internal/vectorstore"
	pkgLog "multi-agent-code-assistant/pkg/log"
)

// Builder bridges a free-text query to a formatted context string and a
// source list, shielding callers from the vector store's native result shape.
type Builder struct {
	store vectorstore.Store
	l     pkgLog.Logger
}

// New creates a new retrieval-augmented context builder.
func New(store vectorstore.Store, l pkgLog.Logger) *Builder {
	return &Builder{
		store: store,
		l:     l,
	}
}

// Query searches the vector store for chunks relevant to text.
// Retrieval is best-effort: a store failure yields an empty result set with
// the elapsed time so far, never an error. A degraded retrieval must not
// abort a task turn.
func (b *Builder) Query(ctx context.Context, text string, topK int, filter map[string]interface{}) QueryOutput {
	start := time.Now()

	results, err := b.store.Search(ctx, text, topK, filter)
	if err != nil {
		b.l.Errorf(ctx, "rag: query failed: %v", err)
		return QueryOutput{Results: []Chunk{}, QueryTime: time.Since(start)}
	}

	chunks := make([]Chunk, len(results))
	for i, result := range results {
		chunks[i] = Chunk{
			Content:  result.Content,
			Metadata: result.Metadata,
			Score:    result.Score,
		}
	}

	queryTime := time.Since(start)
	b.l.Infof(ctx, "rag: query completed in %.3fs, found %d results", queryTime.Seconds(), len(chunks))

	return QueryOutput{Results: chunks, QueryTime: queryTime}
}

// AddDocumentation indexes documentation chunks for later retrieval.
// Unlike Query, ingestion failures are returned to the caller.
func (b *Builder) AddDocumentation(ctx context.Context, docs []vectorstore.Document) error {
	if err := b.store.AddDocuments(ctx, docs); err != nil {
		b.l.Errorf(ctx, "rag: failed to add documentation: %v", err)
		return fmt.Errorf("failed to add documentation: %w", err)
	}
	b.l.Infof(ctx, "rag: added %d documents", len(docs))
	return nil
}

// FormatContext renders chunks into a deterministic context block.
// Empty input yields an empty string.
func FormatContext(chunks []Chunk) string {
	if len(chunks) == 0 {
		return ""
	}

	parts := []string{"## Retrieved Context:\n"}
	for i, chunk := range chunks {
		source := "Unknown"
		if s, ok := chunk.Metadata["source"].(string); ok && s != "" {
			source = s
		}
		parts = append(parts, fmt.Sprintf("### Source %d: %s", i+1, source))
		parts = append(parts, fmt.Sprintf("Relevance: %.2f\n", chunk.Score))
		parts = append(parts, chunk.Content)
		parts = append(parts, "\n---\n")
	}

	return strings.Join(parts, "\n")
}
