package vectorstore

import "context"

//go:generate mockery --name Store
type Store interface {
	// Search returns documents most similar to the query, ordered by
	// descending score.
	Search(ctx context.Context, query string, topK int, filter map[string]interface{}) ([]SearchResult, error)

	// AddDocuments embeds and upserts documents into the index.
	AddDocuments(ctx context.Context, docs []Document) error
}
