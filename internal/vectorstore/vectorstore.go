package vectorstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgLog "multi-agent-code-assistant/pkg/log"
	pkgQdrant "multi-agent-code-assistant/pkg/qdrant"
	"multi-agent-code-assistant/pkg/voyage"
)

// payload keys used in the qdrant collection
const (
	payloadContent = "content"
)

type implStore struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a new vector store backed by Qdrant with Voyage embeddings.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) *implStore {
	return &implStore{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}

// EnsureCollection creates the collection if it does not exist yet.
// Called once during startup, before any request is served.
func (s *implStore) EnsureCollection(ctx context.Context) error {
	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		s.l.Infof(ctx, "vectorstore: collection %q already exists", s.collectionName)
		return nil
	}

	err = s.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: s.collectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     s.vectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	s.l.Infof(ctx, "vectorstore: created collection %q (size=%d)", s.collectionName, s.vectorSize)
	return nil
}

// Search embeds the query and performs semantic search.
func (s *implStore) Search(ctx context.Context, query string, topK int, filter map[string]interface{}) ([]SearchResult, error) {
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		s.l.Errorf(ctx, "vectorstore: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	searchReq := pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       topK,
		WithPayload: true,
	}
	if len(filter) > 0 {
		var must []map[string]interface{}
		for key, value := range filter {
			must = append(must, map[string]interface{}{
				"key":   key,
				"match": map[string]interface{}{"value": value},
			})
		}
		searchReq.Filter = map[string]interface{}{"must": must}
	}

	resp, err := s.client.SearchPoints(ctx, s.collectionName, searchReq)
	if err != nil {
		s.l.Errorf(ctx, "vectorstore: search failed: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Result))
	for _, scored := range resp.Result {
		content, _ := scored.Payload[payloadContent].(string)

		metadata := make(map[string]interface{}, len(scored.Payload))
		for k, v := range scored.Payload {
			if k == payloadContent {
				continue
			}
			metadata[k] = v
		}

		results = append(results, SearchResult{
			ID:       scored.ID,
			Content:  content,
			Metadata: metadata,
			Score:    scored.Score,
		})
	}

	s.l.Infof(ctx, "vectorstore: found %d results for query %q", len(results), query)
	return results, nil
}

// AddDocuments embeds document contents and upserts them into the collection.
func (s *implStore) AddDocuments(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		s.l.Errorf(ctx, "vectorstore: failed to generate embeddings: %v", err)
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(docs) {
		return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(docs))
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, doc := range docs {
		id := doc.ID
		if id == "" {
			id = uuid.NewString()
		}

		payload := make(map[string]interface{}, len(doc.Metadata)+1)
		for k, v := range doc.Metadata {
			payload[k] = v
		}
		payload[payloadContent] = doc.Content

		points[i] = pkgQdrant.Point{
			ID:      id,
			Vector:  vectors[i],
			Payload: payload,
		}
	}

	req := pkgQdrant.UpsertPointsRequest{Points: points}
	if err := s.client.UpsertPoints(ctx, s.collectionName, req); err != nil {
		s.l.Errorf(ctx, "vectorstore: failed to upsert points: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	s.l.Infof(ctx, "vectorstore: added %d documents", len(docs))
	return nil
}
