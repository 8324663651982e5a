package vectorstore

// Document is a doc chunk to be embedded and indexed.
type Document struct {
	ID       string // optional; generated when empty
	Content  string
	Metadata map[string]interface{}
}

// SearchResult is one semantic search hit.
type SearchResult struct {
	ID       string
	Content  string
	Metadata map[string]interface{}
	Score    float64
}
