package rag

import "time"

// Chunk is a retrieved document chunk, read-only after creation.
type Chunk struct {
	Content  string
	Metadata map[string]interface{}
	Score    float64
}

// QueryOutput holds retrieval results and timing for one query.
type QueryOutput struct {
	Results   []Chunk
	QueryTime time.Duration
}
