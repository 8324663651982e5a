package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"multi-agent-code-assistant/config"
	"multi-agent-code-assistant/internal/rag"
	"multi-agent-code-assistant/internal/vectorstore"
	"multi-agent-code-assistant/pkg/log"
	pkgQdrant "multi-agent-code-assistant/pkg/qdrant"
	"multi-agent-code-assistant/pkg/voyage"
)

// chunkSize bounds each indexed chunk, in runes.
const chunkSize = 1500

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/init-vectordb/main.go <path/to/docs-dir>")
		fmt.Println("Example: go run scripts/init-vectordb/main.go ./docs-corpus")
		os.Exit(1)
	}
	docsDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}

	store := vectorstore.New(qdrantClient, embeddingClient, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
	if err := store.EnsureCollection(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to initialize collection: %v", err)
	}
	builder := rag.New(store, logger)

	logger.Infof(ctx, "Indexing documentation from %s...", docsDir)

	var docs []vectorstore.Document
	err = filepath.WalkDir(docsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" && ext != ".txt" {
			return nil
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warnf(ctx, "Skipping %s: %v", path, readErr)
			return nil
		}
		rel, _ := filepath.Rel(docsDir, path)
		for i, chunk := range splitChunks(string(content), chunkSize) {
			docs = append(docs, vectorstore.Document{
				Content: chunk,
				Metadata: map[string]interface{}{
					"source": rel,
					"chunk":  i,
				},
			})
		}
		return nil
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to walk %s: %v", docsDir, err)
	}

	if len(docs) == 0 {
		logger.Warn(ctx, "No documentation files found, nothing to index")
		return
	}

	if err := builder.AddDocumentation(ctx, docs); err != nil {
		logger.Fatalf(ctx, "Failed to index documentation: %v", err)
	}

	logger.Infof(ctx, "Indexing complete! %d chunks stored in collection %q.", len(docs), cfg.Qdrant.CollectionName)
}

// splitChunks cuts text into chunks of at most size runes, on paragraph
// boundaries where possible.
func splitChunks(text string, size int) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder
	for _, p := range paragraphs {
		if current.Len() > 0 && len([]rune(current.String()+p)) > size {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(p)
		current.WriteString("\n\n")
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		chunks = append(chunks, s)
	}

	// A single oversized paragraph still gets hard-split.
	var out []string
	for _, chunk := range chunks {
		runes := []rune(chunk)
		for len(runes) > size {
			out = append(out, string(runes[:size]))
			runes = runes[size:]
		}
		out = append(out, string(runes))
	}
	return out
}
