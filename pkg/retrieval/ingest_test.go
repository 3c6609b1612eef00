package retrieval

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/schema"

	"github.com/yaronha/demo-llm-agent/pkg/config"
)

type captureWriter struct {
	collection string
	docs       []schema.Document
}

func (w *captureWriter) AddDocuments(ctx context.Context, collection string, docs []schema.Document) error {
	w.collection = collection
	w.docs = append(w.docs, docs...)
	return nil
}

func TestIngestTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("vectors are ordered lists of numbers"), 0o644))

	writer := &captureWriter{}
	ingester := NewIngester(writer, config.RetrievalConfig{ChunkSize: 500, ChunkOverlap: 0})

	chunks, err := ingester.Ingest(context.Background(), "default", path, IngestOptions{
		Metadata: map[string]string{"team": "ml"},
		Version:  "v1",
	})
	require.NoError(t, err)
	require.Equal(t, 1, chunks)
	assert.Equal(t, "default", writer.collection)

	doc := writer.docs[0]
	assert.Equal(t, "vectors are ordered lists of numbers", doc.PageContent)
	assert.Equal(t, "notes.txt", doc.Metadata["title"])
	assert.Equal(t, path, doc.Metadata["source"])
	assert.Equal(t, 0, doc.Metadata["chunk"])
	assert.Equal(t, "v1", doc.Metadata["version"])
	assert.Equal(t, "ml", doc.Metadata["team"])
}

func TestIngestTitleOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	writer := &captureWriter{}
	ingester := NewIngester(writer, config.RetrievalConfig{ChunkSize: 500})

	_, err := ingester.Ingest(context.Background(), "default", path, IngestOptions{
		Metadata: map[string]string{"title": "My Document"},
	})
	require.NoError(t, err)
	assert.Equal(t, "My Document", writer.docs[0].Metadata["title"])
}

func TestIngestUnknownLoader(t *testing.T) {
	ingester := NewIngester(&captureWriter{}, config.RetrievalConfig{ChunkSize: 500})
	_, err := ingester.Ingest(context.Background(), "default", "x.txt", IngestOptions{Loader: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown loader")
}

func TestGuessLoader(t *testing.T) {
	assert.Equal(t, "web", guessLoader("https://example.com/page"))
	assert.Equal(t, "web", guessLoader("http://example.com"))
	assert.Equal(t, "pdf", guessLoader("paper.PDF"))
	assert.Equal(t, "text", guessLoader("notes.md"))
}
