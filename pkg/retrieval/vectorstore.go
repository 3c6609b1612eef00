package retrieval

import (
	"context"
	"fmt"
	"sync"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
	"github.com/tmc/langchaingo/vectorstores/chroma"

	"github.com/yaronha/demo-llm-agent/pkg/config"
)

// Passage is a retrieved document chunk plus its stored metadata.
type Passage struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Score    float32        `json:"score,omitempty"`
}

// Title returns the title metadata field, if present.
func (p Passage) Title() string { return metaString(p.Metadata, "title") }

// Source returns the source metadata field (path or URL), if present.
func (p Passage) Source() string { return metaString(p.Metadata, "source") }

func metaString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// Retriever performs similarity search over a named collection.
type Retriever interface {
	SimilaritySearch(ctx context.Context, collection, query string, filter map[string]string) ([]Passage, error)
}

// ChromaStore is a Retriever and document writer backed by a Chroma server.
// Each named collection maps to a Chroma namespace; store handles are cached
// per collection.
type ChromaStore struct {
	cfg      config.RetrievalConfig
	embedder embeddings.Embedder

	mu     sync.Mutex
	stores map[string]chroma.Store
}

// NewChromaStore creates a store for the configured Chroma server.
func NewChromaStore(cfg config.RetrievalConfig, embedder embeddings.Embedder) *ChromaStore {
	return &ChromaStore{
		cfg:      cfg,
		embedder: embedder,
		stores:   make(map[string]chroma.Store),
	}
}

func (s *ChromaStore) collection(name string) (chroma.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if store, ok := s.stores[name]; ok {
		return store, nil
	}

	store, err := chroma.New(
		chroma.WithChromaURL(s.cfg.ChromaURL),
		chroma.WithEmbedder(s.embedder),
		chroma.WithNameSpace(name),
	)
	if err != nil {
		return chroma.Store{}, fmt.Errorf("failed to open chroma collection %q: %w", name, err)
	}
	s.stores[name] = store
	return store, nil
}

// SimilaritySearch returns the top matching passages for query from the named
// collection, optionally restricted by a metadata filter.
func (s *ChromaStore) SimilaritySearch(ctx context.Context, collection, query string, filter map[string]string) ([]Passage, error) {
	store, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	opts := []vectorstores.Option{}
	if len(filter) > 0 {
		where := make(map[string]any, len(filter))
		for k, v := range filter {
			where[k] = v
		}
		opts = append(opts, vectorstores.WithFilters(where))
	}
	if s.cfg.ScoreThreshold > 0 {
		opts = append(opts, vectorstores.WithScoreThreshold(float32(s.cfg.ScoreThreshold)))
	}

	docs, err := store.SimilaritySearch(ctx, query, s.cfg.TopK, opts...)
	if err != nil {
		return nil, fmt.Errorf("similarity search in %q failed: %w", collection, err)
	}

	passages := make([]Passage, 0, len(docs))
	for _, doc := range docs {
		passages = append(passages, Passage{
			Content:  doc.PageContent,
			Metadata: doc.Metadata,
			Score:    doc.Score,
		})
	}
	return passages, nil
}

// AddDocuments writes documents into the named collection.
func (s *ChromaStore) AddDocuments(ctx context.Context, collection string, docs []schema.Document) error {
	store, err := s.collection(collection)
	if err != nil {
		return err
	}
	if _, err := store.AddDocuments(ctx, docs); err != nil {
		return fmt.Errorf("failed to add documents to %q: %w", collection, err)
	}
	return nil
}
