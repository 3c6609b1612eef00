package retrieval

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/yaronha/demo-llm-agent/pkg/config"
)

// DocWriter writes document chunks into a named collection.
type DocWriter interface {
	AddDocuments(ctx context.Context, collection string, docs []schema.Document) error
}

// Ingester loads a document from a path or URL, splits it into chunks, stamps
// source metadata on each chunk, and writes the chunks to the vector store.
type Ingester struct {
	writer DocWriter
	cfg    config.RetrievalConfig
}

// NewIngester creates an ingester writing through writer.
func NewIngester(writer DocWriter, cfg config.RetrievalConfig) *Ingester {
	return &Ingester{writer: writer, cfg: cfg}
}

// IngestOptions controls a single ingestion run.
type IngestOptions struct {
	// Loader selects the document loader: "text", "web", or "pdf".
	// Empty means guess from the path.
	Loader string
	// Metadata is stamped on every chunk.
	Metadata map[string]string
	// Version is stamped on every chunk when set.
	Version string
}

// Ingest loads the document at path, splits it, and writes the chunks into
// collection. It returns the number of chunks written.
func (i *Ingester) Ingest(ctx context.Context, collection, path string, opts IngestOptions) (int, error) {
	docs, err := i.load(ctx, path, opts.Loader)
	if err != nil {
		return 0, err
	}

	title := opts.Metadata["title"]
	if title == "" {
		title = filepath.Base(path)
	}
	for idx := range docs {
		if docs[idx].Metadata == nil {
			docs[idx].Metadata = make(map[string]any)
		}
		for k, v := range opts.Metadata {
			docs[idx].Metadata[k] = v
		}
		docs[idx].Metadata["title"] = title
		docs[idx].Metadata["source"] = path
		docs[idx].Metadata["chunk"] = idx
		if opts.Version != "" {
			docs[idx].Metadata["version"] = opts.Version
		}
	}

	if err := i.writer.AddDocuments(ctx, collection, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (i *Ingester) load(ctx context.Context, path, loader string) ([]schema.Document, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(i.cfg.ChunkSize),
		textsplitter.WithChunkOverlap(i.cfg.ChunkOverlap),
	)

	if loader == "" {
		loader = guessLoader(path)
	}

	switch loader {
	case "web":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid document url: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch %s: status %s", path, resp.Status)
		}
		return documentloaders.NewHTML(resp.Body).LoadAndSplit(ctx, splitter)

	case "pdf":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat document: %w", err)
		}
		return documentloaders.NewPDF(f, info.Size()).LoadAndSplit(ctx, splitter)

	case "text":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()
		return documentloaders.NewText(f).LoadAndSplit(ctx, splitter)

	default:
		return nil, fmt.Errorf("unknown loader %q", loader)
	}
}

func guessLoader(path string) string {
	switch {
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return "web"
	case strings.EqualFold(filepath.Ext(path), ".pdf"):
		return "pdf"
	default:
		return "text"
	}
}
