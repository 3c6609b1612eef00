// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the root application configuration, populated from environment
// variables (a .env file is loaded by the entrypoints before parsing).
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8000"`
	Verbose  bool   `envconfig:"VERBOSE" default:"false"`

	// DefaultCollection is the document collection queried when a request
	// does not name one.
	DefaultCollection string `envconfig:"DEFAULT_COLLECTION" default:"default"`

	// DefaultPipeline is the pipeline name used by the query endpoints.
	DefaultPipeline string `envconfig:"DEFAULT_PIPELINE" default:"default"`

	// GuestUsername is the sentinel identity for unauthenticated requests.
	GuestUsername string `envconfig:"GUEST_USERNAME" default:"guest"`

	LLM       LLMConfig
	Retrieval RetrievalConfig
}

// LLMConfig selects and tunes the language model backend.
type LLMConfig struct {
	// Provider is "openai" (or any OpenAI-compatible endpoint via BaseURL)
	// or "ollama" for a local model.
	Provider    string  `envconfig:"LLM_PROVIDER" default:"openai"`
	Model       string  `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`
	Temperature float64 `envconfig:"LLM_TEMPERATURE" default:"0"`
	BaseURL     string  `envconfig:"LLM_BASE_URL"`
	APIKey      string  `envconfig:"OPENAI_API_KEY"`
	OllamaURL   string  `envconfig:"OLLAMA_URL" default:"http://localhost:11434"`
}

// RetrievalConfig tunes the vector store and document ingestion.
type RetrievalConfig struct {
	ChromaURL      string  `envconfig:"CHROMA_URL" default:"http://localhost:8666"`
	TopK           int     `envconfig:"RETRIEVAL_TOP_K" default:"4"`
	ScoreThreshold float64 `envconfig:"RETRIEVAL_SCORE_THRESHOLD" default:"0"`
	ChunkSize      int     `envconfig:"CHUNK_SIZE" default:"1000"`
	ChunkOverlap   int     `envconfig:"CHUNK_OVERLAP" default:"200"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}
