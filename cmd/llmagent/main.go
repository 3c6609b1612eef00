// LLM agent server — serves the REST API and runs query pipelines over the
// document collections and chat sessions database.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yaronha/demo-llm-agent/pkg/api"
	"github.com/yaronha/demo-llm-agent/pkg/config"
	"github.com/yaronha/demo-llm-agent/pkg/database"
	"github.com/yaronha/demo-llm-agent/pkg/llm"
	"github.com/yaronha/demo-llm-agent/pkg/pipeline"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
	"github.com/yaronha/demo-llm-agent/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting LLM agent", "version", version.Full(), "http_port", cfg.HTTPPort)

	ctx := context.Background()

	// 1. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to database")

	// 2. LLM client and vector store
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	embedder, err := llmClient.Embedder()
	if err != nil {
		slog.Error("Failed to initialize embedder", "error", err)
		os.Exit(1)
	}
	vectorStore := retrieval.NewChromaStore(cfg.Retrieval, embedder)
	ingester := retrieval.NewIngester(vectorStore, cfg.Retrieval)
	slog.Info("LLM and vector store clients initialized",
		"provider", cfg.LLM.Provider, "model", cfg.LLM.Model, "chroma_url", cfg.Retrieval.ChromaURL)

	// 3. Pipelines
	registry := pipeline.DefaultRegistry(dbClient.Client, llmClient, vectorStore,
		cfg.GuestUsername, cfg.DefaultCollection)

	// 4. HTTP server
	var transcriber api.Transcriber
	if t := llm.NewWhisperTranscriber(cfg.LLM); t != nil {
		transcriber = t
	}
	server := api.NewServer(cfg, dbClient, registry, ingester, transcriber)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 5. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
