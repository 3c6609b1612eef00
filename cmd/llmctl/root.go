package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yaronha/demo-llm-agent/pkg/config"
	"github.com/yaronha/demo-llm-agent/pkg/database"
	"github.com/yaronha/demo-llm-agent/pkg/llm"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
)

var rootCmd = &cobra.Command{
	Use:           "llmctl",
	Short:         "Manage the LLM agent: database, collections, ingestion, and queries",
	SilenceUsage:  true,
	SilenceErrors: false,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored objects (users, collections, sessions)",
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Create or update stored objects",
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initdbCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)

	listCmd.AddCommand(listUsersCmd)
	listCmd.AddCommand(listCollectionsCmd)
	listCmd.AddCommand(listSessionsCmd)

	updateCmd.AddCommand(updateCollectionCmd)
}

// loadConfig loads .env (when present) and the environment configuration.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
	return config.Load()
}

// connectDB opens the database client and runs pending migrations.
func connectDB(ctx context.Context) (*database.Client, error) {
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return database.NewClient(ctx, dbConfig)
}

// buildRetrieval wires the LLM client, embedder, and vector store.
func buildRetrieval(cfg *config.Config) (*llm.Client, *retrieval.ChromaStore, error) {
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return nil, nil, err
	}
	embedder, err := llmClient.Embedder()
	if err != nil {
		return nil, nil, err
	}
	return llmClient, retrieval.NewChromaStore(cfg.Retrieval, embedder), nil
}

// parseKeyValues turns repeated "key=value" flags into a map.
func parseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}
