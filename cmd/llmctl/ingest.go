package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

var (
	ingestLoader     string
	ingestMetadata   []string
	ingestVersion    string
	ingestCollection string
	ingestFromFile   bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest PATH",
	Short: "Ingest documents into the vector database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		metadata, err := parseKeyValues(ingestMetadata)
		if err != nil {
			return err
		}

		collection := ingestCollection
		if collection == "" {
			collection = cfg.DefaultCollection
		}

		_, store, err := buildRetrieval(cfg)
		if err != nil {
			return err
		}
		ingester := retrieval.NewIngester(store, cfg.Retrieval)

		db, err := connectDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()
		collections := services.NewCollectionService(db.Client)

		paths := []string{args[0]}
		if ingestFromFile {
			paths, err = readPathsFile(args[0])
			if err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		opts := retrieval.IngestOptions{
			Loader:   ingestLoader,
			Metadata: metadata,
			Version:  ingestVersion,
		}
		for _, path := range paths {
			chunks, err := ingester.Ingest(ctx, collection, path, opts)
			if err != nil {
				return fmt.Errorf("failed to ingest %s: %w", path, err)
			}
			fmt.Printf("Ingested %s into %s (%d chunks)\n", path, collection, chunks)

			meta := map[string]any{"last_source": path}
			if ingestVersion != "" {
				meta["version"] = ingestVersion
			}
			if _, err := collections.CreateOrUpdate(ctx, models.CollectionSpec{
				Name:       collection,
				OwnerName:  cfg.GuestUsername,
				DBCategory: "vector",
				Meta:       meta,
			}); err != nil {
				return err
			}
		}

		fmt.Println(color.GreenString("Ingestion complete"))
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestLoader, "loader", "l", "", "document loader (text, web, pdf)")
	ingestCmd.Flags().StringArrayVarP(&ingestMetadata, "metadata", "m", nil, "metadata key=value pair (repeatable)")
	ingestCmd.Flags().StringVarP(&ingestVersion, "version", "v", "", "document version")
	ingestCmd.Flags().StringVarP(&ingestCollection, "collection", "c", "", "vector DB collection name")
	ingestCmd.Flags().BoolVarP(&ingestFromFile, "from-file", "f", false, "read document paths from the file, one per line")
}

// readPathsFile reads document paths from a list file. Blank lines and
// #-comments are skipped.
func readPathsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}
