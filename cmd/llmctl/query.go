package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yaronha/demo-llm-agent/pkg/pipeline"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
)

var (
	queryFilter     []string
	queryCollection string
	queryUser       string
	querySession    string
)

var queryCmd = &cobra.Command{
	Use:   "query QUESTION",
	Short: "Run a chat query against a document collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		filter, err := parseKeyValues(queryFilter)
		if err != nil {
			return err
		}

		llmClient, store, err := buildRetrieval(cfg)
		if err != nil {
			return err
		}
		db, err := connectDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		registry := pipeline.DefaultRegistry(db.Client, llmClient, store,
			cfg.GuestUsername, cfg.DefaultCollection)
		p, err := registry.Get(cfg.DefaultPipeline)
		if err != nil {
			return err
		}

		event := pipeline.NewEvent(queryUser, querySession, args[0])
		event.Collection = queryCollection
		event.Filter = filter

		results, err := p.Run(cmd.Context(), event)
		if err != nil {
			return err
		}

		fmt.Println(color.CyanString(event.Answer()))
		if sources, ok := results["sources"].([]retrieval.Passage); ok && len(sources) > 0 {
			fmt.Println(retrieval.SourcesToText(sources))
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringArrayVarP(&queryFilter, "filter", "f", nil, "search filter key=value pair (repeatable)")
	queryCmd.Flags().StringVarP(&queryCollection, "collection", "c", "", "vector DB collection name")
	queryCmd.Flags().StringVarP(&queryUser, "user", "u", "", "username")
	queryCmd.Flags().StringVarP(&querySession, "session", "s", "", "session ID")
}
