package pipeline

import (
	"github.com/yaronha/demo-llm-agent/ent"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

// DefaultRegistry wires the standard four-stage chain over the shared
// database client and returns a registry holding it under "default".
func DefaultRegistry(client *ent.Client, llm Generator, retriever retrieval.Retriever, guest, defaultCollection string) *Registry {
	store := NewDBSessionStore(
		services.NewUserService(client),
		services.NewSessionService(client),
		guest,
	)

	registry := NewRegistry()
	registry.Register("default", func() (*Pipeline, error) {
		return New("default",
			NewSessionLoader(store),
			NewRefineQuery(llm),
			NewMultiRetriever(retriever, llm, defaultCollection),
			NewHistorySaver(store),
		)
	})
	return registry
}
