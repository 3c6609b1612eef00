package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
)

// Stage is one unit of pipeline work. Stages communicate solely through the
// shared event and run strictly in order for a given event.
type Stage interface {
	Name() string
	Run(ctx context.Context, event *Event) (*Event, error)
}

// Generator is the single-call language model contract the stages consume.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SessionLoader populates the event from persisted session state. It must be
// the first stage: everything after it assumes user, state, and conversation
// are loaded.
type SessionLoader struct {
	store SessionStore
}

func NewSessionLoader(store SessionStore) *SessionLoader {
	return &SessionLoader{store: store}
}

func (s *SessionLoader) Name() string { return "session_loader" }

func (s *SessionLoader) Run(ctx context.Context, event *Event) (*Event, error) {
	if err := s.store.ReadState(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

const refinePrompt = `Given the following conversation and a follow up question, rephrase the follow up question to be a standalone question that can be understood without the conversation.

Chat history:
%s

Follow up question: %s

Standalone question:`

// RefineQuery rewrites the query into a self-contained question using the
// conversation so far, so retrieval does not depend on chat context. With no
// prior turns there is nothing to resolve and the query passes through.
type RefineQuery struct {
	llm Generator
}

func NewRefineQuery(llm Generator) *RefineQuery {
	return &RefineQuery{llm: llm}
}

func (r *RefineQuery) Name() string { return "refine_query" }

func (r *RefineQuery) Run(ctx context.Context, event *Event) (*Event, error) {
	if event.Conversation == nil || event.Conversation.Len() == 0 {
		return event, nil
	}

	prompt := fmt.Sprintf(refinePrompt, event.Conversation.String(), event.Query)
	refined, err := r.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("query refinement failed: %w", err)
	}
	refined = strings.TrimSpace(refined)
	if refined == "" {
		return event, nil
	}

	event.Results["refined_query"] = refined
	event.Query = refined
	return event, nil
}

const answerPrompt = `Answer the question based on the context below. If the context does not contain the answer, say so and answer from your own knowledge.

Context:
%s

Question: %s

Answer:`

// MultiRetriever fetches supporting passages for the refined query and
// generates the answer. Retrieval failures degrade to an empty source list
// rather than aborting the run; a chat reply is still expected.
type MultiRetriever struct {
	retriever         retrieval.Retriever
	llm               Generator
	defaultCollection string
}

func NewMultiRetriever(retriever retrieval.Retriever, llm Generator, defaultCollection string) *MultiRetriever {
	return &MultiRetriever{
		retriever:         retriever,
		llm:               llm,
		defaultCollection: defaultCollection,
	}
}

func (m *MultiRetriever) Name() string { return "multi_retriever" }

func (m *MultiRetriever) Run(ctx context.Context, event *Event) (*Event, error) {
	collection := event.Collection
	if collection == "" {
		collection = m.defaultCollection
	}

	passages, err := m.retriever.SimilaritySearch(ctx, collection, event.Query, event.Filter)
	if err != nil {
		slog.WarnContext(ctx, "Retrieval failed, answering without sources",
			"collection", collection, "error", err)
		passages = nil
	}
	event.Results["sources"] = passages

	contexts := make([]string, 0, len(passages))
	for _, p := range passages {
		contexts = append(contexts, p.Content)
	}
	contextText := strings.Join(contexts, "\n\n")
	if contextText == "" {
		contextText = "(no supporting documents were found)"
	}

	answer, err := m.llm.Generate(ctx, fmt.Sprintf(answerPrompt, contextText, event.Query))
	if err != nil {
		return nil, fmt.Errorf("answer generation failed: %w", err)
	}
	event.SetAnswer(strings.TrimSpace(answer))
	return event, nil
}

// HistorySaver commits the turn to the conversation and persists the session.
// It is the terminal stage; after it runs the event's results map is the
// externally visible output of the run.
type HistorySaver struct {
	store SessionStore
}

func NewHistorySaver(store SessionStore) *HistorySaver {
	return &HistorySaver{store: store}
}

func (h *HistorySaver) Name() string { return "history_saver" }

func (h *HistorySaver) Run(ctx context.Context, event *Event) (*Event, error) {
	event.Conversation.AddMessage(models.RoleHuman, event.OriginalQuery)
	event.Conversation.AddMessage(models.RoleAI, event.Answer())

	if err := h.store.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
