package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
)

type fakeStore struct {
	readCalls int
	saveCalls int
	readErr   error
	saveErr   error
}

func (f *fakeStore) ReadState(ctx context.Context, event *Event) error {
	f.readCalls++
	if f.readErr != nil {
		return f.readErr
	}
	if event.Conversation == nil {
		event.Conversation = models.NewConversation()
	}
	return nil
}

func (f *fakeStore) Save(ctx context.Context, event *Event) error {
	f.saveCalls++
	return f.saveErr
}

type fakeLLM struct {
	prompts []string
	answer  string
	err     error
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeRetriever struct {
	queries  []string
	passages []retrieval.Passage
	err      error
}

func (f *fakeRetriever) SimilaritySearch(ctx context.Context, collection, query string, filter map[string]string) ([]retrieval.Passage, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.passages, nil
}

func newTestPipeline(t *testing.T, store SessionStore, llm Generator, retriever retrieval.Retriever) *Pipeline {
	t.Helper()
	p, err := New("default",
		NewSessionLoader(store),
		NewRefineQuery(llm),
		NewMultiRetriever(retriever, llm, "default"),
		NewHistorySaver(store),
	)
	require.NoError(t, err)
	return p
}

func TestPipelineRun(t *testing.T) {
	store := &fakeStore{}
	llm := &fakeLLM{answer: "A vector is a list of numbers."}
	retriever := &fakeRetriever{passages: []retrieval.Passage{
		{Content: "vectors are numeric", Metadata: map[string]any{"title": "intro", "source": "intro.md", "chunk": 0}},
	}}
	p := newTestPipeline(t, store, llm, retriever)

	event := NewEvent("guest", "", "what is a vector?")
	results, err := p.Run(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "A vector is a list of numbers.", results["answer"])
	sources, ok := results["sources"].([]retrieval.Passage)
	require.True(t, ok)
	require.Len(t, sources, 1)
	assert.Equal(t, "intro", sources[0].Title())

	// Conversation grows by exactly one human and one AI turn per run.
	require.Equal(t, 2, event.Conversation.Len())
	messages := event.Conversation.ToMessages()
	assert.Equal(t, models.Message{Role: models.RoleHuman, Content: "what is a vector?"}, messages[0])
	assert.Equal(t, models.Message{Role: models.RoleAI, Content: "A vector is a list of numbers."}, messages[1])

	assert.Equal(t, 1, store.readCalls)
	assert.Equal(t, 1, store.saveCalls)
}

func TestPipelineAnswerReplacesQuery(t *testing.T) {
	store := &fakeStore{}
	llm := &fakeLLM{answer: "the answer"}
	retriever := &fakeRetriever{}
	p := newTestPipeline(t, store, llm, retriever)

	event := NewEvent("", "", "original question")
	_, err := p.Run(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "original question", event.OriginalQuery)
	assert.Equal(t, "the answer", event.Query)
}

func TestPipelineRefinesWithHistory(t *testing.T) {
	store := &fakeStore{}
	llm := &fakeLLM{answer: "refined or answered"}
	retriever := &fakeRetriever{}
	p := newTestPipeline(t, store, llm, retriever)

	event := NewEvent("guest", "", "and what about them?")
	event.Conversation.AddMessage(models.RoleHuman, "tell me about vectors")
	event.Conversation.AddMessage(models.RoleAI, "vectors are lists of numbers")

	_, err := p.Run(context.Background(), event)
	require.NoError(t, err)

	// Two completions: one to refine, one to answer. The refine prompt must
	// carry the prior turns.
	require.Len(t, llm.prompts, 2)
	assert.Contains(t, llm.prompts[0], "tell me about vectors")
	assert.Contains(t, llm.prompts[0], "and what about them?")

	// Retrieval sees the refined query, not the raw follow-up.
	require.Len(t, retriever.queries, 1)
	assert.Equal(t, "refined or answered", retriever.queries[0])
}

func TestPipelineSkipsRefineWithoutHistory(t *testing.T) {
	store := &fakeStore{}
	llm := &fakeLLM{answer: "answer"}
	retriever := &fakeRetriever{}
	p := newTestPipeline(t, store, llm, retriever)

	_, err := p.Run(context.Background(), NewEvent("", "", "a fresh question"))
	require.NoError(t, err)

	// Only the answering completion ran.
	require.Len(t, llm.prompts, 1)
	require.Len(t, retriever.queries, 1)
	assert.Equal(t, "a fresh question", retriever.queries[0])
}

func TestPipelineDegradesOnRetrievalFailure(t *testing.T) {
	store := &fakeStore{}
	llm := &fakeLLM{answer: "best effort answer"}
	retriever := &fakeRetriever{err: errors.New("vector store down")}
	p := newTestPipeline(t, store, llm, retriever)

	event := NewEvent("", "", "what is a vector?")
	results, err := p.Run(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "best effort answer", results["answer"])
	sources, ok := results["sources"].([]retrieval.Passage)
	require.True(t, ok)
	assert.Empty(t, sources)

	// The turn is still persisted.
	assert.Equal(t, 1, store.saveCalls)
	assert.Equal(t, 2, event.Conversation.Len())
}

func TestPipelineAbortsWhenLoaderFails(t *testing.T) {
	store := &fakeStore{readErr: errors.New("database unavailable")}
	llm := &fakeLLM{answer: "never"}
	retriever := &fakeRetriever{}
	p := newTestPipeline(t, store, llm, retriever)

	_, err := p.Run(context.Background(), NewEvent("guest", "42", "question"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")

	// Nothing downstream ran and nothing was committed.
	assert.Empty(t, llm.prompts)
	assert.Empty(t, retriever.queries)
	assert.Equal(t, 0, store.saveCalls)
}

func TestPipelineAbortsWhenGenerationFails(t *testing.T) {
	store := &fakeStore{}
	llm := &fakeLLM{err: errors.New("model unavailable")}
	retriever := &fakeRetriever{}
	p := newTestPipeline(t, store, llm, retriever)

	_, err := p.Run(context.Background(), NewEvent("", "", "question"))
	require.Error(t, err)
	assert.Equal(t, 0, store.saveCalls)
}

func TestNewRequiresStages(t *testing.T) {
	_, err := New("empty")
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	built := 0
	registry.Register("default", func() (*Pipeline, error) {
		built++
		return New("default", NewSessionLoader(&fakeStore{}))
	})

	p1, err := registry.Get("default")
	require.NoError(t, err)
	p2, err := registry.Get("default")
	require.NoError(t, err)

	// Same singleton, built once.
	assert.Same(t, p1, p2)
	assert.Equal(t, 1, built)

	_, err = registry.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pipeline")

	assert.Equal(t, []string{"default"}, registry.Names())
}
