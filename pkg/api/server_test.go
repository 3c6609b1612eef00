package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaronha/demo-llm-agent/ent/enttest"
	"github.com/yaronha/demo-llm-agent/pkg/config"
	"github.com/yaronha/demo-llm-agent/pkg/database"
	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/pipeline"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

type stubLLM struct{ answer string }

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return s.answer, nil
}

type stubRetriever struct{ passages []retrieval.Passage }

func (s *stubRetriever) SimilaritySearch(ctx context.Context, collection, query string, filter map[string]string) ([]retrieval.Passage, error) {
	return s.passages, nil
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	db := database.NewClientFromEnt(client, nil)

	cfg := &config.Config{
		DefaultCollection: "default",
		DefaultPipeline:   "default",
		GuestUsername:     "guest",
	}

	users := services.NewUserService(client)
	sessions := services.NewSessionService(client)
	_, err := users.Create(context.Background(), models.UserSpec{
		Username: "guest",
		Email:    "guest@example.com",
	})
	require.NoError(t, err)

	store := pipeline.NewDBSessionStore(users, sessions, cfg.GuestUsername)
	llm := &stubLLM{answer: "a vector is a list of numbers"}
	retriever := &stubRetriever{passages: []retrieval.Passage{
		{Content: "vectors", Metadata: map[string]any{"title": "intro", "source": "intro.md", "chunk": 0}},
	}}

	registry := pipeline.NewRegistry()
	registry.Register("default", func() (*pipeline.Pipeline, error) {
		return pipeline.New("default",
			pipeline.NewSessionLoader(store),
			pipeline.NewRefineQuery(llm),
			pipeline.NewMultiRetriever(retriever, llm, cfg.DefaultCollection),
			pipeline.NewHistorySaver(store),
		)
	})

	return NewServer(cfg, db, registry, nil, nil).Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) (*httptest.ResponseRecorder, models.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope models.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not an envelope: %s", rec.Body.String())
	}
	return rec, envelope
}

func TestQueryEndpoint(t *testing.T) {
	handler := newTestServer(t)

	rec, envelope := doRequest(t, handler, http.MethodPost, "/query", models.QueryRequest{
		Question:  "what is a vector?",
		SessionID: "234",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success, envelope.Error)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a vector is a list of numbers", data["answer"])
	assert.Contains(t, data["sources"], "intro")

	// The turn was persisted under session 234.
	rec, envelope = doRequest(t, handler, http.MethodGet, "/session/234", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success, envelope.Error)
	sess, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	history, ok := sess["history"].([]any)
	require.True(t, ok)
	require.Len(t, history, 2)
}

func TestQueryRequiresQuestion(t *testing.T) {
	handler := newTestServer(t)
	rec, envelope := doRequest(t, handler, http.MethodPost, "/query", map[string]string{"session_id": "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
}

func TestQueryUnknownPipeline(t *testing.T) {
	handler := newTestServer(t)
	rec, envelope := doRequest(t, handler, http.MethodPost, "/pipeline/nope/run", models.QueryRequest{
		Question: "hello",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, envelope.Success)
}

func TestUserEndpoints(t *testing.T) {
	handler := newTestServer(t)

	rec, envelope := doRequest(t, handler, http.MethodPost, "/user/alice", models.UserSpec{
		Email:    "alice@example.com",
		FullName: "Alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success, envelope.Error)

	rec, envelope = doRequest(t, handler, http.MethodGet, "/user/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)
	u, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", u["email"])

	// Duplicate create conflicts.
	rec, _ = doRequest(t, handler, http.MethodPost, "/user/alice", models.UserSpec{
		Email: "alice@example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, envelope = doRequest(t, handler, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	names, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Contains(t, names, "alice")
	assert.Contains(t, names, "guest")

	rec, envelope = doRequest(t, handler, http.MethodDelete, "/user/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	// Not-found is a success=false envelope, not an HTTP error.
	rec, envelope = doRequest(t, handler, http.MethodGet, "/user/alice", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)
}

func TestCollectionEndpoints(t *testing.T) {
	handler := newTestServer(t)

	rec, envelope := doRequest(t, handler, http.MethodPost, "/collection/docs", models.CollectionSpec{
		Description: "project docs",
		Meta:        map[string]any{"team": "ml"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success, envelope.Error)
	col, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "guest", col["owner_name"])

	// Posting again updates and merges metadata.
	rec, envelope = doRequest(t, handler, http.MethodPost, "/collection/docs", models.CollectionSpec{
		Meta: map[string]any{"version": "2"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success, envelope.Error)

	rec, envelope = doRequest(t, handler, http.MethodGet, "/collection/docs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	col, ok = envelope.Data.(map[string]any)
	require.True(t, ok)
	meta, ok := col["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ml", meta["team"])
	assert.Equal(t, "2", meta["version"])

	rec, envelope = doRequest(t, handler, http.MethodGet, "/collections", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	names, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Contains(t, names, "docs")

	rec, envelope = doRequest(t, handler, http.MethodGet, "/collection/missing", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, envelope.Success)
}

func TestSessionEndpoints(t *testing.T) {
	handler := newTestServer(t)

	_, envelope := doRequest(t, handler, http.MethodPost, "/query", models.QueryRequest{
		Question:  "first",
		SessionID: "s1",
	})
	require.True(t, envelope.Success, envelope.Error)

	rec, envelope := doRequest(t, handler, http.MethodGet, "/sessions?user=guest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessions, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, sessions, 1)

	rec, envelope = doRequest(t, handler, http.MethodDelete, "/session/s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	rec, envelope = doRequest(t, handler, http.MethodGet, "/session/s1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, envelope.Success)
}

func TestTranscribeUnconfigured(t *testing.T) {
	handler := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(""))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthWithoutPool(t *testing.T) {
	handler := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
