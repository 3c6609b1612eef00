package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
)

// ListCollections returns collections, optionally filtered by owner and
// metadata key=value pairs. With names_only=true (the default) only the
// collection names are returned.
func (s *Server) ListCollections(c *gin.Context) {
	filters := models.CollectionFilters{
		Owner:     c.Query("owner"),
		NamesOnly: boolQuery(c, "names_only", true),
	}
	if metadata := c.QueryMap("metadata"); len(metadata) > 0 {
		filters.Metadata = metadata
	}

	collections, err := s.collections.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	if filters.NamesOnly {
		names := make([]string, 0, len(collections))
		for _, col := range collections {
			names = append(names, col.ID)
		}
		respondData(c, names)
		return
	}
	respondData(c, collections)
}

// GetCollection returns one collection by name.
func (s *Server) GetCollection(c *gin.Context) {
	col, err := s.collections.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, col)
}

// CreateCollection creates or updates the named collection. The owner
// defaults to the calling user.
func (s *Server) CreateCollection(c *gin.Context) {
	var spec models.CollectionSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		respondBadRequest(c, err)
		return
	}
	spec.Name = c.Param("name")
	if spec.OwnerName == "" {
		spec.OwnerName = s.username(c)
	}

	col, err := s.collections.CreateOrUpdate(c.Request.Context(), spec)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, col)
}

// IngestCollection loads a document into the named collection's vector
// store and records the ingestion on the collection row.
func (s *Server) IngestCollection(c *gin.Context) {
	var req models.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if s.ingester == nil {
		c.JSON(http.StatusServiceUnavailable, models.Fail("ingestion is not configured"))
		return
	}

	name := c.Param("name")
	ctx := c.Request.Context()
	chunks, err := s.ingester.Ingest(ctx, name, req.Path, retrieval.IngestOptions{
		Loader:   req.Loader,
		Metadata: req.Metadata,
		Version:  req.Version,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	meta := map[string]any{"last_source": req.Path}
	if req.Version != "" {
		meta["version"] = req.Version
	}
	if _, err := s.collections.CreateOrUpdate(ctx, models.CollectionSpec{
		Name:      name,
		OwnerName: s.username(c),
		Meta:      meta,
	}); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, gin.H{"collection": name, "chunks": chunks})
}

func boolQuery(c *gin.Context, name string, fallback bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
