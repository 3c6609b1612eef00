package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/pipeline"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
)

// Query runs one question through a pipeline. POST /query uses the default
// pipeline; POST /pipeline/:name/run selects one by name.
func (s *Server) Query(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	name := c.Param("name")
	if name == "" {
		name = s.cfg.DefaultPipeline
	}
	p, err := s.registry.Get(name)
	if err != nil {
		c.JSON(http.StatusNotFound, models.Fail("%s", err.Error()))
		return
	}

	event := pipeline.NewEvent(s.username(c), req.SessionID, req.Question)
	event.Collection = req.Collection
	event.Filter = req.Filter

	results, err := p.Run(c.Request.Context(), event)
	if err != nil {
		respondError(c, err)
		return
	}

	sources, _ := results["sources"].([]retrieval.Passage)
	respondData(c, models.QueryResult{
		Answer:        event.Answer(),
		Sources:       retrieval.SourcesToMarkdown(sources),
		ReturnedState: event.State,
	})
}
