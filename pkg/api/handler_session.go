package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// ListSessions returns chat sessions, newest activity first. Filters:
// user, last (max rows), created (RFC 3339 lower bound).
func (s *Server) ListSessions(c *gin.Context) {
	filters := models.SessionFilters{
		Username: c.Query("user"),
	}
	if last := c.Query("last"); last != "" {
		if n, err := strconv.Atoi(last); err == nil {
			filters.Last = n
		}
	}
	if created := c.Query("created"); created != "" {
		after, err := time.Parse(time.RFC3339, created)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		filters.CreatedAfter = &after
	}

	sessions, err := s.sessions.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, sessions)
}

// GetSession returns one chat session by id.
func (s *Server) GetSession(c *gin.Context) {
	sess, err := s.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, sess)
}

// DeleteSession removes a chat session. The pipeline never deletes
// sessions; this is the administrative path.
func (s *Server) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := s.sessions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, gin.H{"session_id": id})
}
