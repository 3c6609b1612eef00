package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// Transcribe converts an uploaded audio file to text, for voice queries.
func (s *Server) Transcribe(c *gin.Context) {
	if s.transcriber == nil {
		c.JSON(http.StatusServiceUnavailable, models.Fail("transcription is not configured"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	text, err := s.transcriber.Transcribe(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, text)
}
