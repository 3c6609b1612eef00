package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

// respondData writes a success envelope.
func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, models.OK(data))
}

// respondError maps service errors onto the response envelope. Not-found is
// not an HTTP error: it is a success=false envelope with a message, so
// callers can apply their own raise-or-ignore policy.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusOK, models.Fail("%s", err.Error()))
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, models.Fail("%s", err.Error()))
	case services.IsValidationError(err), errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, models.Fail("%s", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, models.Fail("%s", err.Error()))
	}
}

// respondBadRequest writes a failure envelope for malformed input.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.Fail("invalid request: %s", err.Error()))
}
