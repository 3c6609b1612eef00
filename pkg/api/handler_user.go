package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// ListUsers returns users, optionally filtered by email or full name.
func (s *Server) ListUsers(c *gin.Context) {
	filters := models.UserFilters{
		Email:     c.Query("email"),
		FullName:  c.Query("full_name"),
		NamesOnly: boolQuery(c, "names_only", true),
	}

	users, err := s.users.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	if filters.NamesOnly {
		names := make([]string, 0, len(users))
		for _, u := range users {
			names = append(names, u.ID)
		}
		respondData(c, names)
		return
	}
	respondData(c, users)
}

// GetUser returns one user by username.
func (s *Server) GetUser(c *gin.Context) {
	u, err := s.users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, u)
}

// CreateUser creates the named user.
func (s *Server) CreateUser(c *gin.Context) {
	var spec models.UserSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		respondBadRequest(c, err)
		return
	}
	spec.Username = c.Param("username")

	u, err := s.users.Create(c.Request.Context(), spec)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, u)
}

// DeleteUser removes the named user.
func (s *Server) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := s.users.Delete(c.Request.Context(), username); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, gin.H{"username": username})
}
