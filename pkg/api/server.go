package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yaronha/demo-llm-agent/pkg/config"
	"github.com/yaronha/demo-llm-agent/pkg/database"
	"github.com/yaronha/demo-llm-agent/pkg/pipeline"
	"github.com/yaronha/demo-llm-agent/pkg/retrieval"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

// Ingester loads a document into a collection and reports the chunk count.
type Ingester interface {
	Ingest(ctx context.Context, collection, path string, opts retrieval.IngestOptions) (int, error)
}

// Transcriber converts an uploaded audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Server is the REST API server.
type Server struct {
	cfg         *config.Config
	db          *database.Client
	users       *services.UserService
	collections *services.CollectionService
	sessions    *services.SessionService
	registry    *pipeline.Registry
	ingester    Ingester
	transcriber Transcriber
}

// NewServer creates the API server over the shared database client and
// pipeline registry. ingester and transcriber may be nil; the matching
// endpoints then report the capability as unavailable.
func NewServer(cfg *config.Config, db *database.Client, registry *pipeline.Registry, ingester Ingester, transcriber Transcriber) *Server {
	return &Server{
		cfg:         cfg,
		db:          db,
		users:       services.NewUserService(db.Client),
		collections: services.NewCollectionService(db.Client),
		sessions:    services.NewSessionService(db.Client),
		registry:    registry,
		ingester:    ingester,
		transcriber: transcriber,
	}
}

// Handler builds the route tree.
func (s *Server) Handler() *gin.Engine {
	if !s.cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", s.Health)

	router.POST("/query", s.Query)
	router.POST("/pipeline/:name/run", s.Query)

	router.GET("/collections", s.ListCollections)
	router.GET("/collection/:name", s.GetCollection)
	router.POST("/collection/:name", s.CreateCollection)
	router.POST("/collection/:name/ingest", s.IngestCollection)

	router.GET("/users", s.ListUsers)
	router.GET("/user/:username", s.GetUser)
	router.POST("/user/:username", s.CreateUser)
	router.DELETE("/user/:username", s.DeleteUser)

	router.GET("/sessions", s.ListSessions)
	router.GET("/session/:id", s.GetSession)
	router.DELETE("/session/:id", s.DeleteSession)

	router.POST("/transcribe", s.Transcribe)

	return router
}

// Health reports service and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if s.db.DB() == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		return
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
