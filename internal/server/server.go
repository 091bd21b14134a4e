// Package server wires every HTTP endpoint: dynamic screen navigation,
// the builder CRUD surface, the navigation graph, brand theming, the
// component catalog and interest inference. Every failure path returns
// well-formed JSON; nothing here can take the process down.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prism-dev/prism/internal/ai"
	"github.com/prism-dev/prism/internal/builder"
	"github.com/prism-dev/prism/internal/config"
	"github.com/prism-dev/prism/internal/graph"
	"github.com/prism-dev/prism/internal/screen"
)

// Server holds the collaborators behind the HTTP surface.
type Server struct {
	store    *screen.Store
	builder  *builder.Service
	graphs   *graph.Builder
	ai       *ai.Client
	logger   *slog.Logger
	version  string
	started  time.Time
}

// New assembles a server from configuration.
func New(cfg *config.Config, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:   screen.NewStore(cfg.AssetsDir, cfg.BrandScoped, logger),
		builder: builder.NewService(cfg.AssetsDir),
		graphs:  graph.NewBuilder(logger),
		ai:      ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAITimeout, logger),
		logger:  logger,
		version: version,
		started: time.Now(),
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLog())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Prism API",
			"version":       s.version,
			"documentation": "/docs",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(s.started).Seconds(),
		})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":     true,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	s.registerBrandRoutes(api.Group("/brands"))
	s.registerDynamicPageRoutes(api.Group("/dynamic-pages"))
	s.registerBuilderRoutes(api.Group("/builder"))
	s.registerAIRoutes(api.Group("/ai"))

	return router
}

// Run serves until the listener fails.
func (s *Server) Run(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.logger.Info("prism listening", "addr", addr, "brandScoped", s.store.BrandScoped())
	return s.Router().Run(addr)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
