// Package server exposes the organizer over an HTTP JSON API for the browser UI.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Veraticus/sift/internal/common"
	"github.com/Veraticus/sift/internal/organizer"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the HTTP server.
type Config struct {
	// Gatherer backs /metrics; nil serves the Prometheus default registry.
	Gatherer       prometheus.Gatherer
	Addr           string
	AllowedOrigins []string
	MaxUploadBytes int64
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Debug          bool
}

// DefaultConfig returns the built-in server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
		MaxUploadBytes: 32 << 20,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
	}
}

// Server serves the organizer API.
type Server struct {
	organizer *organizer.Organizer
	engine    *gin.Engine
	config    Config
}

// New creates a server around org.
func New(org *organizer.Organizer, cfg Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultConfig().MaxUploadBytes
	}

	s := &Server{
		organizer: org,
		config:    cfg,
		engine:    gin.New(),
	}
	s.routes()
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery(), requestLogger())
	s.engine.Use(cors.New(s.corsConfig()))

	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(s.metricsHandler()))

	api := s.engine.Group("/api")
	api.GET("/categories", s.listCategories)
	api.POST("/categorize", s.categorize)
	api.GET("/files", s.listFiles)
	api.POST("/files", s.uploadFiles)
	api.GET("/files/:id", s.getFile)
	api.GET("/files/:id/content", s.fileContent)
	api.DELETE("/files/:id", s.removeFile)
	api.GET("/folders", s.listFolders)
	api.GET("/stats", s.stats)
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	if len(s.config.AllowedOrigins) == 0 || (len(s.config.AllowedOrigins) == 1 && s.config.AllowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.config.AllowedOrigins
	}
	return cfg
}

func (s *Server) metricsHandler() http.Handler {
	if s.config.Gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{})
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		common.LogInfo("Starting HTTP server", common.Fields{"addr": s.config.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	common.LogInfo("Shutting down HTTP server", nil)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		common.LogDebug("HTTP request", common.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}
