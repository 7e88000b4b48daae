// Package server exposes the resolver over HTTP with gin: a JSON API, a form
// page, the distribution chart and a health endpoint.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentilite/internal/models"
	"github.com/spacesedan/sentilite/internal/presentation"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

// ModeFor maps APP_ENV to a gin mode; only dev runs in debug mode.
func ModeFor(env string) string {
	if env == "dev" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

type Analyzer interface {
	Resolve(ctx context.Context, text string) (models.Resolution, error)
}

type Server struct {
	analyzer      Analyzer
	chart         *presentation.ChartRenderer
	remoteHealthy *atomic.Bool
	router        *gin.Engine
}

// New wires the routes. remoteHealthy may be nil when probing is disabled.
func New(analyzer Analyzer, remoteHealthy *atomic.Bool) *Server {
	s := &Server{
		analyzer:      analyzer,
		chart:         presentation.NewChartRenderer(),
		remoteHealthy: remoteHealthy,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/", s.handleIndex)
	router.GET("/chart", s.handleChart)
	router.GET("/healthz", s.handleHealth)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", s.handleAnalyze)
	}

	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("[Server] Listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("[Server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()
	s.chart.Dispose()
	return srv.Shutdown(shutdownCtx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("[Server] Request handled",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
