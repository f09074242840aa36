// Package server exposes nickname generation and alias lookup over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"yuragi/internal/model"
	"yuragi/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Generator produces the candidate groups of a title.
type Generator interface {
	Generate(ctx context.Context, title string) (model.CandidateSet, error)
}

// AliasLookup resolves an alias to titles.
type AliasLookup interface {
	Lookup(ctx context.Context, alias string) ([]store.Match, error)
}

// Server serves the HTTP API.
type Server struct {
	gen     Generator
	aliases AliasLookup
	logger  *slog.Logger
}

// New returns a server. aliases may be nil, in which case the alias
// endpoint answers 503.
func New(gen Generator, aliases AliasLookup, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{gen: gen, aliases: aliases, logger: logger}
}

// Router builds the gin engine. mode is a gin mode; empty means release.
func (s *Server) Router(mode string) *gin.Engine {
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(s.logger))

	r.GET("/healthz", s.health)
	api := r.Group("/api/v1")
	{
		api.POST("/nicknames", s.generate)
		api.GET("/aliases/:alias", s.lookup)
	}
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr, mode string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(mode),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	s.logger.Info("server_start", slog.String("addr", addr))

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server_shutdown_failed", slog.Any("error", err))
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info("server_stopped")
		return nil
	})

	return g.Wait()
}
