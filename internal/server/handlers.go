package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"yuragi/internal/analyzer"
	"yuragi/internal/ingest"
	"yuragi/internal/store"
)

type nicknameRequest struct {
	Title string `json:"title"`
	Debug bool   `json:"debug"`
}

type nicknameResponse struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Candidates []string            `json:"candidates,omitempty"`
	Groups     map[string][]string `json:"groups,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) generate(c *gin.Context) {
	var req nicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	title, err := ingest.NewTitle(req.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := s.gen.Generate(c.Request.Context(), title.Text)
	if err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		if errors.Is(err, analyzer.ErrDictionary) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": "generation failed"})
		return
	}

	resp := nicknameResponse{ID: title.ID, Title: title.Text}
	if req.Debug {
		resp.Groups = set.Map()
	} else {
		resp.Candidates = set.Flatten()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) lookup(c *gin.Context) {
	if s.aliases == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alias index not configured"})
		return
	}
	alias := c.Param("alias")
	matches, err := s.aliases.Lookup(c.Request.Context(), alias)
	switch {
	case errors.Is(err, store.ErrEmptyAlias):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		_ = c.Error(err)
		s.logger.Error("alias_lookup_failed", slog.String("alias", alias), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if len(matches) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"alias": alias, "matches": matches})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alias": alias, "matches": matches})
}
