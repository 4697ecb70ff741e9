// Package relay is the HTTP surface of the image-annotation pipeline:
// it receives a multipart image upload, runs annotate -> validate ->
// format, and answers with a uniform success/error envelope.
package relay

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"nameplate-relay/internal/config"
	"nameplate-relay/internal/monitoring"
	"nameplate-relay/internal/pipeline"
)

// Server holds the dependencies for the HTTP server. The annotator and
// formatter are injected so tests can substitute doubles; the server
// itself keeps no cross-request state.
type Server struct {
	config     *config.Config
	router     http.Handler
	httpServer *http.Server
	annotator  pipeline.Annotator
	formatter  pipeline.Formatter
	metrics    *monitoring.Metrics
	logger     *zap.Logger

	annotateTimeout time.Duration
	formatTimeout   time.Duration
}

func NewServer(cfg *config.Config, a pipeline.Annotator, f pipeline.Formatter, m *monitoring.Metrics, l *zap.Logger) *Server {
	s := &Server{
		config:          cfg,
		annotator:       a,
		formatter:       f,
		metrics:         m,
		logger:          l,
		annotateTimeout: time.Duration(cfg.AnnotateTimeout) * time.Second,
		formatTimeout:   time.Duration(cfg.FormatTimeout) * time.Second,
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%s", s.config.ServerPort),
		Handler:     s.router,
		ReadTimeout: 30 * time.Second,
		// Write timeout covers both provider calls plus the response.
		WriteTimeout: s.annotateTimeout + s.formatTimeout + 10*time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
