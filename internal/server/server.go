package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tuannguyen0901/meeting-flow/internal/config"
	"github.com/tuannguyen0901/meeting-flow/internal/logger"
	"github.com/tuannguyen0901/meeting-flow/internal/summarizer"
)

const version = "0.1.0"

// Server exposes the summarization API over HTTP.
type Server struct {
	cfg        *config.Config
	logger     logger.Logger
	summarizer summarizer.Summarizer
}

// New creates an HTTP server around the given summarizer.
func New(cfg *config.Config, log logger.Logger, sum summarizer.Summarizer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     log,
		summarizer: sum,
	}
}

// Handler builds the route table. Split out from Run so tests can
// drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/meetings/summarize", s.handleSummarize)
	mux.HandleFunc("GET /api/meetings/mock-data", s.handleMockData)
	mux.HandleFunc("GET /api/meetings/mock-summary", s.handleMockSummary)
	mux.HandleFunc("GET /api/meetings/long-mock-summary", s.handleLongMockSummary)

	return corsMiddleware(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

// corsMiddleware allows any origin; the API is consumed by the mobile
// client from arbitrary networks.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
