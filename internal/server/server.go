// Package server exposes the spacing calculator as a JSON HTTP API.
//
// Routes:
//
//	POST /v1/solve              body: {"span": 42, "thickness": "1½"}; ?all=true lists every layout
//	GET  /v1/fraction/parse     ?text=1+1/2 (repeatable)
//	GET  /v1/fraction/format    ?value=2.125&unit=16
//	GET  /healthz
//
// Every response carries an X-Request-ID header. Errors are returned as
// {"error": {"code": "...", "message": "..."}} with 400 for invalid input,
// 422 when no layout exists, 503 when the request was cancelled and 500
// otherwise.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/balustrade/pkg/pipeline"
)

// shutdownTimeout bounds how long in-flight requests may finish after the
// run context is cancelled.
const shutdownTimeout = 3 * time.Second

// Server glues the HTTP routes to a pipeline runner.
type Server struct {
	// Router has every route and middleware registered.
	Router chi.Router

	runner  *pipeline.Runner
	logger  *log.Logger
	minSpan float64
}

// New creates a server that solves through runner and rejects spans shorter
// than minSpan. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, minSpan float64) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:  runner,
		logger:  logger,
		minSpan: minSpan,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "no route for "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" is not allowed on "+r.URL.Path)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/fraction/parse", s.handleParse)
		r.Get("/fraction/format", s.handleFormat)
	})

	s.Router = r
	return s
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		c, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(c); err != nil {
			s.logger.Warn("forced shutdown", "err", err)
			srv.Close()
		}
	}()

	s.logger.Info("listening", "addr", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return err
}
