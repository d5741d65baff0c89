// Package server exposes the form engine over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Server routes application and page requests to the engine.
type Server struct {
	engine  *form.Engine
	store   store.Store
	metrics *Metrics
	log     logrus.FieldLogger
	router  *mux.Router
}

// New creates a server. The engine should already persist through st and
// report to metrics.
func New(engine *form.Engine, st store.Store, metrics *Metrics, log logrus.FieldLogger) *Server {
	s := &Server{
		engine:  engine,
		store:   st,
		metrics: metrics,
		log:     log,
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(loggingMiddleware(s.log), metricsMiddleware(s.metrics))

	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/applications").Subrouter()
	api.HandleFunc("", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/{id}", s.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/review", s.handleReview).Methods(http.MethodGet)
	api.HandleFunc("/{id}/tasks/{task}/pages/{page}", s.handleShowPage).Methods(http.MethodGet)
	api.HandleFunc("/{id}/tasks/{task}/pages/{page}", s.handleSubmitPage).Methods(http.MethodPost)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
