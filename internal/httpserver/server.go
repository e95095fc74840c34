// Package httpserver exposes the blog service as a JSON REST API.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blackmichael/blog-service/internal/config"
	"github.com/blackmichael/blog-service/internal/domain"
)

// Server is the HTTP server that serves the blog REST endpoints.
type Server struct {
	cfg        *config.Config
	posts      *domain.PostService
	comments   *domain.CommentService
	images     *domain.ImageService
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates a new HTTP server over the given services.
func NewServer(
	cfg *config.Config,
	posts *domain.PostService,
	comments *domain.CommentService,
	images *domain.ImageService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		cfg:      cfg,
		posts:    posts,
		comments: comments,
		images:   images,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(withLogging(logger))
	r.Use(withMetrics)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", s.handleSearchPosts)
		r.Post("/", s.handleCreatePost)

		r.Route("/{postID}", func(r chi.Router) {
			r.Get("/", s.handleGetPost)
			r.Put("/", s.handleUpdatePost)
			r.Delete("/", s.handleDeletePost)

			r.Post("/likes", s.handleIncrementLikes)

			r.Get("/image", s.handleGetImage)
			r.Put("/image", s.handleUpdateImage)

			r.Route("/comments", func(r chi.Router) {
				r.Get("/", s.handleGetComments)
				r.Post("/", s.handleAddComment)
				r.Get("/{commentID}", s.handleGetComment)
				r.Put("/{commentID}", s.handleUpdateComment)
				r.Delete("/{commentID}", s.handleDeleteComment)
			})
		})
	})

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. It blocks until the server is
// shut down or an error occurs.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func withLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.status,
				"duration", time.Since(start),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
