// Package api serves a built site together with a read-only JSON view of
// the catalog for local preview.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/meur/gemwiki/internal/models"
	"github.com/meur/gemwiki/internal/site"
)

// CatalogSource loads the current catalog
type CatalogSource interface {
	Load() (*models.Catalog, error)
}

// StatsReader reports the stats state of a rendered page
type StatsReader interface {
	ReadStatsState(id string) (site.StatsState, error)
}

// Server holds the HTTP server dependencies
type Server struct {
	catalog CatalogSource
	stats   StatsReader
	root    http.FileSystem
	logger  *zap.Logger
	router  chi.Router
}

// New creates the preview server. stats and root may be nil.
func New(catalog CatalogSource, stats StatsReader, root http.FileSystem, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		catalog: catalog,
		stats:   stats,
		root:    root,
		logger:  logger,
		router:  chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/characters", s.handleListCharacters)
		r.Get("/characters/{id}", s.handleGetCharacter)
		r.Get("/groups", s.handleListGroups)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if s.root != nil {
		s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/"+site.OverviewFile, http.StatusFound)
		})
		FileServer(s.router, "/", s.root)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// FileServer mounts the built site root (wiki.html, characters/, images/)
// under path. path must be a plain prefix without URL parameters.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("site prefix must not contain URL parameters")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		prefix := strings.TrimSuffix(chi.RouteContext(req.Context()).RoutePattern(), "/*")
		http.StripPrefix(prefix, http.FileServer(root)).ServeHTTP(w, req)
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
