// Package viewer serves recognition results over HTTP for visual inspection:
// stored batch runs as JSON and rendered reports, plus on-demand previews
// and overlays of individual images.
package viewer

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridmill/tessella/batch"
)

// Server is the HTTP viewer for recognition results.
type Server struct {
	router   chi.Router
	store    *batch.Store
	imageDir string
	log      *slog.Logger
}

// NewServer creates and configures the viewer. The store may be nil when no
// results directory exists; run endpoints then return 404. imageDir is the
// directory the preview and overlay endpoints read images from.
func NewServer(store *batch.Store, imageDir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		store:    store,
		imageDir: imageDir,
		log:      log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{run}", s.handleGetRun)
	r.Get("/runs/{run}/report", s.handleRunReport)
	r.Get("/preview", s.handlePreview)
	r.Get("/overlay", s.handleOverlay)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
