package viewer

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/gridmill/tessella"
	"github.com/gridmill/tessella/viz"
)

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, `{"error":"no results directory configured"}`, http.StatusNotFound)
		return
	}
	runs, err := s.store.ListRuns()
	if err != nil {
		s.serverError(w, "listing runs", err)
		return
	}
	s.writeJSON(w, map[string]any{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, `{"error":"no results directory configured"}`, http.StatusNotFound)
		return
	}
	run := chi.URLParam(r, "run")
	meta, results, err := s.store.LoadRun(run)
	if err != nil {
		http.Error(w, `{"error":"run not found"}`, http.StatusNotFound)
		return
	}
	s.writeJSON(w, map[string]any{"metadata": meta, "results": results})
}

// handlePreview recognizes an image from the image directory and returns the
// structure rendered as an HTML table.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	path, ok := s.imagePath(w, r)
	if !ok {
		return
	}
	table, warnings, err := tessella.Open(path).HTML()
	if err != nil {
		s.serverError(w, "recognizing image", err)
		return
	}
	var notes strings.Builder
	for _, warning := range warnings {
		fmt.Fprintf(&notes, "<p><em>%s</em></p>\n", warning.Message)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageTemplate, filepath.Base(path), table+notes.String())
}

// handleOverlay recognizes an image and returns the source with cell
// boundaries drawn on it, as PNG.
func (s *Server) handleOverlay(w http.ResponseWriter, r *http.Request) {
	path, ok := s.imagePath(w, r)
	if !ok {
		return
	}
	img, _, err := tessella.Open(path).Overlay()
	if err != nil {
		s.serverError(w, "recognizing image", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := viz.EncodePNG(w, img); err != nil {
		s.log.Error("writing overlay", "error", err)
	}
}

// imagePath resolves the image query parameter against the image directory.
// Only bare file names are accepted, so the handler cannot be walked out of
// its directory.
func (s *Server) imagePath(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := r.URL.Query().Get("image")
	if name == "" {
		http.Error(w, `{"error":"missing image parameter"}`, http.StatusBadRequest)
		return "", false
	}
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.Error(w, `{"error":"invalid image name"}`, http.StatusBadRequest)
		return "", false
	}
	return filepath.Join(s.imageDir, name), true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		s.serverError(w, "encoding response", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) serverError(w http.ResponseWriter, msg string, err error) {
	s.log.Error(msg, "error", err)
	http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
}
