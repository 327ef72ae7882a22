package viewer

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/gridmill/tessella/batch"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 4px 8px; }
</style>
</head>
<body>
%s
</body>
</html>
`

var reportMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// handleRunReport renders a stored run as an HTML report: a markdown summary
// table of every processed image, converted with goldmark.
func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
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

	md := buildReport(meta, results)
	var body strings.Builder
	if err := reportMarkdown.Convert([]byte(md), &body); err != nil {
		s.serverError(w, "rendering report", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageTemplate, "Run "+meta.Name, body.String())
}

func buildReport(meta *batch.RunMetadata, results []*batch.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Run %s\n\n", meta.Name)
	fmt.Fprintf(&sb, "Started %s. %d images, %d succeeded, %d failed.\n\n",
		meta.StartedAt.Format("2006-01-02 15:04:05"),
		meta.Images, meta.Succeeded, meta.Failed)

	sb.WriteString("| Image | Rows | Cols | Cells | Status |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, res := range results {
		status := "ok"
		if res.Error != "" {
			status = res.Error
		} else if len(res.Warnings) > 0 {
			status = strings.Join(res.Warnings, "; ")
		}
		fmt.Fprintf(&sb, "| %s | %d | %d | %d | %s |\n",
			filepath.Base(res.Image), res.Rows, res.Cols, len(res.Boxes), status)
	}
	return sb.String()
}
