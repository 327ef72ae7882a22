// Package batch processes directories of table images concurrently and
// optionally persists the recognized structures as JSON.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gridmill/tessella"
	"github.com/gridmill/tessella/model"
	"github.com/gridmill/tessella/split"
)

// Config controls a batch run.
type Config struct {
	// Workers is the number of images processed concurrently.
	// Zero means runtime.NumCPU().
	Workers int
	// Split overrides the recognition thresholds. Zero value means defaults.
	Split split.Config
	// OCR enables text extraction (requires the ocr build tag).
	OCR bool
	// Language is the OCR language when OCR is enabled.
	Language string
	// OutputDir is where results are stored. Empty disables persistence.
	OutputDir string
	// RunName names the stored run. Empty derives one from the start time.
	RunName string
}

// Result holds the recognition outcome for a single image.
type Result struct {
	Image    string              `json:"image"`
	Rows     int                 `json:"rows"`
	Cols     int                 `json:"cols"`
	Boxes    []model.BoundingBox `json:"boxes"`
	Grids    []model.GridCoord   `json:"grids"`
	Contents []string            `json:"contents,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
	Error    string              `json:"error,omitempty"`
	Elapsed  time.Duration       `json:"elapsed_ns"`
}

// Runner executes batch recognition runs.
type Runner struct {
	cfg    Config
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger falls back to slog.Default().
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &Runner{cfg: cfg, logger: logger}
}

// CollectImages lists the image files directly under dir, sorted by name.
func CollectImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Run processes every image and returns the results in input order.
// Per-image failures are recorded on the result and do not stop the run;
// Run itself fails only on context cancellation or storage errors.
func (r *Runner) Run(ctx context.Context, paths []string) (*RunMetadata, []*Result, error) {
	started := time.Now()
	results := make([]*Result, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.processOne(paths[i])
			}
		}()
	}

	r.logger.Info("batch run started", "images", len(paths), "workers", r.cfg.Workers)

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("batch run canceled: %w", err)
	}

	meta := &RunMetadata{
		Name:      r.runName(started),
		StartedAt: started,
		Images:    len(paths),
	}
	for _, res := range results {
		if res.Error == "" {
			meta.Succeeded++
		} else {
			meta.Failed++
		}
	}
	r.logger.Info("batch run finished",
		"run", meta.Name,
		"succeeded", meta.Succeeded,
		"failed", meta.Failed,
		"elapsed", time.Since(started))

	if r.cfg.OutputDir != "" {
		if err := r.persist(meta, results); err != nil {
			return nil, nil, err
		}
	}
	return meta, results, nil
}

func (r *Runner) processOne(path string) *Result {
	started := time.Now()
	res := &Result{Image: path}

	rec := tessella.Open(path).WithConfig(r.cfg.Split)
	if r.cfg.OCR {
		rec = rec.OCR(r.cfg.Language)
	}
	st, warnings, err := rec.Structure()
	res.Elapsed = time.Since(started)
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, w.Message)
	}
	if err != nil {
		res.Error = err.Error()
		r.logger.Error("recognition failed", "image", path, "error", err)
		return res
	}

	res.Rows = st.Rows()
	res.Cols = st.Cols()
	res.Boxes = st.BoundingBoxes()
	res.Grids = st.GridCoords()
	if r.cfg.OCR {
		res.Contents = st.Content()
	}
	r.logger.Info("image processed",
		"image", path,
		"cells", st.CellCount(),
		"elapsed", res.Elapsed)
	return res
}

func (r *Runner) persist(meta *RunMetadata, results []*Result) error {
	store, err := NewStore(r.cfg.OutputDir)
	if err != nil {
		return err
	}
	for i, res := range results {
		if err := store.SaveResult(meta.Name, i, res); err != nil {
			return err
		}
	}
	return store.SaveMetadata(meta.Name, meta)
}

func (r *Runner) runName(started time.Time) string {
	if r.cfg.RunName != "" {
		return r.cfg.RunName
	}
	return started.Format("20060102-150405")
}
