package batch

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// writeTableImage writes a white PNG with a black vertical line at x=10 and
// a black horizontal line at y=10, a 2x2 grid.
func writeTableImage(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x == 10 || y == 10 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Encoding fixture: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Writing fixture: %v", err)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCollectImages(t *testing.T) {
	dir := t.TempDir()
	writeTableImage(t, filepath.Join(dir, "b.png"))
	writeTableImage(t, filepath.Join(dir, "a.png"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := CollectImages(dir)
	if err != nil {
		t.Fatalf("CollectImages failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 images, got %v", paths)
	}
	if filepath.Base(paths[0]) != "a.png" || filepath.Base(paths[1]) != "b.png" {
		t.Errorf("Expected sorted image paths, got %v", paths)
	}
}

func TestRunnerProcessesImages(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "table.png")
	writeTableImage(t, good)
	bad := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	outDir := t.TempDir()
	runner := NewRunner(Config{
		Workers:   2,
		OutputDir: outDir,
		RunName:   "test-run",
	}, discardLogger())

	meta, results, err := runner.Run(context.Background(), []string{good, bad})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if meta.Succeeded != 1 || meta.Failed != 1 {
		t.Errorf("Expected 1 success and 1 failure, got %+v", meta)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Error != "" {
		t.Errorf("Expected first image to succeed, got %q", results[0].Error)
	}
	if results[0].Rows != 2 || results[0].Cols != 2 || len(results[0].Boxes) != 4 {
		t.Errorf("Expected a 2x2 grid with 4 cells, got %+v", results[0])
	}
	if results[1].Error == "" {
		t.Error("Expected second image to fail")
	}

	// Results were persisted.
	store, err := NewStore(outDir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	storedMeta, stored, err := store.LoadRun("test-run")
	if err != nil {
		t.Fatalf("LoadRun failed: %v", err)
	}
	if storedMeta.Images != 2 || len(stored) != 2 {
		t.Errorf("Expected 2 stored results, got %+v and %d results", storedMeta, len(stored))
	}
}

func TestRunnerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(Config{Workers: 1}, discardLogger())
	dir := t.TempDir()
	path := filepath.Join(dir, "table.png")
	writeTableImage(t, path)

	if _, _, err := runner.Run(ctx, []string{path}); err == nil {
		t.Error("Expected error for canceled context")
	}
}
