// Command tessella recognizes the cell structure of table images.
//
// Single image:
//
//	tessella -image table.png -format html
//
// Batch over a directory, persisting results:
//
//	tessella -dir ./tables -out ./results -workers 4
//
// Result viewer:
//
//	tessella -serve :8080 -out ./results -dir ./tables
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gridmill/tessella"
	"github.com/gridmill/tessella/batch"
	"github.com/gridmill/tessella/viewer"
	"github.com/gridmill/tessella/viz"
)

func main() {
	var (
		imagePath = flag.String("image", "", "recognize a single image file")
		dirPath   = flag.String("dir", "", "recognize every image in a directory")
		format    = flag.String("format", "html", "output format: html, markdown, csv, overlay")
		useOCR    = flag.Bool("ocr", false, "extract cell text (requires the ocr build tag)")
		language  = flag.String("lang", "eng", "OCR language")
		outDir    = flag.String("out", "", "directory for stored batch results")
		workers   = flag.Int("workers", 0, "batch worker count (0 = all CPUs)")
		serveAddr = flag.String("serve", "", "serve the result viewer on this address")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	switch {
	case *serveAddr != "":
		runViewer(log, *serveAddr, *outDir, *dirPath)
	case *dirPath != "":
		runBatch(log, *dirPath, *outDir, *workers, *useOCR, *language)
	case *imagePath != "":
		runSingle(log, *imagePath, *format, *useOCR, *language)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runSingle(log *slog.Logger, path, format string, useOCR bool, language string) {
	rec := tessella.Open(path)
	if useOCR {
		rec = rec.OCR(language)
	}

	var (
		out      string
		warnings []tessella.Warning
		err      error
	)
	switch format {
	case "html":
		out, warnings, err = rec.HTML()
	case "markdown":
		out, warnings, err = rec.Markdown()
	case "csv":
		out, warnings, err = rec.CSV()
	case "overlay":
		overlay, w, oerr := rec.Overlay()
		warnings, err = w, oerr
		if err == nil {
			err = viz.EncodePNG(os.Stdout, overlay)
		}
	default:
		log.Error("unknown format", "format", format)
		os.Exit(2)
	}
	if err != nil {
		log.Error("recognition failed", "image", path, "error", err)
		os.Exit(1)
	}
	if len(warnings) > 0 {
		log.Warn("recognition warnings", "detail", tessella.FormatWarnings(warnings))
	}
	if format != "overlay" {
		fmt.Print(out)
	}
}

func runBatch(log *slog.Logger, dir, outDir string, workers int, useOCR bool, language string) {
	paths, err := batch.CollectImages(dir)
	if err != nil {
		log.Error("collecting images", "dir", dir, "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		log.Error("no images found", "dir", dir)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(batch.Config{
		Workers:   workers,
		OCR:       useOCR,
		Language:  language,
		OutputDir: outDir,
	}, log)
	meta, _, err := runner.Run(ctx, paths)
	if err != nil {
		log.Error("batch run failed", "error", err)
		os.Exit(1)
	}
	if meta.Failed > 0 {
		os.Exit(1)
	}
}

func runViewer(log *slog.Logger, addr, outDir, imageDir string) {
	var store *batch.Store
	if outDir != "" {
		var err error
		store, err = batch.NewStore(outDir)
		if err != nil {
			log.Error("opening result store", "dir", outDir, "error", err)
			os.Exit(1)
		}
	}

	srv := viewer.NewServer(store, imageDir, log)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting viewer", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
