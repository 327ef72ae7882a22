//go:build ocr

// Package ocr extracts text from recognized table cells using the Tesseract
// OCR engine via gosseract. It requires Tesseract to be installed on the
// system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/gridmill/tessella/model"
)

// Engine wraps a Tesseract client configured for single-line table cells.
type Engine struct {
	client *gosseract.Client
	opts   Options
}

// NewEngine creates a recognition engine.
// The engine should be closed when no longer needed to release resources.
func NewEngine(opts Options) (*Engine, error) {
	client := gosseract.NewClient()
	if opts.Language != "" {
		if err := client.SetLanguage(opts.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting language %q: %w", opts.Language, err)
		}
	}
	// Cells hold a single line of text; telling Tesseract so avoids its
	// layout analysis mis-segmenting short fragments.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting page segmentation mode: %w", err)
	}
	return &Engine{client: client, opts: opts}, nil
}

// Close releases Tesseract resources. It is safe to call on a nil engine.
func (e *Engine) Close() error {
	if e == nil || e.client == nil {
		return nil
	}
	return e.client.Close()
}

// RecognizeCells runs OCR over every bounding box of src and returns the
// normalized text per cell, in box order.
func (e *Engine) RecognizeCells(src image.Image, boxes []model.BoundingBox) ([]string, error) {
	cells, err := PrepareCells(src, boxes, e.opts)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(cells))
	for i, cell := range cells {
		var buf bytes.Buffer
		if err := png.Encode(&buf, cell); err != nil {
			return nil, fmt.Errorf("encoding cell %d: %w", i, err)
		}
		if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
			return nil, fmt.Errorf("setting cell %d image: %w", i, err)
		}
		text, err := e.client.Text()
		if err != nil {
			return nil, fmt.Errorf("recognizing cell %d: %w", i, err)
		}
		texts[i] = NormalizeText(text)
	}
	return texts, nil
}
