//go:build !ocr

// Package ocr extracts text from recognized table cells.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Engine constructors return ErrOCRNotEnabled; cell preparation and text
// normalization remain available.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"
	"image"

	"github.com/gridmill/tessella/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Engine is a stub that returns errors for all recognition operations.
type Engine struct{}

// NewEngine returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func NewEngine(opts Options) (*Engine, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub engine.
// It is safe to call on a nil engine.
func (e *Engine) Close() error {
	return nil
}

// RecognizeCells returns an error indicating OCR support is not enabled.
func (e *Engine) RecognizeCells(src image.Image, boxes []model.BoundingBox) ([]string, error) {
	return nil, ErrOCRNotEnabled
}
