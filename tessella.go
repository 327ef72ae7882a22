// Package tessella provides a fluent API for recognizing the cell structure
// of software-rendered table images.
//
// Basic usage:
//
//	st, warnings, err := tessella.Open("table.png").Structure()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tessella.FormatWarnings(warnings))
//	}
//
// With options:
//
//	html, _, err := tessella.Open("table.png").
//	    BinarizeThreshold(160).
//	    OCR("eng").
//	    HTML()
//
// For advanced use cases, the lower-level pixmap and split packages are
// also available.
package tessella

import (
	"image"

	"github.com/gridmill/tessella/pixmap"
)

// Open prepares a Recognizer for an image file. Decoding is deferred until
// a terminal operation runs.
//
// Example:
//
//	st, warnings, err := tessella.Open("table.png").Structure()
func Open(filename string) *Recognizer {
	return &Recognizer{
		filename: filename,
		options:  defaultRecognizeOptions(),
	}
}

// FromImage creates a Recognizer from an already-decoded image.
//
// Example:
//
//	img, _, err := image.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//	st, warnings, err := tessella.FromImage(img).Structure()
func FromImage(img image.Image) *Recognizer {
	return &Recognizer{
		source:  img,
		options: defaultRecognizeOptions(),
	}
}

// FromBitmap creates a Recognizer from a pre-binarized bitmap. OCR and
// Overlay are unavailable on this path because the original pixels are gone.
func FromBitmap(b *pixmap.Bitmap) *Recognizer {
	return &Recognizer{
		bitmap:  b,
		options: defaultRecognizeOptions(),
	}
}

// Must panics on error, returning only the value. Useful in scripts and
// tests where an error is fatal anyway.
//
// Example:
//
//	st := tessella.Must(tessella.Open("table.png").Structure())
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
