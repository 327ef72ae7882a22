package pixmap

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a pixel buffer cannot be interpreted as a
// two-dimensional image: zero or negative dimensions, or a backing slice
// whose length does not match width*height.
var ErrInvalidInput = errors.New("pixmap: invalid input image")

// Bitmap is a binarized table image: a W×H row-major buffer of {0, 1}
// values where 1 is background (paper) and 0 is ink (drawn lines and text).
// The polarity is fixed by the binarization threshold at load time, never
// inferred from content.
type Bitmap struct {
	W, H int
	Pix  []uint8
}

// New creates a background-filled bitmap of the given size.
func New(w, h int) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, w, h)
	}
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = 1
	}
	return &Bitmap{W: w, H: h, Pix: pix}, nil
}

// FromPixels wraps an existing row-major buffer. The buffer is used directly,
// not copied; values other than 0 are treated as background.
func FromPixels(w, h int, pix []uint8) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, w, h)
	}
	if len(pix) != w*h {
		return nil, fmt.Errorf("%w: buffer length %d for %dx%d", ErrInvalidInput, len(pix), w, h)
	}
	return &Bitmap{W: w, H: h, Pix: pix}, nil
}

// At returns the value at pixel (x, y).
func (b *Bitmap) At(x, y int) uint8 {
	return b.Pix[y*b.W+x]
}

// Set assigns the value at pixel (x, y). Non-zero values are background.
func (b *Bitmap) Set(x, y int, v uint8) {
	b.Pix[y*b.W+x] = v
}

// SetInk marks pixel (x, y) as ink. Convenience for building test fixtures.
func (b *Bitmap) SetInk(x, y int) {
	b.Pix[y*b.W+x] = 0
}

// Bounds returns the rectangle covering the whole bitmap.
func (b *Bitmap) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: b.W, Y1: b.H}
}

// Rect is a half-open sub-rectangle [X0,X1)×[Y0,Y1) of a bitmap, expressed
// in the bitmap's own coordinates.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Dx returns the rectangle's width.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the rectangle's height.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// ColumnSums returns, for each column of r, the count of background pixels
// in that column within r. Index 0 corresponds to column r.X0.
func (b *Bitmap) ColumnSums(r Rect) []int {
	sums := make([]int, r.Dx())
	for y := r.Y0; y < r.Y1; y++ {
		row := b.Pix[y*b.W : y*b.W+b.W]
		for x := r.X0; x < r.X1; x++ {
			if row[x] != 0 {
				sums[x-r.X0]++
			}
		}
	}
	return sums
}

// RowSums returns, for each row of r, the count of background pixels in that
// row within r. Index 0 corresponds to row r.Y0.
func (b *Bitmap) RowSums(r Rect) []int {
	sums := make([]int, r.Dy())
	for y := r.Y0; y < r.Y1; y++ {
		row := b.Pix[y*b.W : y*b.W+b.W]
		n := 0
		for x := r.X0; x < r.X1; x++ {
			if row[x] != 0 {
				n++
			}
		}
		sums[y-r.Y0] = n
	}
	return sums
}
