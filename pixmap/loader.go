package pixmap

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/anthonynsimon/bild/segment"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultBinarizeThreshold is the grayscale level separating ink from
// background. Software-rendered tables have near-black ink on near-white
// background, so the midpoint works for typical input.
const DefaultBinarizeThreshold uint8 = 128

// Load decodes a table image from disk. PNG, JPEG, GIF, BMP, TIFF and WebP
// are supported.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes a table image from a reader.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Binarize converts an image to a Bitmap using a fixed grayscale threshold:
// pixels at or above the threshold become background (1), everything darker
// becomes ink (0).
func Binarize(img image.Image, threshold uint8) (*Bitmap, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, w, h)
	}

	gray := segment.Threshold(img, threshold)

	pix := make([]uint8, w*h)
	gb := gray.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gray.GrayAt(gb.Min.X+x, gb.Min.Y+y).Y != 0 {
				pix[y*w+x] = 1
			}
		}
	}
	return FromPixels(w, h, pix)
}
