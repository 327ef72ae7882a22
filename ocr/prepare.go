package ocr

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/text/unicode/norm"

	"github.com/gridmill/tessella/model"
)

// DefaultScaleFactor is the upscale applied to cell crops before recognition.
// Table cells are usually rendered at small font sizes; Tesseract does much
// better on text around 30px tall than on the 8px it gets from a raw crop.
const DefaultScaleFactor = 4

// Options controls how cell images are prepared and recognized.
type Options struct {
	// ScaleFactor multiplies the cell crop's dimensions before recognition.
	ScaleFactor int
	// Language is the Tesseract language, or a "+" separated list ("eng+fra").
	Language string
}

// DefaultOptions returns recognition options suitable for English tables.
func DefaultOptions() Options {
	return Options{
		ScaleFactor: DefaultScaleFactor,
		Language:    "eng",
	}
}

// PrepareCells crops each bounding box out of src and upscales the crop by
// opts.ScaleFactor. The result has one image per box, in box order.
func PrepareCells(src image.Image, boxes []model.BoundingBox, opts Options) ([]image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("prepare: nil source image")
	}
	scale := opts.ScaleFactor
	if scale < 1 {
		scale = 1
	}

	min := src.Bounds().Min
	cells := make([]image.Image, 0, len(boxes))
	for _, box := range boxes {
		if box.Width() <= 0 || box.Height() <= 0 {
			return nil, fmt.Errorf("prepare: empty bounding box %+v", box)
		}
		rect := image.Rect(box.Left, box.Top, box.Right, box.Bottom).Add(min)
		crop := imaging.Crop(src, rect)
		if scale > 1 {
			crop = imaging.Resize(crop, box.Width()*scale, box.Height()*scale, imaging.Lanczos)
		}
		cells = append(cells, crop)
	}
	return cells, nil
}

// NormalizeText canonicalizes recognized text: Unicode NFC normalization
// plus leading/trailing whitespace removal. Tesseract output for the same
// glyphs can vary between composed and decomposed forms.
func NormalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
