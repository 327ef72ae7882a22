// Package viz draws recognized cell boundaries onto the source image for
// visual inspection of the decomposition.
package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gridmill/tessella/model"
)

const fillAlpha = 48

// Overlay draws each bounding box onto a copy of src. Every box gets a
// distinct hue, evenly stepped around the color wheel, with a solid border
// and a translucent fill, so adjacent cells are easy to tell apart.
func Overlay(src image.Image, boxes []model.BoundingBox) (*image.RGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("overlay: nil source image")
	}

	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, src, bounds.Min, draw.Src)

	for i, box := range boxes {
		hue := float64(i*360) / float64(len(boxes))
		border := toNRGBA(colorful.Hsv(hue, 0.9, 0.9), 255)
		fill := toNRGBA(colorful.Hsv(hue, 0.9, 0.9), fillAlpha)

		rect := image.Rect(box.Left, box.Top, box.Right, box.Bottom).Add(bounds.Min)
		draw.Draw(out, rect, image.NewUniform(fill), image.Point{}, draw.Over)
		drawBorder(out, rect, border)
	}

	return out, nil
}

// EncodePNG writes the overlay image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding overlay: %w", err)
	}
	return nil
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func drawBorder(img *image.RGBA, rect image.Rectangle, c color.Color) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.Set(x, rect.Min.Y, c)
		img.Set(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.Set(rect.Min.X, y, c)
		img.Set(rect.Max.X-1, y, c)
	}
}
