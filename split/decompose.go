package split

import (
	"fmt"

	"github.com/gridmill/tessella/model"
	"github.com/gridmill/tessella/pixmap"
)

// Decompose recursively partitions a binarized table image into terminal cell
// bounding boxes, in original-image coordinates. Drawn grid lines are tried
// first; whitespace gaps are the fallback; a sub-image neither splitter can
// divide is a terminal leaf and yields exactly one box. An image with no
// split anywhere is a single cell, not an error.
//
// The returned order is deterministic: depth-first, columns left to right,
// rows top to bottom.
func Decompose(b *pixmap.Bitmap, cfg Config) ([]model.BoundingBox, error) {
	if b == nil || b.W <= 0 || b.H <= 0 {
		return nil, fmt.Errorf("split: %w", pixmap.ErrInvalidInput)
	}
	if len(b.Pix) != b.W*b.H {
		return nil, fmt.Errorf("split: %w: buffer length %d for %dx%d",
			pixmap.ErrInvalidInput, len(b.Pix), b.W, b.H)
	}
	return decomposeRect(b, b.Bounds(), cfg), nil
}

// decomposeRect handles one sub-image. The rectangle is expressed in
// original-image coordinates, so leaf boxes need no shifting. Every recursion
// operates on a strictly smaller rectangle: split points are strictly
// interior, which bounds the depth by the image dimensions.
func decomposeRect(b *pixmap.Bitmap, r pixmap.Rect, cfg Config) []model.BoundingBox {
	colSums := b.ColumnSums(r)
	rowSums := b.RowSums(r)

	colSpans, rowSpans := cfg.LineSpans(colSums, rowSums)
	if colSpans == nil && rowSpans == nil {
		colSpans, rowSpans = cfg.WhitespaceSpans(colSums, rowSums, r.Dx(), r.Dy())
	}

	switch {
	case len(colSpans) > 0:
		return descend(b, r, cfg, colSpans, true)
	case len(rowSpans) > 0:
		return descend(b, r, cfg, rowSpans, false)
	default:
		return []model.BoundingBox{{Left: r.X0, Top: r.Y0, Right: r.X1, Bottom: r.Y1}}
	}
}

// descend slices the rectangle at the given spans along one axis, recurses
// into each slice and splices the children's boxes directly into one flat
// slice owned by the caller.
func descend(b *pixmap.Bitmap, r pixmap.Rect, cfg Config, spans []Span, columns bool) []model.BoundingBox {
	var boxes []model.BoundingBox
	for _, s := range spans {
		child := r
		if columns {
			child.X0 = r.X0 + s.Start
			child.X1 = r.X0 + s.End
		} else {
			child.Y0 = r.Y0 + s.Start
			child.Y1 = r.Y0 + s.End
		}
		boxes = append(boxes, decomposeRect(b, child, cfg)...)
	}
	return boxes
}
