package model

// BoundingBox is a rectangular pixel region in the source image's coordinate
// space. The region is half-open: it covers columns [Left, Right) and rows
// [Top, Bottom). X grows to the right (image columns), Y grows downward
// (image rows).
type BoundingBox struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewBoundingBox creates a bounding box from its four edges.
func NewBoundingBox(left, top, right, bottom int) BoundingBox {
	return BoundingBox{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the number of pixel columns covered by the box.
func (b BoundingBox) Width() int {
	return b.Right - b.Left
}

// Height returns the number of pixel rows covered by the box.
func (b BoundingBox) Height() int {
	return b.Bottom - b.Top
}

// Area returns the number of pixels covered by the box.
func (b BoundingBox) Area() int {
	return b.Width() * b.Height()
}

// Coord returns one of the four edges by index: 0=Left, 1=Top, 2=Right,
// 3=Bottom. It exists so that passes operating on each coordinate column
// independently (unification, grid ranking) can loop over the edges.
func (b BoundingBox) Coord(i int) int {
	switch i {
	case 0:
		return b.Left
	case 1:
		return b.Top
	case 2:
		return b.Right
	default:
		return b.Bottom
	}
}

// WithCoord returns a copy of the box with the edge at index i replaced.
// Indices match Coord.
func (b BoundingBox) WithCoord(i, v int) BoundingBox {
	switch i {
	case 0:
		b.Left = v
	case 1:
		b.Top = v
	case 2:
		b.Right = v
	default:
		b.Bottom = v
	}
	return b
}

// Intersects reports whether two boxes share at least one pixel.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Left < other.Right && other.Left < b.Right &&
		b.Top < other.Bottom && other.Top < b.Bottom
}

// GridCoord is a cell's position in the deduplicated logical grid. All four
// values are zero-based ranks: Col/ColEnd are the ranks of the box's Left and
// Right edges among all distinct Left and Right values, Row/RowEnd likewise
// for Top and Bottom. A cell occupying a single grid position has Col==ColEnd
// and Row==RowEnd; anything else is a merged cell spanning the inclusive
// range of positions.
type GridCoord struct {
	Col    int
	Row    int
	ColEnd int
	RowEnd int
}

// ColSpan returns the number of grid columns the cell covers.
func (g GridCoord) ColSpan() int {
	return g.ColEnd - g.Col + 1
}

// RowSpan returns the number of grid rows the cell covers.
func (g GridCoord) RowSpan() int {
	return g.RowEnd - g.Row + 1
}

// IsMerged reports whether the cell spans more than one grid position.
func (g GridCoord) IsMerged() bool {
	return g.Col != g.ColEnd || g.Row != g.RowEnd
}
