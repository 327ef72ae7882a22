package split

import (
	"testing"

	"github.com/gridmill/tessella/model"
	"github.com/gridmill/tessella/pixmap"
)

// testBitmap returns an all-background bitmap.
func testBitmap(t *testing.T, w, h int) *pixmap.Bitmap {
	t.Helper()
	b, err := pixmap.New(w, h)
	if err != nil {
		t.Fatalf("Creating %dx%d bitmap: %v", w, h, err)
	}
	return b
}

func drawVLine(b *pixmap.Bitmap, x int) {
	for y := 0; y < b.H; y++ {
		b.SetInk(x, y)
	}
}

func drawHLine(b *pixmap.Bitmap, y int) {
	for x := 0; x < b.W; x++ {
		b.SetInk(x, y)
	}
}

func drawBlock(b *pixmap.Bitmap, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.SetInk(x, y)
		}
	}
}

func TestDecomposeGridLines(t *testing.T) {
	// A 2x2 grid drawn with one vertical and one horizontal line.
	b := testBitmap(t, 30, 30)
	drawVLine(b, 10)
	drawHLine(b, 10)

	boxes, err := Decompose(b, DefaultConfig())
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}

	want := []model.BoundingBox{
		{Left: 0, Top: 0, Right: 10, Bottom: 10},
		{Left: 0, Top: 10, Right: 10, Bottom: 30},
		{Left: 10, Top: 0, Right: 30, Bottom: 10},
		{Left: 10, Top: 10, Right: 30, Bottom: 30},
	}
	if len(boxes) != len(want) {
		t.Fatalf("Expected %d boxes, got %d: %v", len(want), len(boxes), boxes)
	}
	for i, box := range want {
		if boxes[i] != box {
			t.Errorf("Box %d: expected %+v, got %+v", i, box, boxes[i])
		}
	}
}

func TestDecomposeWhitespaceFallback(t *testing.T) {
	// No drawn lines: two text blocks separated by a wide gap.
	b := testBitmap(t, 100, 30)
	drawBlock(b, 10, 8, 31, 22)
	drawBlock(b, 70, 8, 91, 22)

	boxes, err := Decompose(b, DefaultConfig())
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}

	want := []model.BoundingBox{
		{Left: 0, Top: 0, Right: 50, Bottom: 30},
		{Left: 50, Top: 0, Right: 100, Bottom: 30},
	}
	if len(boxes) != len(want) {
		t.Fatalf("Expected %d boxes, got %d: %v", len(want), len(boxes), boxes)
	}
	for i, box := range want {
		if boxes[i] != box {
			t.Errorf("Box %d: expected %+v, got %+v", i, box, boxes[i])
		}
	}
}

func TestDecomposeSingleCell(t *testing.T) {
	b := testBitmap(t, 20, 20)
	boxes, err := Decompose(b, DefaultConfig())
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("Expected 1 box for an unsplittable image, got %v", boxes)
	}
	whole := model.BoundingBox{Left: 0, Top: 0, Right: 20, Bottom: 20}
	if boxes[0] != whole {
		t.Errorf("Expected whole-image box %+v, got %+v", whole, boxes[0])
	}
}

func TestDecomposeBoxesTile(t *testing.T) {
	b := testBitmap(t, 60, 60)
	drawVLine(b, 20)
	drawVLine(b, 40)
	drawHLine(b, 30)

	boxes, err := Decompose(b, DefaultConfig())
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	if len(boxes) != 6 {
		t.Fatalf("Expected 6 boxes, got %d: %v", len(boxes), boxes)
	}

	// Boxes must be pairwise disjoint and cover the image exactly.
	area := 0
	for i, a := range boxes {
		area += a.Area()
		for _, b2 := range boxes[i+1:] {
			if a.Intersects(b2) {
				t.Errorf("Boxes %+v and %+v overlap", a, b2)
			}
		}
	}
	if area != 60*60 {
		t.Errorf("Expected boxes to cover the full image area %d, got %d", 60*60, area)
	}
}

func TestDecomposeInvalidInput(t *testing.T) {
	if _, err := Decompose(nil, DefaultConfig()); err == nil {
		t.Error("Expected error for nil bitmap")
	}
	bad := &pixmap.Bitmap{W: 10, H: 10, Pix: make([]uint8, 5)}
	if _, err := Decompose(bad, DefaultConfig()); err == nil {
		t.Error("Expected error for short pixel buffer")
	}
}
