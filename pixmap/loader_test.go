package pixmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG renders a white image with a black vertical line at x=4.
func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x == 4 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeAndBinarize(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	b, err := Binarize(img, DefaultBinarizeThreshold)
	if err != nil {
		t.Fatalf("Binarize failed: %v", err)
	}
	if b.W != 10 || b.H != 8 {
		t.Fatalf("Expected 10x8 bitmap, got %dx%d", b.W, b.H)
	}

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			want := uint8(1)
			if x == 4 {
				want = 0
			}
			if b.At(x, y) != want {
				t.Errorf("Pixel (%d,%d): expected %d, got %d", x, y, want, b.At(x, y))
			}
		}
	}
}

func TestBinarizeNilImage(t *testing.T) {
	if _, err := Binarize(nil, DefaultBinarizeThreshold); err == nil {
		t.Error("Expected error for nil image")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Expected error for undecodable data")
	}
}
