package pixmap

import (
	"errors"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for zero width, got %v", err)
	}
	if _, err := New(10, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for negative height, got %v", err)
	}

	b, err := New(4, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if b.At(x, y) != 1 {
				t.Fatalf("Expected fresh bitmap to be all background, pixel (%d,%d) is %d", x, y, b.At(x, y))
			}
		}
	}
}

func TestFromPixelsValidation(t *testing.T) {
	if _, err := FromPixels(3, 3, make([]uint8, 8)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for short buffer, got %v", err)
	}
	if _, err := FromPixels(3, 3, make([]uint8, 9)); err != nil {
		t.Errorf("Expected valid buffer to be accepted, got %v", err)
	}
}

func TestColumnAndRowSums(t *testing.T) {
	b, err := New(5, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Ink column at x=2 and one extra ink pixel at (0, 1).
	for y := 0; y < 4; y++ {
		b.SetInk(2, y)
	}
	b.SetInk(0, 1)

	colSums := b.ColumnSums(b.Bounds())
	wantCols := []int{3, 4, 0, 4, 4}
	for i, want := range wantCols {
		if colSums[i] != want {
			t.Errorf("Column %d: expected sum %d, got %d", i, want, colSums[i])
		}
	}

	rowSums := b.RowSums(b.Bounds())
	wantRows := []int{4, 3, 4, 4}
	for i, want := range wantRows {
		if rowSums[i] != want {
			t.Errorf("Row %d: expected sum %d, got %d", i, want, rowSums[i])
		}
	}
}

func TestSumsOnSubRect(t *testing.T) {
	b, err := New(6, 6)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b.SetInk(0, 0) // outside the sub-rectangle
	b.SetInk(3, 3) // inside

	r := Rect{X0: 2, Y0: 2, X1: 5, Y1: 5}
	colSums := b.ColumnSums(r)
	wantCols := []int{3, 2, 3}
	for i, want := range wantCols {
		if colSums[i] != want {
			t.Errorf("Column %d: expected sum %d, got %d", i, want, colSums[i])
		}
	}
	rowSums := b.RowSums(r)
	wantRows := []int{3, 2, 3}
	for i, want := range wantRows {
		if rowSums[i] != want {
			t.Errorf("Row %d: expected sum %d, got %d", i, want, rowSums[i])
		}
	}
}
