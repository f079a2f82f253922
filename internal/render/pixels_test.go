package render

import (
	"image/color"
	"slices"
	"testing"

	"mad-sand/internal/sand"
)

func TestFillRGBA(t *testing.T) {
	g := sand.NewGrid(2, 1)
	g.Set(1, 0, sand.Color{R: 10, G: 20, B: 30})
	buf := make([]byte, 8)
	if !FillRGBA(buf, g, color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatal("buffer is large enough")
	}
	want := []byte{1, 2, 3, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v want %v", buf, want)
	}
}

func TestFillRGBAShortBuffer(t *testing.T) {
	g := sand.NewGrid(2, 2)
	buf := make([]byte, 4)
	if FillRGBA(buf, g, Background) {
		t.Fatal("short buffer must be rejected")
	}
	if !slices.Equal(buf, []byte{0, 0, 0, 0}) {
		t.Fatal("short buffer must be left untouched")
	}
}
