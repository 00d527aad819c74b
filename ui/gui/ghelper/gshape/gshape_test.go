package gshape

import (
	"candyboard/src/base"
	"image/color"
	"testing"
)

var (
	light = color.RGBA{0xff, 0xff, 0xff, 0xff}
	dark  = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func TestRenderBoardColors(t *testing.T) {
	t.Parallel()
	img := RenderBoard(80, light, dark)
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 80 {
		t.Fatalf("bounds = %v", b)
	}
	tests := []struct {
		name string
		x, y int
		dark bool
	}{
		{"a1", 5, 75, true},
		{"b1", 15, 75, false},
		{"a8", 5, 5, false},
		{"h8", 75, 5, true},
		{"h1", 75, 75, false},
	}
	for _, tt := range tests {
		r, _, _, _ := img.At(tt.x, tt.y).RGBA()
		if isDark := r == 0; isDark != tt.dark {
			t.Errorf("%s dark = %v, want %v", tt.name, isDark, tt.dark)
		}
	}
}

func TestRenderDot(t *testing.T) {
	t.Parallel()
	img := RenderDot(5, dark)
	b := img.Bounds()
	if b.Dx() != 12 {
		t.Fatalf("dot size = %v", b)
	}
	if _, _, _, a := img.At(6, 6).RGBA(); a == 0 {
		t.Errorf("dot center is transparent")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("dot corner is painted")
	}
}

func TestRenderRing(t *testing.T) {
	t.Parallel()
	img := RenderRing(40, 4, dark)
	if _, _, _, a := img.At(20, 20).RGBA(); a != 0 {
		t.Errorf("ring center is painted")
	}
	if _, _, _, a := img.At(20, 2).RGBA(); a == 0 {
		t.Errorf("ring edge is transparent")
	}
}

func TestRenderPiece(t *testing.T) {
	t.Parallel()
	tests := []struct {
		piece base.Piece
		fillR uint32
	}{
		{base.Piece{Type: base.Queen, Color: base.White}, 0xffff},
		{base.Piece{Type: base.Knight, Color: base.Black}, 0},
	}
	for _, tt := range tests {
		img := RenderPiece(64, tt.piece)
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
			t.Fatalf("%v bounds = %v", tt.piece, b)
		}
		// inside the disc, left of the letter
		if r, _, _, _ := img.At(16, 32).RGBA(); r != tt.fillR {
			t.Errorf("%v fill red = %#x, want %#x", tt.piece, r, tt.fillR)
		}
		if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
			t.Errorf("%v corner is painted", tt.piece)
		}
	}
}

func TestRenderRoundedRect(t *testing.T) {
	t.Parallel()
	fill := color.RGBA{0x10, 0x20, 0x30, 0xff}
	edge := color.RGBA{0xf0, 0x00, 0x00, 0xff}
	img := RenderRoundedRect(120, 60, 12, fill, edge, 2)
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 60 {
		t.Fatalf("bounds = %v", b)
	}
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"center", 60, 30, fill},
		{"left edge", 0, 30, edge},
		{"corner outside the radius", 0, 0, color.RGBA{}},
	}
	for _, tt := range tests {
		r, g, b, a := img.At(tt.x, tt.y).RGBA()
		got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
		if tt.want == (color.RGBA{}) {
			if got.A != 0 {
				t.Errorf("%s = %v, want transparent", tt.name, got)
			}
			continue
		}
		if d := int(got.R) - int(tt.want.R); d < -8 || d > 8 || got.A == 0 {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}

	// degenerate sizes still give an image
	if b := RenderRoundedRect(0, -3, 4, fill, edge, 1).Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("degenerate bounds = %v", b)
	}
}
