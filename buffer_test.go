package fractal

import (
	"image/color"
	"testing"
)

// =============================================================================
// PixelBuffer Tests
// =============================================================================

func TestNewPixelBuffer_ClearedToBlack(t *testing.T) {
	buf := NewPixelBuffer(16, 8)
	if buf.Width != 16 || buf.Height != 8 || len(buf.Pix) != 128 {
		t.Fatalf("buffer = %dx%d with %d pixels", buf.Width, buf.Height, len(buf.Pix))
	}
	for i, p := range buf.Pix {
		if p != 0xFF000000 {
			t.Fatalf("pixel %d = %#x, want opaque black", i, p)
		}
	}
}

func TestPixelBuffer_ResizeClears(t *testing.T) {
	buf := NewPixelBuffer(4, 4)
	for i := range buf.Pix {
		buf.Pix[i] = 0xFF123456
	}
	buf.Resize(8, 2)
	if buf.Width != 8 || buf.Height != 2 {
		t.Fatalf("resized to %dx%d", buf.Width, buf.Height)
	}
	for i, p := range buf.Pix {
		if p != 0xFF000000 {
			t.Fatalf("pixel %d = %#x after resize, want opaque black", i, p)
		}
	}
}

func TestPixelBuffer_ResizeNonPositive(t *testing.T) {
	buf := NewPixelBuffer(4, 4)
	buf.Resize(0, 10)
	if buf.Width != 0 || buf.Height != 0 || buf.Pix != nil {
		t.Errorf("buffer not emptied: %dx%d, %d pixels", buf.Width, buf.Height, len(buf.Pix))
	}
}

func TestPixelBuffer_At(t *testing.T) {
	buf := NewPixelBuffer(3, 2)
	buf.Pix[1*3+2] = 0xFFAABBCC
	if got := buf.At(2, 1); got != 0xFFAABBCC {
		t.Errorf("At(2, 1) = %#x", got)
	}
	for _, pt := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		if got := buf.At(pt[0], pt[1]); got != 0 {
			t.Errorf("At(%d, %d) = %#x, want 0", pt[0], pt[1], got)
		}
	}
}

func TestRGBA_Unpack(t *testing.T) {
	// 0xAABBGGRR: alpha FF, blue 10, green 20, red 30.
	got := RGBA(0xFF102030)
	want := color.RGBA{R: 0x30, G: 0x20, B: 0x10, A: 0xFF}
	if got != want {
		t.Errorf("RGBA = %+v, want %+v", got, want)
	}
}

func TestPixelBuffer_Image(t *testing.T) {
	buf := NewPixelBuffer(2, 1)
	buf.Pix[0] = 0xFF102030
	buf.Pix[1] = 0xFFFFFFFF

	img := buf.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 0x30, G: 0x20, B: 0x10, A: 0xFF}) {
		t.Errorf("image pixel (0,0) = %+v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("image pixel (1,0) = %+v", got)
	}
}
