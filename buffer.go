package fractal

import (
	"image"
	"image/color"
)

// PixelBuffer is a caller-owned render target: width*height pixels in
// row-major order, each packed 0xAABBGGRR.
type PixelBuffer struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewPixelBuffer creates a buffer of the given dimensions, cleared to
// opaque black. Non-positive dimensions yield an empty buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(w, h)
	return b
}

// Resize reallocates the buffer for the new dimensions and clears
// every pixel to opaque black. Non-positive dimensions empty the
// buffer.
func (b *PixelBuffer) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		b.Width, b.Height, b.Pix = 0, 0, nil
		return
	}
	b.Width, b.Height = w, h
	b.Pix = make([]uint32, w*h)
	for i := range b.Pix {
		b.Pix[i] = 0xFF000000
	}
}

// At returns the pixel at (x, y). Out-of-range coordinates return 0.
func (b *PixelBuffer) At(x, y int) uint32 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// RGBA unpacks a packed pixel into a color.RGBA.
func RGBA(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// Image copies the buffer into a standard *image.RGBA.
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pix {
		o := i * 4
		img.Pix[o+0] = uint8(p)
		img.Pix[o+1] = uint8(p >> 8)
		img.Pix[o+2] = uint8(p >> 16)
		img.Pix[o+3] = uint8(p >> 24)
	}
	return img
}
