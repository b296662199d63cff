package fractal

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/klauspost/compress/zstd"
	xdraw "golang.org/x/image/draw"
)

// ExportPNG writes the buffer as a PNG image.
func ExportPNG(w io.Writer, buf *PixelBuffer) error {
	if err := png.Encode(w, buf.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// rawMagic identifies the zstd raw-framebuffer format.
var rawMagic = [4]byte{'F', 'X', 'P', '1'}

// ExportRawZstd writes the buffer as zstd-compressed raw RGBA with a
// small header: 4-byte magic, then width and height as little-endian
// uint32, then width*height packed pixels.
func ExportRawZstd(w io.Writer, buf *PixelBuffer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}

	if _, err := enc.Write(rawMagic[:]); err != nil {
		enc.Close()
		return fmt.Errorf("write raw header: %w", err)
	}
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(buf.Width))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(buf.Height))
	if _, err := enc.Write(dims[:]); err != nil {
		enc.Close()
		return fmt.Errorf("write raw header: %w", err)
	}

	row := make([]byte, buf.Width*4)
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			binary.LittleEndian.PutUint32(row[x*4:], buf.Pix[y*buf.Width+x])
		}
		if _, err := enc.Write(row); err != nil {
			enc.Close()
			return fmt.Errorf("write raw pixels: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush zstd stream: %w", err)
	}
	return nil
}

// ImportRawZstd reads a buffer written by ExportRawZstd.
func ImportRawZstd(r io.Reader) (*PixelBuffer, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer dec.Close()

	var header [12]byte
	if _, err := io.ReadFull(dec, header[:]); err != nil {
		return nil, fmt.Errorf("read raw header: %w", err)
	}
	if [4]byte(header[0:4]) != rawMagic {
		return nil, fmt.Errorf("not a raw framebuffer stream")
	}
	w := int(binary.LittleEndian.Uint32(header[4:8]))
	h := int(binary.LittleEndian.Uint32(header[8:12]))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raw dimensions %dx%d", w, h)
	}

	buf := NewPixelBuffer(w, h)
	row := make([]byte, w*4)
	for y := 0; y < h; y++ {
		if _, err := io.ReadFull(dec, row); err != nil {
			return nil, fmt.Errorf("read raw pixels: %w", err)
		}
		for x := 0; x < w; x++ {
			buf.Pix[y*w+x] = binary.LittleEndian.Uint32(row[x*4:])
		}
	}
	return buf, nil
}

// RenderSupersampled renders the view at factor times the target
// resolution and downscales with a Catmull-Rom filter, trading render
// time for edge quality in exported stills.
func RenderSupersampled(r *Renderer, vs ViewState, w, h, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	big := NewPixelBuffer(w*factor, h*factor)
	r.Render(vs, big)

	img := big.Image()
	if factor == 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

// ExportSupersampledPNG renders at the given supersampling factor and
// writes the downscaled result as PNG.
func ExportSupersampledPNG(w io.Writer, r *Renderer, vs ViewState, width, height, factor int) error {
	img := RenderSupersampled(r, vs, width, height, factor)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
