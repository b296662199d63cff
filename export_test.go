package fractal

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

// =============================================================================
// PNG Export Tests
// =============================================================================

func TestExportPNG_Roundtrip(t *testing.T) {
	buf := NewPixelBuffer(8, 4)
	buf.Pix[0] = 0xFF102030

	var out bytes.Buffer
	if err := ExportPNG(&out, buf); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("decoded bounds = %v", img.Bounds())
	}
	got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	want := color.RGBA{R: 0x30, G: 0x20, B: 0x10, A: 0xFF}
	if got != want {
		t.Errorf("decoded pixel (0,0) = %+v, want %+v", got, want)
	}
}

// =============================================================================
// Raw Zstd Export Tests
// =============================================================================

func TestExportRawZstd_Roundtrip(t *testing.T) {
	src := NewPixelBuffer(33, 7)
	for i := range src.Pix {
		src.Pix[i] = 0xFF000000 | (uint32(i)*2654435761)&0x00FFFFFF
	}

	var out bytes.Buffer
	if err := ExportRawZstd(&out, src); err != nil {
		t.Fatalf("ExportRawZstd: %v", err)
	}

	got, err := ImportRawZstd(&out)
	if err != nil {
		t.Fatalf("ImportRawZstd: %v", err)
	}
	if got.Width != src.Width || got.Height != src.Height {
		t.Fatalf("roundtrip dims = %dx%d, want %dx%d", got.Width, got.Height, src.Width, src.Height)
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("pixel %d = %#x, want %#x", i, got.Pix[i], src.Pix[i])
		}
	}
}

func TestImportRawZstd_RejectsGarbage(t *testing.T) {
	if _, err := ImportRawZstd(bytes.NewReader([]byte("not zstd at all"))); err == nil {
		t.Error("expected an error for a non-zstd stream")
	}
}

// =============================================================================
// Supersampled Export Tests
// =============================================================================

func TestRenderSupersampled_FactorOne(t *testing.T) {
	r := NewRenderer(WithThreads(2))
	defer r.Close()

	img := RenderSupersampled(r, DefaultView(), 64, 48, 1)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("bounds = %v, want 64x48", img.Bounds())
	}
}

func TestExportSupersampledPNG(t *testing.T) {
	r := NewRenderer(WithThreads(2))
	defer r.Close()

	var out bytes.Buffer
	if err := ExportSupersampledPNG(&out, r, DefaultView(), 40, 30, 2); err != nil {
		t.Fatalf("ExportSupersampledPNG: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("bounds = %v, want 40x30", img.Bounds())
	}
}
