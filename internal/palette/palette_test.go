package palette

import "testing"

// =============================================================================
// LUT Construction Tests
// =============================================================================

func TestBuild_FirstAndLastStops(t *testing.T) {
	tb := Build()

	// Grayscale runs black to white.
	if got := tb.At(0, 0); got != 0xFF000000 {
		t.Errorf("grayscale[0] = %#x, want opaque black", got)
	}
	if got := tb.At(0, LUTSize-1); got != 0xFFFFFFFF {
		t.Errorf("grayscale[last] = %#x, want opaque white", got)
	}

	// Classic Ultra is cyclic: both ends are the same deep blue,
	// 0xAABBGGRR with r=0, g=7, b=100.
	want := uint32(0xFF000000 | 100<<16 | 7<<8)
	if got := tb.At(7, 0); got != want {
		t.Errorf("classic ultra[0] = %#x, want %#x", got, want)
	}
	if got := tb.At(7, LUTSize-1); got != want {
		t.Errorf("classic ultra[last] = %#x, want %#x", got, want)
	}
}

func TestBuild_OpaqueAlpha(t *testing.T) {
	tb := Build()
	for pal := 0; pal < Count; pal++ {
		for i := 0; i < LUTSize; i += 37 {
			if tb.At(pal, i)>>24 != 0xFF {
				t.Fatalf("palette %d entry %d has alpha %#x", pal, i, tb.At(pal, i)>>24)
			}
		}
	}
}

func TestBuild_GrayscaleMonotone(t *testing.T) {
	tb := Build()
	prev := uint32(0)
	for i := 0; i < LUTSize; i++ {
		r := tb.At(0, i) & 0xFF
		if r < prev {
			t.Fatalf("grayscale red channel decreases at %d: %d then %d", i, prev, r)
		}
		prev = r
	}
}

func TestBuild_ZebraBands(t *testing.T) {
	tb := Build()
	band := LUTSize / 8
	for i := 0; i < LUTSize; i++ {
		want := uint32(0xFF000000)
		if (i/band)%2 == 1 {
			want = 0xFFFFFFFF
		}
		if got := tb.At(6, i); got != want {
			t.Fatalf("zebra[%d] = %#x, want %#x", i, got, want)
		}
	}
}

// =============================================================================
// Color Mapping Tests
// =============================================================================

func TestColor_Interior(t *testing.T) {
	tb := Build()
	for pal := 0; pal < Count; pal++ {
		if got := tb.Color(256, 256, pal, 0); got != Interior {
			t.Errorf("palette %d interior = %#x, want opaque black", pal, got)
		}
		if got := tb.Color(300, 256, pal, 500); got != Interior {
			t.Errorf("palette %d beyond-budget = %#x, want opaque black", pal, got)
		}
	}
}

func TestColor_IndexScaling(t *testing.T) {
	tb := Build()
	// smooth 1.0 lands at LUT index 40 before offset.
	if got, want := tb.Color(1.0, 256, 0, 0), tb.At(0, 40); got != want {
		t.Errorf("Color(1.0) = %#x, want lut[40] = %#x", got, want)
	}
	if got, want := tb.Color(1.0, 256, 0, 10), tb.At(0, 50); got != want {
		t.Errorf("Color(1.0, offset 10) = %#x, want lut[50] = %#x", got, want)
	}
}

func TestColor_IndexWraps(t *testing.T) {
	tb := Build()
	// 30 * 40 = 1200 wraps to 176.
	if got, want := tb.Color(30, 256, 7, 0), tb.At(7, 1200%LUTSize); got != want {
		t.Errorf("wrapped Color = %#x, want %#x", got, want)
	}
}

func TestColor_NegativeOffsetWraps(t *testing.T) {
	tb := Build()
	if got, want := tb.Color(0, 256, 7, -10), tb.At(7, LUTSize-10); got != want {
		t.Errorf("negative offset Color = %#x, want %#x", got, want)
	}
}

// =============================================================================
// Lyapunov Mapping Tests
// =============================================================================

func TestLyapunov_Scaling(t *testing.T) {
	tb := Build()
	// lambda 0.5 lands at index 100.
	if got, want := tb.Lyapunov(0.5, 2, 0), tb.At(2, 100); got != want {
		t.Errorf("Lyapunov(0.5) = %#x, want lut[100] = %#x", got, want)
	}
}

func TestLyapunov_NegativeWraps(t *testing.T) {
	tb := Build()
	// lambda -0.5 gives raw index -100, wrapping to 924.
	if got, want := tb.Lyapunov(-0.5, 2, 0), tb.At(2, LUTSize-100); got != want {
		t.Errorf("Lyapunov(-0.5) = %#x, want lut[%d] = %#x", got, LUTSize-100, want)
	}
}

func TestLyapunov_NoInteriorCutoff(t *testing.T) {
	tb := Build()
	// Large positive lambdas still map into the LUT.
	got := tb.Lyapunov(1000, 0, 0)
	if got>>24 != 0xFF {
		t.Errorf("Lyapunov(1000) = %#x, want an opaque LUT entry", got)
	}
}

func TestNames(t *testing.T) {
	if Names[0] != "Grayscale" || Names[6] != "Zebra" || Names[7] != "Classic Ultra" {
		t.Errorf("unexpected palette names: %v", Names)
	}
}
