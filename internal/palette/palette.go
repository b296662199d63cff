// Package palette builds the color lookup tables that map smooth
// iteration counts and Lyapunov exponents to pixels.
//
// Each palette is a 1024-entry LUT interpolated from a short list of
// color stops. Pixels are packed 0xAABBGGRR with alpha always 0xFF,
// matching the byte order the display surface expects. Interior points
// are always opaque black regardless of palette.
package palette

import "math"

const (
	// Count is the number of built-in palettes.
	Count = 8
	// LUTSize is the number of entries per palette table.
	LUTSize = 1024
)

// Interior is the pixel used for points that never escape.
const Interior = 0xFF000000

// smoothScale sets one full palette cycle every 25.6 smooth units.
const smoothScale = 40.0

// LyapScale maps Lyapunov exponents onto LUT indices.
const LyapScale = 200.0

// Names lists the palettes in selection order.
var Names = [Count]string{
	"Grayscale",
	"Fire",
	"Ice",
	"Electric",
	"Sunset",
	"Forest",
	"Zebra",
	"Classic Ultra",
}

// stop anchors a color at position t in [0, 1].
type stop struct {
	t       float64
	r, g, b uint8
}

// Tables holds the built LUTs. Build them once and share; lookups are
// read-only and safe for concurrent use.
type Tables struct {
	lut [Count][LUTSize]uint32
}

// Build constructs the LUTs for all palettes.
func Build() *Tables {
	t := &Tables{}
	t.buildStops(0, []stop{
		{0.0, 0, 0, 0},
		{1.0, 255, 255, 255},
	})
	// Fire: black, dark red, red, orange, yellow, white.
	t.buildStops(1, []stop{
		{0.000, 0, 0, 0},
		{0.250, 128, 0, 0},
		{0.500, 255, 0, 0},
		{0.750, 255, 128, 0},
		{0.875, 255, 255, 0},
		{1.000, 255, 255, 255},
	})
	// Ice: black, dark blue, blue, cyan, white.
	t.buildStops(2, []stop{
		{0.000, 0, 0, 0},
		{0.250, 0, 0, 128},
		{0.500, 0, 64, 255},
		{0.750, 0, 200, 255},
		{1.000, 255, 255, 255},
	})
	// Electric: black, dark purple, blue, cyan, white.
	t.buildStops(3, []stop{
		{0.000, 0, 0, 0},
		{0.250, 64, 0, 128},
		{0.500, 0, 64, 255},
		{0.750, 0, 200, 255},
		{1.000, 255, 255, 255},
	})
	// Sunset: black, deep red, orange, yellow, pale yellow.
	t.buildStops(4, []stop{
		{0.000, 0, 0, 0},
		{0.300, 128, 0, 32},
		{0.550, 255, 64, 0},
		{0.800, 255, 200, 0},
		{1.000, 255, 255, 180},
	})
	// Forest: black, dark green, green, lime, pale green.
	t.buildStops(5, []stop{
		{0.000, 0, 0, 0},
		{0.250, 0, 64, 0},
		{0.500, 0, 160, 0},
		{0.750, 100, 220, 0},
		{1.000, 200, 255, 180},
	})
	t.buildZebra(6)
	// Classic Ultra: cyclic blue-gold gradient.
	t.buildStops(7, []stop{
		{0.0000, 0, 7, 100},
		{0.1600, 32, 107, 203},
		{0.4200, 237, 255, 255},
		{0.6425, 255, 170, 0},
		{0.8575, 0, 2, 0},
		{1.0000, 0, 7, 100},
	})
	return t
}

// buildStops fills a LUT by piecewise-linear interpolation between
// color stops.
func (tb *Tables) buildStops(pal int, stops []stop) {
	n := len(stops)
	for i := 0; i < LUTSize; i++ {
		t := float64(i) / float64(LUTSize-1)

		seg := n - 2
		for s := 0; s < n-1; s++ {
			if t <= stops[s+1].t {
				seg = s
				break
			}
		}
		a, b := stops[seg], stops[seg+1]
		span := b.t - a.t
		f := 0.0
		if span > 0 {
			f = (t - a.t) / span
		}
		cf := math.Max(0, math.Min(1, f))

		r := uint8(float64(a.r) + cf*(float64(b.r)-float64(a.r)))
		g := uint8(float64(a.g) + cf*(float64(b.g)-float64(a.g)))
		bl := uint8(float64(a.b) + cf*(float64(b.b)-float64(a.b)))
		tb.lut[pal][i] = 0xFF000000 | uint32(bl)<<16 | uint32(g)<<8 | uint32(r)
	}
}

// buildZebra fills a LUT with 8 alternating black and white bands.
func (tb *Tables) buildZebra(pal int) {
	band := LUTSize / 8
	for i := 0; i < LUTSize; i++ {
		if (i/band)%2 == 0 {
			tb.lut[pal][i] = Interior
		} else {
			tb.lut[pal][i] = 0xFFFFFFFF
		}
	}
}

// Color maps a smooth escape-time value to a pixel. Interior points
// (smooth at or above the iteration budget) are opaque black; exterior
// values cycle through the LUT, shifted by offset.
func (tb *Tables) Color(smooth float64, maxIter, pal, offset int) uint32 {
	if smooth >= float64(maxIter) {
		return Interior
	}
	idx := (int(smooth*smoothScale) + offset) % LUTSize
	if idx < 0 {
		idx += LUTSize
	}
	return tb.lut[pal][idx]
}

// Lyapunov maps a Lyapunov exponent to a pixel. Unlike Color there is
// no interior cutoff; negative exponents wrap around the LUT.
func (tb *Tables) Lyapunov(lambda float64, pal, offset int) uint32 {
	idx := (int(lambda*LyapScale) + offset) % LUTSize
	if idx < 0 {
		idx += LUTSize
	}
	return tb.lut[pal][idx]
}

// At returns the raw LUT entry, primarily for palette previews.
func (tb *Tables) At(pal, idx int) uint32 {
	return tb.lut[pal][idx]
}
