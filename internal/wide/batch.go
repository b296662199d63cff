package wide

import (
	"math"

	"github.com/mikolajpod/fractal-xplorer/internal/kernel"
)

const escapeRadiusSq = 4.0

var invLog2 = 1.0 / math.Ln2

// BatchFunc computes smooth iteration counts for 4 adjacent pixels.
// re0 is the real coordinate of the leftmost pixel, dx the per-pixel
// step, im the shared imaginary coordinate of the row.
type BatchFunc func(re0, dx, im float64, p kernel.Params, out *[Lanes]float64)

// LyapBatchFunc additionally reports the per-lane Lyapunov exponents.
type LyapBatchFunc func(re0, dx, im float64, p kernel.Params, smooth, lambda *[Lanes]float64)

// laneStep applies one formula update to a single lane. Implementations
// are small value types so the generic drivers below specialize over
// them without heap allocation.
type laneStep interface {
	step(zr, zi, cr, ci float64) (float64, float64)
}

// seedLanes builds the initial per-lane state. z always starts at the
// pixel's own coordinate; Julia mode only changes the additive
// constant.
func seedLanes(re0, dx, im float64, julia bool, p kernel.Params) (zr, zi, cr, ci F64x4) {
	re := Ramp(re0, dx)
	zr, zi = re, Splat(im)
	if julia {
		cr, ci = Splat(p.JuliaRe), Splat(p.JuliaIm)
	} else {
		cr, ci = re, Splat(im)
	}
	return zr, zi, cr, ci
}

// iterate runs the escape-masked batch loop shared by all smooth
// kernels. A lane that escapes has its squared magnitude and completed
// iteration count latched and its z frozen; the loop exits once every
// lane has escaped. Lanes still active after maxIter iterations are
// interior and report exactly maxIter.
func iterate[S laneStep](st S, zr, zi, cr, ci F64x4, maxIter int, invLogB float64, out *[Lanes]float64) {
	active := [Lanes]bool{true, true, true, true}
	finalMag2 := Splat(escapeRadiusSq)
	var iters [Lanes]int

	for i := 0; i < maxIter; i++ {
		anyActive := false
		for l := 0; l < Lanes; l++ {
			if !active[l] {
				continue
			}
			mag2 := zr[l]*zr[l] + zi[l]*zi[l]
			if mag2 > escapeRadiusSq {
				finalMag2[l] = mag2
				active[l] = false
				continue
			}
			zr[l], zi[l] = st.step(zr[l], zi[l], cr[l], ci[l])
			iters[l] = i + 1
			anyActive = true
		}
		if !anyActive {
			break
		}
	}

	for l := 0; l < Lanes; l++ {
		if active[l] {
			out[l] = float64(maxIter)
		} else {
			out[l] = kernel.Smooth(iters[l], finalMag2[l], invLogB)
		}
	}
}

// quad4 seeds and runs a degree-2 batch kernel.
func quad4[S laneStep](st S, re0, dx, im float64, julia bool, p kernel.Params, out *[Lanes]float64) {
	zr, zi, cr, ci := seedLanes(re0, dx, im, julia, p)
	iterate(st, zr, zi, cr, ci, p.MaxIter, invLog2, out)
}

// pow4 seeds and runs a power-formula batch kernel with the given
// degree as the smooth-coloring base.
func pow4[S laneStep](st S, degree float64, re0, dx, im float64, julia bool, p kernel.Params, out *[Lanes]float64) {
	zr, zi, cr, ci := seedLanes(re0, dx, im, julia, p)
	iterate(st, zr, zi, cr, ci, p.MaxIter, 1.0/math.Log(degree), out)
}
