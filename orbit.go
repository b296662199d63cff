package fractal

import "github.com/mikolajpod/fractal-xplorer/internal/kernel"

// ComputeOrbit returns up to n successive orbit points of the view's
// formula for the complex coordinate (re, im), starting with the point
// itself and stopping once the orbit escapes. Intended for the orbit
// overlay; it runs outside the rendering hot path.
func ComputeOrbit(re, im float64, vs ViewState, n int) []complex128 {
	return kernel.Orbit(re, im, vs.Formula, vs.JuliaMode, vs.params(), n)
}
