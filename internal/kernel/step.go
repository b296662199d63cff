package kernel

import "math"

// Single-step update rules, one per formula. The orbit overlay and the
// Lyapunov kernels share these; the escape-time kernels inline their
// own copies to keep the hot loops free of indirect calls.

// StepStandard applies z ← z² + c.
func StepStandard(zr, zi, cr, ci float64, _ Params) (float64, float64) {
	return zr*zr - zi*zi + cr, 2*zr*zi + ci
}

// StepBurningShip applies z ← (|Re z| + i|Im z|)² + c.
func StepBurningShip(zr, zi, cr, ci float64, _ Params) (float64, float64) {
	return zr*zr - zi*zi + cr, 2*math.Abs(zr)*math.Abs(zi) + ci
}

// StepCeltic applies z ← |Re(z²)| + i·Im(z²) + c.
func StepCeltic(zr, zi, cr, ci float64, _ Params) (float64, float64) {
	return math.Abs(zr*zr-zi*zi) + cr, 2*zr*zi + ci
}

// StepBuffalo applies z ← |Re(z²)| + i·|Im(z²)| + c.
func StepBuffalo(zr, zi, cr, ci float64, _ Params) (float64, float64) {
	return math.Abs(zr*zr-zi*zi) + cr, math.Abs(2*zr*zi) + ci
}

// StepMandelbar applies z ← conj(z)ⁿ + c, n from Params.ExpInt.
func StepMandelbar(zr, zi, cr, ci float64, p Params) (float64, float64) {
	if p.ExpInt > 2 {
		pr, pi := PowInt(zr, zi, p.ExpInt)
		return pr + cr, -pi + ci
	}
	return zr*zr - zi*zi + cr, -2*zr*zi + ci
}

// StepPowInt applies z ← zⁿ + c with integer n from Params.ExpInt.
func StepPowInt(zr, zi, cr, ci float64, p Params) (float64, float64) {
	pr, pi := PowInt(zr, zi, p.ExpInt)
	return pr + cr, pi + ci
}

// StepPowReal applies z ← zⁿ + c with real n from Params.ExpReal.
func StepPowReal(zr, zi, cr, ci float64, p Params) (float64, float64) {
	pr, pi := PowReal(zr, zi, p.ExpReal)
	return pr + cr, pi + ci
}

// Orbit computes up to n successive z values for the seed point
// (re, im), starting with the seed itself and stopping early once the
// orbit escapes. Used by the visualization overlay, outside the
// rendering hot path.
func Orbit(re, im float64, f Formula, julia bool, p Params, n int) []complex128 {
	step := stepTable[f]
	cr, ci := re, im
	if julia {
		cr, ci = p.JuliaRe, p.JuliaIm
	}
	pts := make([]complex128, 0, n)
	zr, zi := re, im
	for i := 0; i < n; i++ {
		pts = append(pts, complex(zr, zi))
		if zr*zr+zi*zi > escapeRadiusSq {
			break
		}
		zr, zi = step(zr, zi, cr, ci, p)
	}
	return pts
}
