package kernel

import "math"

// Lyapunov-exponent kernels. Alongside the ordinary smooth value they
// report the running average of log|f'(z)| over the orbit, which for
// z ← zⁿ + c is
//
//	log|f'(z)| = log n + (n−1)/2 · log(|z|²)
//
// accumulated at every iteration where |z|² is large enough for the
// logarithm to be meaningful. The average visualizes local expansion
// rate and drives the two Lyapunov coloring modes.

// lyapMagFloor is the smallest squared magnitude that contributes to
// the derivative sum; orbits sitting at the origin are skipped.
const lyapMagFloor = 1e-200

func lyapunovIter(re, im, cr, ci float64, p Params, step StepFunc, degree float64) (float64, float64) {
	logN := math.Log(degree)
	invLogN := 1.0 / logN
	nm1Half := (degree - 1) / 2
	zr, zi := re, im
	var sum, count float64
	for i := 0; i < p.MaxIter; i++ {
		mag2 := zr*zr + zi*zi
		if mag2 > lyapMagFloor {
			sum += nm1Half*math.Log(mag2) + logN
			count++
		}
		if mag2 > escapeRadiusSq {
			return Smooth(i, mag2, invLogN), sum / math.Max(count, 1)
		}
		zr, zi = step(zr, zi, cr, ci, p)
	}
	return float64(p.MaxIter), sum / math.Max(count, 1)
}

// SelectLyapunov returns the Lyapunov kernel for a formula/Julia
// combination, applying the same exponent promotions as Select.
func SelectLyapunov(f Formula, julia bool, p Params) (LyapFunc, Params) {
	eff := f
	if f == MultiSlow {
		if n := PromoteRealExponent(p.ExpReal); n > 0 {
			p.ExpInt = n
			eff = MultiFast
		}
	}
	if eff == MultiFast && p.ExpInt == 2 {
		eff = Standard
	}
	step := stepTable[eff]
	degree := Degree(eff, p)
	if julia {
		return func(re, im float64, q Params) (float64, float64) {
			return lyapunovIter(re, im, q.JuliaRe, q.JuliaIm, q, step, degree)
		}, p
	}
	return func(re, im float64, q Params) (float64, float64) {
		return lyapunovIter(re, im, re, im, q, step, degree)
	}, p
}
