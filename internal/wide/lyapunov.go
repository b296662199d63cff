package wide

import (
	"math"

	"github.com/mikolajpod/fractal-xplorer/internal/kernel"
)

// Smallest squared magnitude that contributes to the derivative sum;
// matches the scalar Lyapunov kernel.
const lyapMagFloor = 1e-200

// iterateLyap is the batched counterpart of the scalar Lyapunov loop.
// Each lane accumulates log n + (n−1)/2 · log(|z|²) before the escape
// test, so the escape iteration itself still contributes to the
// average.
func iterateLyap[S laneStep](st S, zr, zi, cr, ci F64x4, maxIter int, degree float64, out, lyap *[Lanes]float64) {
	logN := math.Log(degree)
	invLogN := 1.0 / logN
	nm1Half := (degree - 1) / 2

	active := [Lanes]bool{true, true, true, true}
	finalMag2 := Splat(escapeRadiusSq)
	var iters [Lanes]int
	var sum, count F64x4

	for i := 0; i < maxIter; i++ {
		anyActive := false
		for l := 0; l < Lanes; l++ {
			if !active[l] {
				continue
			}
			mag2 := zr[l]*zr[l] + zi[l]*zi[l]
			if mag2 > lyapMagFloor {
				sum[l] += nm1Half*math.Log(mag2) + logN
				count[l]++
			}
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
			out[l] = kernel.Smooth(iters[l], finalMag2[l], invLogN)
		}
		lyap[l] = sum[l] / math.Max(count[l], 1)
	}
}

func lyapFunc[S laneStep](st S, degree float64, julia bool) LyapBatchFunc {
	return func(re0, dx, im float64, p kernel.Params, smooth, lambda *[Lanes]float64) {
		zr, zi, cr, ci := seedLanes(re0, dx, im, julia, p)
		iterateLyap(st, zr, zi, cr, ci, p.MaxIter, degree, smooth, lambda)
	}
}

// SelectLyapunov returns the batched Lyapunov kernel for a
// formula/Julia/tier combination, applying the same exponent promotions
// as Select. The returned Params carry any promoted exponent.
func SelectLyapunov(f kernel.Formula, julia, fma bool, p kernel.Params) (LyapBatchFunc, kernel.Params) {
	f, p = resolve(f, p)
	degree := kernel.Degree(f, p)
	switch f {
	case kernel.Standard:
		if fma {
			return lyapFunc(mandelbrotStepFMA{}, degree, julia), p
		}
		return lyapFunc(mandelbrotStep{}, degree, julia), p
	case kernel.BurningShip:
		if fma {
			return lyapFunc(burningShipStepFMA{}, degree, julia), p
		}
		return lyapFunc(burningShipStep{}, degree, julia), p
	case kernel.Celtic:
		if fma {
			return lyapFunc(celticStepFMA{}, degree, julia), p
		}
		return lyapFunc(celticStep{}, degree, julia), p
	case kernel.Buffalo:
		if fma {
			return lyapFunc(buffaloStepFMA{}, degree, julia), p
		}
		return lyapFunc(buffaloStep{}, degree, julia), p
	case kernel.Mandelbar:
		if p.ExpInt > 2 {
			if fma {
				return lyapFunc(powStepFMA{n: p.ExpInt, conj: true}, degree, julia), p
			}
			return lyapFunc(powStep{n: p.ExpInt, conj: true}, degree, julia), p
		}
		if fma {
			return lyapFunc(mandelbarStepFMA{}, degree, julia), p
		}
		return lyapFunc(mandelbarStep{}, degree, julia), p
	case kernel.MultiFast:
		if fma {
			return lyapFunc(powStepFMA{n: p.ExpInt}, degree, julia), p
		}
		return lyapFunc(powStep{n: p.ExpInt}, degree, julia), p
	}
	return lyapFunc(polarStep{n: p.ExpReal}, degree, julia), p
}
