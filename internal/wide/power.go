package wide

import (
	"math"

	"github.com/mikolajpod/fractal-xplorer/internal/kernel"
)

// powStep is one update of z ← zⁿ + c (optionally conjugated) for
// integer n, via repeated complex multiplication.
type powStep struct {
	n    int
	conj bool
}

func (s powStep) step(zr, zi, cr, ci float64) (float64, float64) {
	pr, pi := kernel.PowInt(zr, zi, s.n)
	if s.conj {
		pi = -pi
	}
	return pr + cr, pi + ci
}

// powStepFMA fuses the complex-multiply inner products.
type powStepFMA struct {
	n    int
	conj bool
}

func (s powStepFMA) step(zr, zi, cr, ci float64) (float64, float64) {
	pr, pi := zr, zi
	for p := 1; p < s.n; p++ {
		npr := math.FMA(pr, zr, -(pi * zi))
		pi = math.FMA(pr, zi, pi*zr)
		pr = npr
	}
	if s.conj {
		pi = -pi
	}
	return pr + cr, pi + ci
}

// polarStep is one update of z ← zⁿ + c for a real exponent. The polar
// evaluation is transcendental-bound, so there is no separate FMA
// variant.
type polarStep struct {
	n float64
}

func (s polarStep) step(zr, zi, cr, ci float64) (float64, float64) {
	pr, pi := kernel.PowReal(zr, zi, s.n)
	return pr + cr, pi + ci
}

// MultibrotInt4 computes a batch of zⁿ + c with integer n from
// Params.ExpInt.
func MultibrotInt4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	pow4(powStep{n: p.ExpInt}, float64(p.ExpInt), re0, dx, im, false, p, out)
}

// MultijuliaInt4 is the Julia-seeded integer-power batch kernel.
func MultijuliaInt4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	pow4(powStep{n: p.ExpInt}, float64(p.ExpInt), re0, dx, im, true, p, out)
}

func MultibrotInt4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	pow4(powStepFMA{n: p.ExpInt}, float64(p.ExpInt), re0, dx, im, false, p, out)
}

func MultijuliaInt4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	pow4(powStepFMA{n: p.ExpInt}, float64(p.ExpInt), re0, dx, im, true, p, out)
}

// MultibrotReal4 computes a batch of zⁿ + c for a real exponent via
// polar form.
func MultibrotReal4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	pow4(polarStep{n: p.ExpReal}, p.ExpReal, re0, dx, im, false, p, out)
}

// MultijuliaReal4 is the Julia-seeded real-exponent batch kernel.
func MultijuliaReal4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	pow4(polarStep{n: p.ExpReal}, p.ExpReal, re0, dx, im, true, p, out)
}
