package wide

import (
	"math"

	"github.com/mikolajpod/fractal-xplorer/internal/kernel"
)

// Degree-2 step tags. The baseline variants mirror the scalar update
// expressions exactly, so baseline batch results are bit-identical to
// the scalar kernels. The FMA variants fuse the products feeding each
// add; they differ from the scalar results only in rounding.

type mandelbrotStep struct{}

func (mandelbrotStep) step(zr, zi, cr, ci float64) (float64, float64) {
	return zr*zr - zi*zi + cr, 2*zr*zi + ci
}

type mandelbrotStepFMA struct{}

func (mandelbrotStepFMA) step(zr, zi, cr, ci float64) (float64, float64) {
	return math.FMA(zr, zr, cr) - zi*zi, math.FMA(2*zr, zi, ci)
}

type burningShipStep struct{}

func (burningShipStep) step(zr, zi, cr, ci float64) (float64, float64) {
	return zr*zr - zi*zi + cr, 2*math.Abs(zr)*math.Abs(zi) + ci
}

type burningShipStepFMA struct{}

func (burningShipStepFMA) step(zr, zi, cr, ci float64) (float64, float64) {
	return math.FMA(zr, zr, cr) - zi*zi, math.FMA(2*math.Abs(zr), math.Abs(zi), ci)
}

type celticStep struct{}

func (celticStep) step(zr, zi, cr, ci float64) (float64, float64) {
	return math.Abs(zr*zr-zi*zi) + cr, 2*zr*zi + ci
}

type celticStepFMA struct{}

func (celticStepFMA) step(zr, zi, cr, ci float64) (float64, float64) {
	return math.Abs(math.FMA(zr, zr, -(zi*zi))) + cr, math.FMA(2*zr, zi, ci)
}

type buffaloStep struct{}

func (buffaloStep) step(zr, zi, cr, ci float64) (float64, float64) {
	return math.Abs(zr*zr-zi*zi) + cr, math.Abs(2*zr*zi) + ci
}

type buffaloStepFMA struct{}

func (buffaloStepFMA) step(zr, zi, cr, ci float64) (float64, float64) {
	return math.Abs(math.FMA(zr, zr, -(zi*zi))) + cr, math.Abs(2*zr*zi) + ci
}

type mandelbarStep struct{}

func (mandelbarStep) step(zr, zi, cr, ci float64) (float64, float64) {
	return zr*zr - zi*zi + cr, -2*zr*zi + ci
}

type mandelbarStepFMA struct{}

func (mandelbarStepFMA) step(zr, zi, cr, ci float64) (float64, float64) {
	return math.FMA(zr, zr, cr) - zi*zi, math.FMA(-2*zr, zi, ci)
}

// Mandelbrot4 computes a batch of the z² + c set.
func Mandelbrot4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(mandelbrotStep{}, re0, dx, im, false, p, out)
}

// Julia4 computes a batch of the z² + c Julia set.
func Julia4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(mandelbrotStep{}, re0, dx, im, true, p, out)
}

func Mandelbrot4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(mandelbrotStepFMA{}, re0, dx, im, false, p, out)
}

func Julia4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(mandelbrotStepFMA{}, re0, dx, im, true, p, out)
}

// BurningShip4 computes a batch of (|Re z| + i|Im z|)² + c.
func BurningShip4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(burningShipStep{}, re0, dx, im, false, p, out)
}

func BurningShipJulia4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(burningShipStep{}, re0, dx, im, true, p, out)
}

func BurningShip4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(burningShipStepFMA{}, re0, dx, im, false, p, out)
}

func BurningShipJulia4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(burningShipStepFMA{}, re0, dx, im, true, p, out)
}

// Celtic4 computes a batch of |Re(z²)| + i·Im(z²) + c.
func Celtic4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(celticStep{}, re0, dx, im, false, p, out)
}

func CelticJulia4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(celticStep{}, re0, dx, im, true, p, out)
}

func Celtic4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(celticStepFMA{}, re0, dx, im, false, p, out)
}

func CelticJulia4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(celticStepFMA{}, re0, dx, im, true, p, out)
}

// Buffalo4 computes a batch of |Re(z²)| + i·|Im(z²)| + c.
func Buffalo4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(buffaloStep{}, re0, dx, im, false, p, out)
}

func BuffaloJulia4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(buffaloStep{}, re0, dx, im, true, p, out)
}

func Buffalo4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(buffaloStepFMA{}, re0, dx, im, false, p, out)
}

func BuffaloJulia4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	quad4(buffaloStepFMA{}, re0, dx, im, true, p, out)
}

// Mandelbar4 computes a batch of conj(z)ⁿ + c; exponents above 2 route
// through the repeated-multiplication path.
func Mandelbar4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	if p.ExpInt > 2 {
		pow4(powStep{n: p.ExpInt, conj: true}, float64(p.ExpInt), re0, dx, im, false, p, out)
		return
	}
	quad4(mandelbarStep{}, re0, dx, im, false, p, out)
}

func MandelbarJulia4(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	if p.ExpInt > 2 {
		pow4(powStep{n: p.ExpInt, conj: true}, float64(p.ExpInt), re0, dx, im, true, p, out)
		return
	}
	quad4(mandelbarStep{}, re0, dx, im, true, p, out)
}

func Mandelbar4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	if p.ExpInt > 2 {
		pow4(powStepFMA{n: p.ExpInt, conj: true}, float64(p.ExpInt), re0, dx, im, false, p, out)
		return
	}
	quad4(mandelbarStepFMA{}, re0, dx, im, false, p, out)
}

func MandelbarJulia4FMA(re0, dx, im float64, p kernel.Params, out *[Lanes]float64) {
	if p.ExpInt > 2 {
		pow4(powStepFMA{n: p.ExpInt, conj: true}, float64(p.ExpInt), re0, dx, im, true, p, out)
		return
	}
	quad4(mandelbarStepFMA{}, re0, dx, im, true, p, out)
}
