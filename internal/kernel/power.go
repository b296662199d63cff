package kernel

import "math"

// Integer- and real-exponent power kernels. The integer path computes
// zⁿ by repeated complex multiplication; the real path goes through
// polar form (rⁿ·(cos nθ + i·sin nθ)). Smooth coloring uses log base n.

// PowInt returns zⁿ for integer n >= 2 by repeated multiplication.
func PowInt(zr, zi float64, n int) (float64, float64) {
	pr, pi := zr, zi
	for p := 1; p < n; p++ {
		pr, pi = pr*zr-pi*zi, pr*zi+pi*zr
	}
	return pr, pi
}

// PowReal returns zⁿ for a real exponent via polar form. The origin is
// handled explicitly: 0ⁿ = 0 for any positive n, and arg(0) is
// undefined.
func PowReal(zr, zi, n float64) (float64, float64) {
	mag2 := zr*zr + zi*zi
	if mag2 == 0 {
		return 0, 0
	}
	rn := math.Exp(n * 0.5 * math.Log(mag2))
	nTheta := n * math.Atan2(zi, zr)
	sin, cos := math.Sincos(nTheta)
	return rn * cos, rn * sin
}

func multibrotInt(re, im, cr, ci float64, p Params) float64 {
	n := p.ExpInt
	invLogN := 1.0 / math.Log(float64(n))
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLogN)
		}
		pr, pi := PowInt(zr, zi, n)
		zr, zi = pr+cr, pi+ci
	}
	return float64(p.MaxIter)
}

// MultibrotInt iterates zⁿ + c with c = z₀ = the queried point,
// integer n taken from Params.ExpInt.
func MultibrotInt(re, im float64, p Params) float64 {
	return multibrotInt(re, im, re, im, p)
}

// MultijuliaInt is the Julia-seeded integer-power kernel.
func MultijuliaInt(re, im float64, p Params) float64 {
	return multibrotInt(re, im, p.JuliaRe, p.JuliaIm, p)
}

// mandelbarMulti iterates conj(z)ⁿ + c = conj(zⁿ) + c for integer n.
func mandelbarMulti(re, im, cr, ci float64, p Params) float64 {
	n := p.ExpInt
	invLogN := 1.0 / math.Log(float64(n))
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLogN)
		}
		pr, pi := PowInt(zr, zi, n)
		zr, zi = pr+cr, -pi+ci
	}
	return float64(p.MaxIter)
}

func multibrotReal(re, im, cr, ci float64, p Params) float64 {
	n := p.ExpReal
	invLogN := 1.0 / math.Log(n)
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		mag2 := zr*zr + zi*zi
		if mag2 > escapeRadiusSq {
			return Smooth(i, mag2, invLogN)
		}
		pr, pi := PowReal(zr, zi, n)
		zr, zi = pr+cr, pi+ci
	}
	return float64(p.MaxIter)
}

// MultibrotReal iterates zⁿ + c for a real exponent via polar form.
// Callers should first attempt PromoteRealExponent; this kernel is the
// slow path for genuinely non-integer exponents.
func MultibrotReal(re, im float64, p Params) float64 {
	return multibrotReal(re, im, re, im, p)
}

// MultijuliaReal is the Julia-seeded real-exponent kernel.
func MultijuliaReal(re, im float64, p Params) float64 {
	return multibrotReal(re, im, p.JuliaRe, p.JuliaIm, p)
}
