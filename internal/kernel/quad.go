package kernel

import "math"

// Degree-2 kernels. Each is written out in full so the inner loop has
// no indirect calls and no per-iteration branching beyond the escape
// test.

// Mandelbrot iterates z² + c with c = z₀ = the queried point.
func Mandelbrot(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = zr2-zi2+re, 2*zr*zi+im
	}
	return float64(p.MaxIter)
}

// Julia iterates z² + c with z₀ = the queried point and c the fixed
// Julia parameter.
func Julia(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = zr2-zi2+p.JuliaRe, 2*zr*zi+p.JuliaIm
	}
	return float64(p.MaxIter)
}

// BurningShipIter iterates (|Re z| + i|Im z|)² + c.
func BurningShipIter(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = zr2-zi2+re, 2*math.Abs(zr)*math.Abs(zi)+im
	}
	return float64(p.MaxIter)
}

// BurningShipJulia is the Julia-seeded Burning Ship.
func BurningShipJulia(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = zr2-zi2+p.JuliaRe, 2*math.Abs(zr)*math.Abs(zi)+p.JuliaIm
	}
	return float64(p.MaxIter)
}

// CelticIter iterates |Re(z²)| + i·Im(z²) + c.
func CelticIter(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = math.Abs(zr2-zi2)+re, 2*zr*zi+im
	}
	return float64(p.MaxIter)
}

// CelticJulia is the Julia-seeded Celtic.
func CelticJulia(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = math.Abs(zr2-zi2)+p.JuliaRe, 2*zr*zi+p.JuliaIm
	}
	return float64(p.MaxIter)
}

// BuffaloIter iterates |Re(z²)| + i·|Im(z²)| + c.
func BuffaloIter(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = math.Abs(zr2-zi2)+re, math.Abs(2*zr*zi)+im
	}
	return float64(p.MaxIter)
}

// BuffaloJulia is the Julia-seeded Buffalo.
func BuffaloJulia(re, im float64, p Params) float64 {
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = math.Abs(zr2-zi2)+p.JuliaRe, math.Abs(2*zr*zi)+p.JuliaIm
	}
	return float64(p.MaxIter)
}

// MandelbarIter iterates conj(z)² + c; exponents above 2 fall through
// to the repeated-multiplication path.
func MandelbarIter(re, im float64, p Params) float64 {
	if p.ExpInt > 2 {
		return mandelbarMulti(re, im, re, im, p)
	}
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = zr2-zi2+re, -2*zr*zi+im
	}
	return float64(p.MaxIter)
}

// MandelbarJulia is the Julia-seeded Mandelbar.
func MandelbarJulia(re, im float64, p Params) float64 {
	if p.ExpInt > 2 {
		return mandelbarMulti(re, im, p.JuliaRe, p.JuliaIm, p)
	}
	zr, zi := re, im
	for i := 0; i < p.MaxIter; i++ {
		zr2, zi2 := zr*zr, zi*zi
		if zr2+zi2 > escapeRadiusSq {
			return Smooth(i, zr2+zi2, invLog2)
		}
		zr, zi = zr2-zi2+p.JuliaRe, -2*zr*zi+p.JuliaIm
	}
	return float64(p.MaxIter)
}
