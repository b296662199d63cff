// Package kernel implements the scalar per-pixel iteration kernels for
// every supported fractal formula.
//
// Each kernel iterates z ← f(z) + c until |z|² exceeds the escape
// radius (2, so |z|² > 4) or the iteration budget runs out, and returns
// the smooth (normalized) iteration count in [0, maxIter]. The smooth
// value removes the banding of raw integer escape counts via the
// double-logarithm correction:
//
//	smooth = max(0, i + 1 − log_b(log_b |z|))
//
// where b is 2 for the degree-2 formulas and the exponent n for the
// power formulas. Interior points (budget exhausted) report exactly
// maxIter.
//
// Seeding: z₀ is always the queried point. In the default mode the
// additive constant c is the point itself; in Julia mode c is the fixed
// Julia parameter.
//
// These kernels are the correctness baseline for the 4-wide batched
// kernels in internal/wide, which must match them within floating-point
// rounding.
package kernel

import "math"

// Formula identifies one of the supported iterated maps.
// The set is closed; dispatch tables are sized by FormulaCount.
type Formula int

const (
	// Standard is z² + c.
	Standard Formula = iota
	// BurningShip is (|Re z| + i|Im z|)² + c.
	BurningShip
	// Celtic is |Re(z²)| + i·Im(z²) + c.
	Celtic
	// Buffalo is |Re(z²)| + i·|Im(z²)| + c.
	Buffalo
	// Mandelbar is conj(z)ⁿ + c with integer exponent 2-8.
	Mandelbar
	// MultiFast is zⁿ + c with integer exponent 2-8, computed by
	// repeated complex multiplication.
	MultiFast
	// MultiSlow is zⁿ + c with a real exponent, computed in polar form.
	MultiSlow
)

// FormulaCount is the number of formula variants.
const FormulaCount = 7

// String returns the base (non-Julia) formula name.
func (f Formula) String() string {
	switch f {
	case Standard:
		return "Mandelbrot"
	case BurningShip:
		return "Burning Ship"
	case Celtic:
		return "Celtic"
	case Buffalo:
		return "Buffalo"
	case Mandelbar:
		return "Mandelbar"
	case MultiFast:
		return "Multibrot"
	case MultiSlow:
		return "Multibrot (slow)"
	}
	return "Unknown"
}

// DisplayName returns a human-readable name combining formula and
// Julia mode.
func (f Formula) DisplayName(julia bool) string {
	if !julia {
		return f.String()
	}
	switch f {
	case Standard:
		return "Julia"
	case BurningShip:
		return "Burning Ship Julia"
	case Celtic:
		return "Celtic Julia"
	case Buffalo:
		return "Buffalo Julia"
	case Mandelbar:
		return "Mandelbar Julia"
	case MultiFast:
		return "Multijulia"
	case MultiSlow:
		return "Multijulia (slow)"
	}
	return "Unknown"
}

// Params carries the iteration inputs shared by all kernels.
// JuliaRe/JuliaIm are consulted only by the Julia kernel variants;
// ExpInt only by the integer-power formulas (range 2-8) and ExpReal
// only by the real-exponent formula. Validity of these ranges is the
// caller's precondition, not checked here.
type Params struct {
	MaxIter int
	JuliaRe float64
	JuliaIm float64
	ExpInt  int
	ExpReal float64
}

// IterFunc is a scalar kernel: smooth iteration count for one point.
type IterFunc func(re, im float64, p Params) float64

// LyapFunc is a scalar kernel that additionally reports the Lyapunov
// exponent (running average of log|f'(z)| along the orbit).
type LyapFunc func(re, im float64, p Params) (smooth, lambda float64)

// StepFunc applies one iteration of a formula's update rule z ← f(z)+c.
// Exponent parameters come from p.
type StepFunc func(zr, zi, cr, ci float64, p Params) (float64, float64)

const escapeRadiusSq = 4.0

var invLog2 = 1.0 / math.Ln2

// Smooth applies the normalized iteration count correction.
// iters is the number of completed updates before escape, mag2 the
// squared magnitude at escape, invLogB the reciprocal log of the
// formula's degree. Shared with the batched kernels in internal/wide.
func Smooth(iters int, mag2, invLogB float64) float64 {
	logZn := 0.5 * math.Log(mag2)
	nu := math.Log(logZn*invLogB) * invLogB
	return math.Max(0, float64(iters)+1-nu)
}

// PromoteEps is the tolerance under which a real exponent is treated
// as the nearest integer, switching the polar-form formula to the much
// cheaper repeated-multiplication path. A tunable precision policy,
// not a law of the domain.
const PromoteEps = 1e-9

// PromoteRealExponent reports the integer exponent the real-exponent
// formula should be promoted to, or 0 when no promotion applies.
func PromoteRealExponent(exp float64) int {
	n := int(math.Round(exp))
	if n >= 2 && math.Abs(exp-float64(n)) < PromoteEps {
		return n
	}
	return 0
}

// scalarTable holds the base kernel per [formula][julia]. Built once;
// Select applies the exponent promotions on top.
var scalarTable = [FormulaCount][2]IterFunc{
	Standard:    {Mandelbrot, Julia},
	BurningShip: {BurningShipIter, BurningShipJulia},
	Celtic:      {CelticIter, CelticJulia},
	Buffalo:     {BuffaloIter, BuffaloJulia},
	Mandelbar:   {MandelbarIter, MandelbarJulia},
	MultiFast:   {MultibrotInt, MultijuliaInt},
	MultiSlow:   {MultibrotReal, MultijuliaReal},
}

// stepTable holds one update rule per formula, shared by the orbit and
// Lyapunov paths. Julia mode only changes the seed, never the step.
var stepTable = [FormulaCount]StepFunc{
	Standard:    StepStandard,
	BurningShip: StepBurningShip,
	Celtic:      StepCeltic,
	Buffalo:     StepBuffalo,
	Mandelbar:   StepMandelbar,
	MultiFast:   StepPowInt,
	MultiSlow:   StepPowReal,
}

// Select returns the scalar kernel for a formula/Julia combination,
// resolving the exponent fast paths: an integer-power formula with
// n == 2 collapses to the quadratic kernel, and a real exponent within
// PromoteEps of an integer is promoted to the integer path.
// The promoted exponent, when any, is returned so the caller can adjust
// Params before the per-pixel loop.
func Select(f Formula, julia bool, p Params) (IterFunc, Params) {
	j := 0
	if julia {
		j = 1
	}
	switch f {
	case Mandelbar:
		if p.ExpInt == 2 {
			// conj(z)² + c has its own dedicated degree-2 kernel, so
			// nothing to promote; keep the table entry.
			return scalarTable[Mandelbar][j], p
		}
	case MultiFast:
		if p.ExpInt == 2 {
			return scalarTable[Standard][j], p
		}
	case MultiSlow:
		if n := PromoteRealExponent(p.ExpReal); n > 0 {
			p.ExpInt = n
			if n == 2 {
				return scalarTable[Standard][j], p
			}
			return scalarTable[MultiFast][j], p
		}
	}
	return scalarTable[f][j], p
}

// Step returns the update rule for a formula.
func Step(f Formula) StepFunc {
	return stepTable[f]
}

// Degree returns the effective degree of the formula under p, used as
// the logarithm base for smooth coloring and the Lyapunov derivative.
func Degree(f Formula, p Params) float64 {
	switch f {
	case Mandelbar, MultiFast:
		return float64(p.ExpInt)
	case MultiSlow:
		if n := PromoteRealExponent(p.ExpReal); n > 0 {
			return float64(n)
		}
		return p.ExpReal
	}
	return 2
}
