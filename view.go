package fractal

import "github.com/mikolajpod/fractal-xplorer/internal/kernel"

// Formula identifies one of the supported iterated maps.
type Formula = kernel.Formula

// Formula variants, re-exported from the kernel package so callers
// never import internal packages.
const (
	Standard    = kernel.Standard
	BurningShip = kernel.BurningShip
	Celtic      = kernel.Celtic
	Buffalo     = kernel.Buffalo
	Mandelbar   = kernel.Mandelbar
	MultiFast   = kernel.MultiFast
	MultiSlow   = kernel.MultiSlow

	// FormulaCount is the number of formula variants.
	FormulaCount = kernel.FormulaCount
)

// ColorMode selects how computed values map to pixels.
type ColorMode int

const (
	// ColorSmooth colors exterior points by smooth iteration count;
	// interior points are black.
	ColorSmooth ColorMode = iota
	// ColorLyapunovInterior colors interior points by Lyapunov
	// exponent and exterior points by smooth iteration count.
	ColorLyapunovInterior
	// ColorLyapunovFull colors every point by Lyapunov exponent.
	ColorLyapunovFull

	// ColorModeCount is the number of color modes.
	ColorModeCount = 3
)

// ViewState carries everything a single render depends on: the region
// of the complex plane, the formula and its parameters, and the
// coloring configuration. It is a plain value; copying is cheap and
// renders never mutate it.
type ViewState struct {
	// CenterX, CenterY locate the view center in the complex plane.
	CenterX float64
	CenterY float64
	// ViewWidth is the width of the viewport in complex-plane units.
	// The height follows from the buffer's aspect ratio; pixels are
	// always square.
	ViewWidth float64

	MaxIter int

	Formula   Formula
	JuliaMode bool
	JuliaRe   float64
	JuliaIm   float64

	// Palette selects one of the palette.Count built-in palettes;
	// PalOffset rotates which color lands at smooth = 0.
	Palette   int
	PalOffset int

	// IntExp is the integer exponent for Mandelbar and MultiFast
	// (valid range 2-8). RealExp is the real exponent for MultiSlow.
	IntExp  int
	RealExp float64

	ColorMode ColorMode
}

// DefaultView returns the canonical home view: the full set centered at
// the origin, classic blue-gold palette, quadratic Mandelbrot.
func DefaultView() ViewState {
	return ViewState{
		CenterX:   0,
		CenterY:   0,
		ViewWidth: 4.0,
		MaxIter:   256,
		Formula:   Standard,
		JuliaMode: false,
		JuliaRe:   -0.7,
		JuliaIm:   0.27015,
		Palette:   7,
		PalOffset: 0,
		IntExp:    2,
		RealExp:   3.0,
		ColorMode: ColorSmooth,
	}
}

// Zoom returns the display zoom factor relative to the default view
// width.
func (vs ViewState) Zoom() float64 {
	return 4.0 / vs.ViewWidth
}

// FractalName returns a human-readable name combining formula and
// Julia mode.
func (vs ViewState) FractalName() string {
	return vs.Formula.DisplayName(vs.JuliaMode)
}

// ResetViewKeepParams resets navigation (center, zoom) to the default
// and switches formula and Julia mode, while preserving all
// user-controlled parameters: Julia constants, palette, offset,
// exponents, iteration limit, and color mode.
func (vs *ViewState) ResetViewKeepParams(f Formula, juliaMode bool) {
	next := DefaultView()
	next.Formula = f
	next.JuliaMode = juliaMode
	next.JuliaRe = vs.JuliaRe
	next.JuliaIm = vs.JuliaIm
	next.Palette = vs.Palette
	next.PalOffset = vs.PalOffset
	next.IntExp = vs.IntExp
	next.RealExp = vs.RealExp
	next.MaxIter = vs.MaxIter
	next.ColorMode = vs.ColorMode
	*vs = next
}

// params converts the view parameters to the kernel's input form.
func (vs ViewState) params() kernel.Params {
	return kernel.Params{
		MaxIter: vs.MaxIter,
		JuliaRe: vs.JuliaRe,
		JuliaIm: vs.JuliaIm,
		ExpInt:  vs.IntExp,
		ExpReal: vs.RealExp,
	}
}
