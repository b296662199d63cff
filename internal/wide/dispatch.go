package wide

import "github.com/mikolajpod/fractal-xplorer/internal/kernel"

// batchTable holds the batch kernel per [formula][julia][tier].
// Tier 0 is the plain multiply/add baseline, tier 1 the math.FMA
// variants. The real-exponent formula has a single tier; its cost is
// dominated by the polar transcendentals.
var batchTable = [kernel.FormulaCount][2][2]BatchFunc{
	kernel.Standard:    {{Mandelbrot4, Mandelbrot4FMA}, {Julia4, Julia4FMA}},
	kernel.BurningShip: {{BurningShip4, BurningShip4FMA}, {BurningShipJulia4, BurningShipJulia4FMA}},
	kernel.Celtic:      {{Celtic4, Celtic4FMA}, {CelticJulia4, CelticJulia4FMA}},
	kernel.Buffalo:     {{Buffalo4, Buffalo4FMA}, {BuffaloJulia4, BuffaloJulia4FMA}},
	kernel.Mandelbar:   {{Mandelbar4, Mandelbar4FMA}, {MandelbarJulia4, MandelbarJulia4FMA}},
	kernel.MultiFast:   {{MultibrotInt4, MultibrotInt4FMA}, {MultijuliaInt4, MultijuliaInt4FMA}},
	kernel.MultiSlow:   {{MultibrotReal4, MultibrotReal4}, {MultijuliaReal4, MultijuliaReal4}},
}

// resolve applies the exponent fast paths shared with the scalar
// dispatch: near-integer real exponents promote to the integer formula,
// and n == 2 integer powers collapse to the quadratic kernel. Mandelbar
// keeps its own entry; its n == 2 fast path lives inside the kernel.
func resolve(f kernel.Formula, p kernel.Params) (kernel.Formula, kernel.Params) {
	if f == kernel.MultiSlow {
		if n := kernel.PromoteRealExponent(p.ExpReal); n > 0 {
			p.ExpInt = n
			f = kernel.MultiFast
		}
	}
	if f == kernel.MultiFast && p.ExpInt == 2 {
		f = kernel.Standard
	}
	return f, p
}

// Select returns the batch kernel for a formula/Julia/tier combination.
// The returned Params carry any promoted exponent and must be the ones
// passed to the kernel.
func Select(f kernel.Formula, julia, fma bool, p kernel.Params) (BatchFunc, kernel.Params) {
	f, p = resolve(f, p)
	j, t := 0, 0
	if julia {
		j = 1
	}
	if fma {
		t = 1
	}
	return batchTable[f][j][t], p
}
