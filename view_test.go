package fractal

import "testing"

// =============================================================================
// ViewState Tests
// =============================================================================

func TestDefaultView(t *testing.T) {
	vs := DefaultView()
	if vs.CenterX != 0 || vs.CenterY != 0 {
		t.Errorf("default center = (%v, %v), want origin", vs.CenterX, vs.CenterY)
	}
	if vs.ViewWidth != 4.0 {
		t.Errorf("default view width = %v, want 4", vs.ViewWidth)
	}
	if vs.MaxIter != 256 {
		t.Errorf("default max iter = %d, want 256", vs.MaxIter)
	}
	if vs.Formula != Standard || vs.JuliaMode {
		t.Errorf("default formula = %v julia=%v, want Standard non-Julia", vs.Formula, vs.JuliaMode)
	}
	if vs.JuliaRe != -0.7 || vs.JuliaIm != 0.27015 {
		t.Errorf("default julia = (%v, %v)", vs.JuliaRe, vs.JuliaIm)
	}
	if vs.Palette != 7 {
		t.Errorf("default palette = %d, want 7", vs.Palette)
	}
	if vs.IntExp != 2 || vs.RealExp != 3.0 {
		t.Errorf("default exponents = (%d, %v)", vs.IntExp, vs.RealExp)
	}
	if vs.ColorMode != ColorSmooth {
		t.Errorf("default color mode = %v", vs.ColorMode)
	}
}

func TestViewState_Zoom(t *testing.T) {
	vs := DefaultView()
	if vs.Zoom() != 1.0 {
		t.Errorf("default zoom = %v, want 1", vs.Zoom())
	}
	vs.ViewWidth = 0.5
	if vs.Zoom() != 8.0 {
		t.Errorf("zoom at width 0.5 = %v, want 8", vs.Zoom())
	}
}

func TestViewState_FractalName(t *testing.T) {
	vs := DefaultView()
	if vs.FractalName() != "Mandelbrot" {
		t.Errorf("name = %q, want Mandelbrot", vs.FractalName())
	}
	vs.JuliaMode = true
	if vs.FractalName() != "Julia" {
		t.Errorf("name = %q, want Julia", vs.FractalName())
	}
	vs.Formula = MultiFast
	if vs.FractalName() != "Multijulia" {
		t.Errorf("name = %q, want Multijulia", vs.FractalName())
	}
}

func TestViewState_ResetViewKeepParams(t *testing.T) {
	vs := DefaultView()
	vs.CenterX = -0.745
	vs.CenterY = 0.113
	vs.ViewWidth = 1e-6
	vs.MaxIter = 1000
	vs.JuliaRe = 0.355
	vs.JuliaIm = 0.337
	vs.Palette = 2
	vs.PalOffset = 512
	vs.IntExp = 5
	vs.RealExp = 2.5
	vs.ColorMode = ColorLyapunovFull

	vs.ResetViewKeepParams(BurningShip, true)

	if vs.CenterX != 0 || vs.CenterY != 0 || vs.ViewWidth != 4.0 {
		t.Errorf("navigation not reset: center (%v, %v) width %v", vs.CenterX, vs.CenterY, vs.ViewWidth)
	}
	if vs.Formula != BurningShip || !vs.JuliaMode {
		t.Errorf("formula switch lost: %v julia=%v", vs.Formula, vs.JuliaMode)
	}
	if vs.JuliaRe != 0.355 || vs.JuliaIm != 0.337 {
		t.Errorf("julia params lost: (%v, %v)", vs.JuliaRe, vs.JuliaIm)
	}
	if vs.Palette != 2 || vs.PalOffset != 512 {
		t.Errorf("palette params lost: %d offset %d", vs.Palette, vs.PalOffset)
	}
	if vs.IntExp != 5 || vs.RealExp != 2.5 {
		t.Errorf("exponents lost: (%d, %v)", vs.IntExp, vs.RealExp)
	}
	if vs.MaxIter != 1000 {
		t.Errorf("iteration limit lost: %d", vs.MaxIter)
	}
	if vs.ColorMode != ColorLyapunovFull {
		t.Errorf("color mode lost: %v", vs.ColorMode)
	}
}
