package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	fractal "github.com/mikolajpod/fractal-xplorer"
	"github.com/mikolajpod/fractal-xplorer/internal/palette"
)

const (
	zoomKeyFactor   = 1.5
	zoomWheelFactor = 1.25
	minIter         = 64
	maxIter         = 8192
	orbitPoints     = 20
	exportFactor    = 2
)

type game struct {
	renderer *fractal.Renderer
	vs       fractal.ViewState
	buf      *fractal.PixelBuffer
	tex      *ebiten.Image
	pix      []byte
	dirty    bool

	w, h int

	panning    bool
	panStartX  int
	panStartY  int
	panStartVS fractal.ViewState

	showOrbit   bool
	orbitActive bool
	orbitRe     float64
	orbitIm     float64

	status string
}

func newGame(vectorized bool) *game {
	return &game{
		renderer: fractal.NewRenderer(fractal.WithVectorized(vectorized)),
		vs:       fractal.DefaultView(),
		buf:      &fractal.PixelBuffer{},
		dirty:    true,
	}
}

func (g *game) Close() {
	g.renderer.Close()
}

// screenToPlane maps a screen pixel to the complex plane.
func (g *game) screenToPlane(mx, my int) (float64, float64) {
	scale := g.vs.ViewWidth / float64(g.w)
	re := g.vs.CenterX + (float64(mx)-float64(g.w)*0.5)*scale
	im := g.vs.CenterY + (float64(my)-float64(g.h)*0.5)*scale
	return re, im
}

// planeToScreen is the inverse mapping, for the orbit overlay.
func (g *game) planeToScreen(re, im float64) (float32, float32) {
	scale := g.vs.ViewWidth / float64(g.w)
	x := (re-g.vs.CenterX)/scale + float64(g.w)*0.5
	y := (im-g.vs.CenterY)/scale + float64(g.h)*0.5
	return float32(x), float32(y)
}

func (g *game) Update() error {
	g.handleKeys()
	g.handleMouse()
	return nil
}

func (g *game) handleKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.vs.ResetViewKeepParams(g.vs.Formula, g.vs.JuliaMode)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.vs.ViewWidth /= zoomKeyFactor
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.vs.ViewWidth *= zoomKeyFactor
		g.dirty = true
	}

	pan := g.vs.ViewWidth * 0.1
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.vs.CenterX -= pan
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.vs.CenterX += pan
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.vs.CenterY -= pan
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.vs.CenterY += pan
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.vs.MaxIter = min(g.vs.MaxIter*2, maxIter)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.vs.MaxIter = max(g.vs.MaxIter/2, minIter)
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		dir := 1
		if shift {
			dir = -1
		}
		g.vs.Palette = (g.vs.Palette + dir + palette.Count) % palette.Count
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		dir := 1
		if shift {
			dir = -1
		}
		f := (int(g.vs.Formula) + dir + fractal.FormulaCount) % fractal.FormulaCount
		g.vs.Formula = fractal.Formula(f)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.vs.JuliaMode = !g.vs.JuliaMode
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.vs.ColorMode = (g.vs.ColorMode + 1) % fractal.ColorModeCount
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.showOrbit = !g.showOrbit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.renderer.SetVectorized(!g.renderer.Stats().Vectorized)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.vs.IntExp > 2 {
		g.vs.IntExp--
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.vs.IntExp < 8 {
		g.vs.IntExp++
		g.dirty = true
	}

	for d := ebiten.KeyDigit0; d <= ebiten.KeyDigit9; d++ {
		if inpututil.IsKeyJustPressed(d) {
			g.renderer.SetThreadCount(int(d - ebiten.KeyDigit0))
			g.dirty = true
		}
	}

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.exportPNG()
	}
}

func (g *game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	// Wheel zoom centered on the cursor: the plane point under the
	// cursor stays put.
	if _, wy := ebiten.Wheel(); wy != 0 && g.w > 0 {
		re, im := g.screenToPlane(mx, my)
		factor := zoomWheelFactor
		if wy < 0 {
			factor = 1 / zoomWheelFactor
		}
		g.vs.ViewWidth /= factor
		ns := g.vs.ViewWidth / float64(g.w)
		g.vs.CenterX = re - (float64(mx)-float64(g.w)*0.5)*ns
		g.vs.CenterY = im - (float64(my)-float64(g.h)*0.5)*ns
		g.dirty = true
	}

	// Ctrl+click picks the orbit seed and suppresses panning.
	if g.showOrbit && ctrl && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.orbitRe, g.orbitIm = g.screenToPlane(mx, my)
		g.orbitActive = true
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !ctrl {
		g.panning = true
		g.panStartX, g.panStartY = mx, my
		g.panStartVS = g.vs
	}
	if g.panning {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			scale := g.panStartVS.ViewWidth / float64(g.w)
			g.vs.CenterX = g.panStartVS.CenterX - float64(mx-g.panStartX)*scale
			g.vs.CenterY = g.panStartVS.CenterY - float64(my-g.panStartY)*scale
			g.dirty = true
		} else {
			g.panning = false
		}
	}
}

func (g *game) exportPNG() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Image"),
		zenity.Filename("fractal.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "PNG images", Patterns: []string{"*.png"}}},
	)
	if err != nil {
		// Cancelled or dialog unavailable.
		return
	}
	f, err := os.Create(path)
	if err != nil {
		g.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	defer f.Close()
	if err := fractal.ExportSupersampledPNG(f, g.renderer, g.vs, g.w, g.h, exportFactor); err != nil {
		g.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	g.status = "exported " + path
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.dirty = true
	}
	if w <= 0 || h <= 0 {
		return
	}

	if g.dirty {
		g.buf.Resize(w, h)
		g.renderer.Render(g.vs, g.buf)
		if g.tex == nil || g.tex.Bounds().Dx() != w || g.tex.Bounds().Dy() != h {
			g.tex = ebiten.NewImage(w, h)
		}
		g.uploadPixels()
		g.dirty = false
	}

	if g.tex != nil {
		screen.DrawImage(g.tex, nil)
	}
	if g.showOrbit && g.orbitActive {
		g.drawOrbit(screen)
	}
	g.drawStatus(screen)
}

// uploadPixels copies the packed framebuffer into the texture. The
// 0xAABBGGRR packing is already RGBA in little-endian byte order.
func (g *game) uploadPixels() {
	need := len(g.buf.Pix) * 4
	if cap(g.pix) < need {
		g.pix = make([]byte, need)
	}
	g.pix = g.pix[:need]
	for i, p := range g.buf.Pix {
		o := i * 4
		g.pix[o+0] = byte(p)
		g.pix[o+1] = byte(p >> 8)
		g.pix[o+2] = byte(p >> 16)
		g.pix[o+3] = byte(p >> 24)
	}
	g.tex.WritePixels(g.pix)
}

func (g *game) drawOrbit(screen *ebiten.Image) {
	pts := fractal.ComputeOrbit(g.orbitRe, g.orbitIm, g.vs, orbitPoints)
	for k, pt := range pts {
		x, y := g.planeToScreen(real(pt), imag(pt))
		if k == 0 {
			vector.DrawFilledCircle(screen, x, y, 4, color.RGBA{R: 255, G: 80, B: 80, A: 230}, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, 2.5, color.RGBA{R: 255, G: 220, B: 50, A: 230}, true)
		}
	}
}

func (g *game) drawStatus(screen *ebiten.Image) {
	s := g.renderer.Stats()
	path := "scalar"
	if s.Vectorized {
		path = "vector"
		if s.FMA {
			path = "vector+fma"
		}
	}
	line := fmt.Sprintf("%s  zoom %.2fx  iter %d  %s  %s  %d threads  %.1f ms",
		g.vs.FractalName(), g.vs.Zoom(), g.vs.MaxIter,
		palette.Names[g.vs.Palette], path, s.Threads,
		float64(s.LastRender.Microseconds())/1000.0)
	if g.status != "" {
		line += "  |  " + g.status
	}
	ebitenutil.DebugPrintAt(screen, line, 8, h8(screen))
}

// h8 anchors the status line near the bottom edge.
func h8(screen *ebiten.Image) int {
	return screen.Bounds().Dy() - 20
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
