package fractal

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/mikolajpod/fractal-xplorer/internal/kernel"
	"github.com/mikolajpod/fractal-xplorer/internal/palette"
	"github.com/mikolajpod/fractal-xplorer/internal/parallel"
	"github.com/mikolajpod/fractal-xplorer/internal/wide"
)

// Option configures a Renderer during creation.
type Option func(*rendererOptions)

type rendererOptions struct {
	threads    int
	vectorized bool
	logger     *slog.Logger
}

// WithThreads sets the worker count. Non-positive counts select
// GOMAXPROCS.
func WithThreads(n int) Option {
	return func(o *rendererOptions) {
		o.threads = n
	}
}

// WithVectorized enables or disables the 4-wide batched kernels.
// Disabled, every pixel goes through the scalar kernels; useful for
// benchmarking and debugging.
func WithVectorized(v bool) Option {
	return func(o *rendererOptions) {
		o.vectorized = v
	}
}

// WithLogger sets a renderer-specific logger, overriding the
// package-wide one.
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.logger = l
	}
}

// Stats describes the most recent render.
type Stats struct {
	// LastRender is the wall-clock duration of the last Render call.
	LastRender time.Duration
	// Vectorized reports whether the batched kernels are in use.
	Vectorized bool
	// FMA reports whether the fused multiply-add kernel tier is
	// selected.
	FMA bool
	// Threads is the current worker count.
	Threads int
}

// Renderer renders ViewStates into PixelBuffers using a worker pool
// and the batched kernels. Create with NewRenderer and release with
// Close.
//
// A Renderer is not safe for concurrent Render calls; the explorer and
// benchmark drive one render at a time.
type Renderer struct {
	pool       *parallel.WorkerPool
	threads    int
	vectorized bool
	fma        bool
	tables     *palette.Tables
	log        *slog.Logger

	lastRender time.Duration
}

// NewRenderer creates a renderer, probing CPU capability for the FMA
// kernel tier and starting the worker pool.
func NewRenderer(opts ...Option) *Renderer {
	o := rendererOptions{vectorized: true}
	for _, opt := range opts {
		opt(&o)
	}

	threads := o.threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	r := &Renderer{
		pool:       parallel.NewWorkerPool(threads),
		threads:    threads,
		vectorized: o.vectorized,
		fma:        wide.HasFMA(),
		tables:     palette.Build(),
		log:        log,
	}
	r.log.Info("renderer created",
		"threads", threads, "vectorized", r.vectorized, "fma", r.fma)
	return r
}

// Close releases the worker pool. The renderer must not be used after
// Close.
func (r *Renderer) Close() {
	r.pool.Close()
}

// SetThreadCount rebuilds the worker pool with n workers. Non-positive
// counts select GOMAXPROCS. Must not be called during a Render.
func (r *Renderer) SetThreadCount(n int) {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	if n == r.threads {
		return
	}
	r.pool.Close()
	r.pool = parallel.NewWorkerPool(n)
	r.threads = n
	r.log.Info("worker pool rebuilt", "threads", n)
}

// SetVectorized switches between the batched and the all-scalar
// render paths.
func (r *Renderer) SetVectorized(v bool) {
	r.vectorized = v
}

// Stats returns the timing and configuration of the last render.
func (r *Renderer) Stats() Stats {
	return Stats{
		LastRender: r.lastRender,
		Vectorized: r.vectorized,
		FMA:        r.fma,
		Threads:    r.threads,
	}
}

// Render draws the view into buf, blocking until every tile is done.
// An empty buffer is a silent no-op. The buffer is written tile by
// tile from multiple workers; regions are disjoint, so buf must simply
// not be read or resized concurrently.
func (r *Renderer) Render(vs ViewState, buf *PixelBuffer) {
	if buf.Width <= 0 || buf.Height <= 0 {
		return
	}

	start := time.Now()
	tiles := parallel.Partition(buf.Width, buf.Height)
	jobs := make([]func(), len(tiles))
	for i, t := range tiles {
		tile := t
		jobs[i] = func() {
			r.renderTile(vs, buf, tile)
		}
	}
	r.pool.ExecuteAll(jobs)
	r.lastRender = time.Since(start)

	r.log.Debug("render complete",
		"width", buf.Width, "height", buf.Height,
		"tiles", len(tiles), "elapsed", r.lastRender)
}

// renderTile renders one tile. Rows walk the tile left to right in
// 4-pixel batches with a scalar remainder; with vectorization disabled
// the whole row is scalar.
func (r *Renderer) renderTile(vs ViewState, buf *PixelBuffer, tile parallel.Tile) {
	w, h := buf.Width, buf.Height
	scale := vs.ViewWidth / float64(w)
	x0 := vs.CenterX - float64(w)*0.5*scale
	y0 := vs.CenterY - float64(h)*0.5*scale

	p := vs.params()
	lyap := vs.ColorMode != ColorSmooth

	var (
		batch   wide.BatchFunc
		lbatch  wide.LyapBatchFunc
		scalar  kernel.IterFunc
		lscalar kernel.LyapFunc
	)
	// Scalar and batch dispatch apply identical exponent promotions,
	// so a single promoted Params serves both paths.
	if lyap {
		lbatch, _ = wide.SelectLyapunov(vs.Formula, vs.JuliaMode, r.fma, p)
		lscalar, p = kernel.SelectLyapunov(vs.Formula, vs.JuliaMode, p)
	} else {
		batch, _ = wide.Select(vs.Formula, vs.JuliaMode, r.fma, p)
		scalar, p = kernel.Select(vs.Formula, vs.JuliaMode, p)
	}

	for py := tile.Y; py < tile.Y+tile.H; py++ {
		im := y0 + float64(py)*scale
		row := buf.Pix[py*w : py*w+w]

		px := tile.X
		end := tile.X + tile.W

		if r.vectorized {
			for ; px+wide.Lanes <= end; px += wide.Lanes {
				re0 := x0 + float64(px)*scale
				if lyap {
					var smooth, lambda [wide.Lanes]float64
					lbatch(re0, scale, im, p, &smooth, &lambda)
					for k := 0; k < wide.Lanes; k++ {
						row[px+k] = r.pixel(vs, smooth[k], lambda[k])
					}
				} else {
					var smooth [wide.Lanes]float64
					batch(re0, scale, im, p, &smooth)
					for k := 0; k < wide.Lanes; k++ {
						row[px+k] = r.tables.Color(smooth[k], vs.MaxIter, vs.Palette, vs.PalOffset)
					}
				}
			}
		}

		for ; px < end; px++ {
			re := x0 + float64(px)*scale
			if lyap {
				smooth, lambda := lscalar(re, im, p)
				row[px] = r.pixel(vs, smooth, lambda)
			} else {
				row[px] = r.tables.Color(scalar(re, im, p), vs.MaxIter, vs.Palette, vs.PalOffset)
			}
		}
	}
}

// pixel maps a (smooth, lambda) pair to a color under the Lyapunov
// modes: the full mode colors everything by lambda, the interior mode
// only the points the escape coloring would paint black.
func (r *Renderer) pixel(vs ViewState, smooth, lambda float64) uint32 {
	if vs.ColorMode == ColorLyapunovFull || smooth >= float64(vs.MaxIter) {
		return r.tables.Lyapunov(lambda, vs.Palette, vs.PalOffset)
	}
	return r.tables.Color(smooth, vs.MaxIter, vs.Palette, vs.PalOffset)
}
