package main

import (
	"fmt"
	"sort"
	"time"

	fractal "github.com/mikolajpod/fractal-xplorer"
)

const (
	benchWidth  = 1920
	benchHeight = 1080
	benchRuns   = 4
	benchBestN  = 2
)

type benchCase struct {
	label       string
	formula     fractal.Formula
	juliaMode   bool
	intExp      int
	realExp     float64
	forceScalar bool
}

var benchCases = []benchCase{
	// Vector path.
	{"Mandelbrot", fractal.Standard, false, 2, 2.0, false},
	{"Julia", fractal.Standard, true, 2, 2.0, false},
	{"Burning Ship", fractal.BurningShip, false, 2, 2.0, false},
	{"Celtic", fractal.Celtic, false, 2, 2.0, false},
	{"Buffalo", fractal.Buffalo, false, 2, 2.0, false},
	{"Mandelbar (n=2)", fractal.Mandelbar, false, 2, 2.0, false},
	{"Multibrot (n=3)", fractal.MultiFast, false, 3, 3.0, false},
	{"Multibrot (r=3.5, slow)", fractal.MultiSlow, false, 2, 3.5, false},
	// Scalar path.
	{"Mandelbrot", fractal.Standard, false, 2, 2.0, true},
	{"Julia", fractal.Standard, true, 2, 2.0, true},
	{"Burning Ship", fractal.BurningShip, false, 2, 2.0, true},
	{"Celtic", fractal.Celtic, false, 2, 2.0, true},
	{"Buffalo", fractal.Buffalo, false, 2, 2.0, true},
	{"Mandelbar (n=2)", fractal.Mandelbar, false, 2, 2.0, true},
	{"Multibrot (n=3)", fractal.MultiFast, false, 3, 3.0, true},
	{"Multibrot (r=3.5, slow)", fractal.MultiSlow, false, 2, 3.5, true},
}

// runBenchmark renders each case benchRuns times on a single worker
// and reports throughput averaged over the benchBestN fastest runs.
func runBenchmark(vector bool) {
	r := fractal.NewRenderer(fractal.WithThreads(1), fractal.WithVectorized(vector))
	defer r.Close()

	buf := fractal.NewPixelBuffer(benchWidth, benchHeight)

	fmt.Println("Fractal Xplorer CLI Benchmark")
	fmt.Printf("%dx%d, 256 iter, 1 thread, %d runs (avg best %d)\n",
		benchWidth, benchHeight, benchRuns, benchBestN)
	fmt.Printf("FMA tier: %v\n\n", r.Stats().FMA)
	fmt.Printf("%-30s %-10s %s\n", "Label", "Path", "Mpix/s")
	fmt.Println("------------------------------------------------")

	for _, c := range benchCases {
		vs := fractal.DefaultView()
		vs.CenterX = -0.5
		vs.CenterY = 0.0
		vs.ViewWidth = 3.5
		vs.MaxIter = 256
		vs.Formula = c.formula
		vs.JuliaMode = c.juliaMode
		vs.IntExp = c.intExp
		vs.RealExp = c.realExp

		r.SetVectorized(vector && !c.forceScalar)

		// Warm-up.
		r.Render(vs, buf)

		times := make([]time.Duration, benchRuns)
		for i := range times {
			r.Render(vs, buf)
			times[i] = r.Stats().LastRender
		}
		sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

		var avg time.Duration
		for _, t := range times[:benchBestN] {
			avg += t
		}
		avg /= benchBestN

		mpixs := float64(benchWidth*benchHeight) / avg.Seconds() / 1e6

		path := "scalar"
		if vector && !c.forceScalar {
			path = "vector"
		}
		fmt.Printf("%-30s %-10s %6.2f\n", c.label, path, mpixs)
	}
}
