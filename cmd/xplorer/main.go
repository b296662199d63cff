// Command xplorer is an interactive fractal explorer.
//
// Controls:
//
//	drag            pan
//	wheel           zoom (centered on cursor)
//	ctrl+click      pick orbit seed
//	arrows          pan by 10% of the view
//	+ / -           zoom in / out
//	PgUp / PgDn     double / halve iteration limit
//	F / Shift+F     cycle formula
//	J               toggle Julia mode
//	P / Shift+P     cycle palette
//	C               cycle color mode
//	O               toggle orbit overlay
//	[ / ]           integer exponent down / up
//	R               reset view (keeps parameters)
//	V               toggle vectorized kernels
//	1-9, 0          thread count (0 = auto)
//	Ctrl+S          export PNG
//
// Run with --benchmark for the non-interactive throughput report and
// --no-vector to force the scalar kernels.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	fractal "github.com/mikolajpod/fractal-xplorer"
)

func main() {
	benchmark := flag.Bool("benchmark", false, "run the CLI benchmark and exit")
	noVector := flag.Bool("no-vector", false, "disable the 4-wide batched kernels")
	verbose := flag.Bool("verbose", false, "log renderer diagnostics to stderr")
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *benchmark {
		runBenchmark(!*noVector)
		return
	}

	g := newGame(!*noVector)
	defer g.Close()

	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowTitle("Fractal Xplorer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
