// Package fractal is a CPU escape-time fractal rendering engine.
//
// The package renders seven fractal formula families (Mandelbrot,
// Burning Ship, Celtic, Buffalo, Mandelbar, and integer/real-exponent
// Multibrot), each in default or Julia seeding, into a caller-owned
// pixel buffer. Rendering is tile-parallel across a worker pool and
// uses 4-wide batched kernels on the hot path, with scalar kernels
// covering row remainders and serving as the correctness baseline.
//
// Basic usage:
//
//	r := fractal.NewRenderer()
//	defer r.Close()
//
//	vs := fractal.DefaultView()
//	buf := fractal.NewPixelBuffer(1920, 1080)
//	r.Render(vs, buf)
//	img := buf.Image()
//
// Pixels are packed 0xAABBGGRR with alpha always 0xFF. Exterior points
// are colored by the smooth iteration count through one of eight
// palettes; two alternative modes color by the orbit's Lyapunov
// exponent. See ViewState for the full set of parameters.
//
// The package produces no log output by default; call SetLogger to
// enable diagnostics.
package fractal
