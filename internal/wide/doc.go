// Package wide implements the 4-wide batched fractal kernels.
//
// Each batch call processes 4 horizontally-adjacent pixels of one row:
// the lanes share the imaginary coordinate and differ in the real
// coordinate by a fixed per-pixel step. Per-lane active masks track
// which points have escaped; an escaped lane's z is frozen and its
// squared magnitude and iteration count latched, while the remaining
// lanes keep iterating. A batch exits early once all lanes have
// escaped.
//
// The kernels are built from simple loops over fixed-size arrays
// (F64x4) so the compiler is free to auto-vectorize; no assembly, no
// unsafe. Results must match the scalar kernels in internal/kernel
// within 1e-9 relative error; the scalar package is the correctness
// baseline and the tests here compare lane by lane against it.
//
// Two precision tiers exist: the baseline tier uses plain
// multiply/add, the enhanced tier routes the inner products through
// math.FMA. The enhanced tier is only worth selecting on CPUs with
// native fused multiply-add (HasFMA); without hardware support
// math.FMA falls back to a slow software emulation.
package wide
