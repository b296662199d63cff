package wide

// Lanes is the batch width: pixels processed per kernel call.
const Lanes = 4

// F64x4 holds 4 float64 lanes for SIMD-style operations.
// Fixed-size arrays with simple loops keep the element operations
// auto-vectorizable by the compiler.
type F64x4 [Lanes]float64

// Splat creates an F64x4 with all lanes set to n.
func Splat(n float64) F64x4 {
	var v F64x4
	for l := range v {
		v[l] = n
	}
	return v
}

// Ramp creates an F64x4 with lane l set to start + l·step.
// This is how a batch derives its 4 real coordinates from the leftmost
// pixel and the per-pixel step.
func Ramp(start, step float64) F64x4 {
	var v F64x4
	for l := range v {
		v[l] = start + float64(l)*step
	}
	return v
}
