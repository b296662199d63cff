package wide

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HasFMA reports whether the CPU fuses multiply-add natively, making
// the enhanced math.FMA kernel tier worthwhile. Consulted once at
// renderer construction; callers may override the result for testing
// and benchmarking.
func HasFMA() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasFMA && cpu.X86.HasAVX2
	case "arm64":
		// ARMv8 mandates fused multiply-add.
		return true
	}
	return false
}
