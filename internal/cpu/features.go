package cpu

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Features describes the vector capabilities relevant to the transform kernels.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// HasSIMD reports whether any supported vector extension is available.
func (f Features) HasSIMD() bool {
	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}

// String returns the widest supported extension name.
func (f Features) String() string {
	switch {
	case f.HasAVX512:
		return "avx512"
	case f.HasAVX2:
		return "avx2"
	case f.HasNEON:
		return "neon"
	case f.HasSSE2:
		return "sse2"
	default:
		return "generic"
	}
}

var forceGeneric atomic.Bool

// SetForceGeneric disables SIMD dispatch when set. Used by tests and the
// bench command to compare code paths.
func SetForceGeneric(force bool) {
	forceGeneric.Store(force)
}

// DetectFeatures reports the CPU features for the current process.
func DetectFeatures() Features {
	if forceGeneric.Load() {
		return Features{Architecture: runtime.GOARCH}
	}

	return detected
}

var detected = Features{
	HasSSE2:      cpu.X86.HasSSE2,
	HasAVX2:      cpu.X86.HasAVX2 && cpu.X86.HasFMA,
	HasAVX512:    cpu.X86.HasAVX512F,
	HasNEON:      cpu.ARM64.HasASIMD,
	Architecture: runtime.GOARCH,
}
