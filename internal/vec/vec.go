// Package vec provides the inner loops of the transform kernels.
//
// Dot and Sin go through go-highway's dispatched contrib packages, which
// select AVX2/AVX-512 kernels at run time when built with SIMD support and
// plain loops otherwise. ScaledMul and Axpby are plain loops; none of the
// functions allocate.
package vec

import (
	"github.com/ajroetker/go-highway/hwy/contrib/algo"
	"github.com/ajroetker/go-highway/hwy/contrib/dot"

	"github.com/cwbudde/algo-sht/internal/cpu"
)

// Dot returns the inner product of a and b over their common length.
func Dot(a, b []float64) float64 {
	if cpu.DetectFeatures().HasSIMD() {
		return dot.Dot64(a, b)
	}

	n := min(len(a), len(b))
	sum := 0.0
	for i := range n {
		sum += a[i] * b[i]
	}

	return sum
}

// ScaledMul writes s*a[i]*b[i] into dst.
func ScaledMul(dst, a, b []float64, s float64) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = s * a[i] * b[i]
	}
}

// Axpby writes alpha*x[i] + beta*y[i] into dst. dst may alias x or y.
func Axpby(dst []float64, alpha float64, x []float64, beta float64, y []float64) {
	n := min(len(dst), len(x), len(y))
	for i := range n {
		dst[i] = alpha*x[i] + beta*y[i]
	}
}

// Sin fills out with the sine of each angle.
func Sin(angles, out []float64) {
	algo.SinTransform64(angles, out)
}
