package spectral

import (
	"math"
	"math/cmplx"

	"github.com/google/go-cmp/cmp"
)

func approxComplex(tol float64) cmp.Option {
	return cmp.Comparer(func(a, b complex128) bool {
		return cmplx.Abs(a-b) <= tol
	})
}

func naiveDFT(src []complex128, sign float64) []complex128 {
	n := len(src)
	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for j, v := range src {
			sum += v * cmplx.Rect(1, sign*2*math.Pi*float64(j*k)/float64(n))
		}
		out[k] = sum
	}

	return out
}

func naiveREDFT10(src []float64) []float64 {
	n := len(src)
	out := make([]float64, n)
	for k := range n {
		sum := 0.0
		for j, v := range src {
			sum += v * math.Cos(math.Pi*float64(k*(2*j+1))/float64(2*n))
		}
		out[k] = 2 * sum
	}

	return out
}

func naiveREDFT01(src []float64) []float64 {
	n := len(src)
	out := make([]float64, n)
	for j := range n {
		sum := src[0]
		for k := 1; k < n; k++ {
			sum += 2 * src[k] * math.Cos(math.Pi*float64(k*(2*j+1))/float64(2*n))
		}
		out[j] = sum
	}

	return out
}
