package algosht

import (
	"fmt"
	"math"

	mathx "github.com/cwbudde/algo-sht/internal/math"
	"github.com/cwbudde/algo-sht/internal/vec"
)

// Colatitudes returns θ_j = π(2j+1)/(4B) for j = 0 … 2B-1.
func Colatitudes(b int) ([]float64, error) {
	if b < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBandwidth, b)
	}

	theta := make([]float64, GridSize(b))
	for j := range theta {
		theta[j] = math.Pi * float64(2*j+1) / float64(4*b)
	}

	return theta, nil
}

// Longitudes returns φ_k = 2πk/(2B) for k = 0 … 2B-1.
func Longitudes(b int) ([]float64, error) {
	if b < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBandwidth, b)
	}

	n := GridSize(b)

	phi := make([]float64, n)
	for k := range phi {
		phi[k] = mathx.TwoPi * float64(k) / float64(n)
	}

	return phi, nil
}

// SampleGrid evaluates f at every grid point and returns the row-major
// real and imaginary planes.
func SampleGrid(b int, f func(theta, phi float64) complex128) (re, im []float64, err error) {
	theta, err := Colatitudes(b)
	if err != nil {
		return nil, nil, err
	}

	phi, err := Longitudes(b)
	if err != nil {
		return nil, nil, err
	}

	n := len(theta)
	re = make([]float64, n*n)
	im = make([]float64, n*n)

	for j, t := range theta {
		for k, p := range phi {
			v := f(t, p)
			re[j*n+k] = real(v)
			im[j*n+k] = imag(v)
		}
	}

	return re, im, nil
}

// gridSines returns sin θ_j for the grid colatitudes.
func gridSines(b int) []float64 {
	theta, _ := Colatitudes(b)

	sin := make([]float64, len(theta))
	vec.Sin(theta, sin)

	return sin
}
