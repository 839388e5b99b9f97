package algosht

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sht/internal/vec"
)

// MakeWeights returns the 4B quadrature weights of the bandwidth-b
// equiangular grid.
//
// For j < 2B:
//
//	w[j] = (2/B)·sin(θ_j)·Σ_{k<B} sin((2j+1)(2k+1)π/(4B)) / (2k+1)
//
// and w[j+2B] = w[j]·sin(θ_j). The first half integrates even orders, the
// second half odd orders, whose Legendre series carry one factor of sin θ
// less. The result depends only on b.
//
// Returns ErrInvalidBandwidth if b < 1.
func MakeWeights(b int) ([]float64, error) {
	if b < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBandwidth, b)
	}

	n := GridSize(b)
	fudge := math.Pi / float64(4*b)

	invOdd := make([]float64, b)
	for k := range invOdd {
		invOdd[k] = 1 / float64(2*k+1)
	}

	angles := make([]float64, b)
	sines := make([]float64, b)

	theta := make([]float64, n)
	sinTheta := make([]float64, n)
	for j := range theta {
		theta[j] = float64(2*j+1) * fudge
	}

	vec.Sin(theta, sinTheta)

	w := make([]float64, NumWeights(b))
	for j := range n {
		for k := range angles {
			angles[k] = float64((2*j+1)*(2*k+1)) * fudge
		}

		vec.Sin(angles, sines)

		w[j] = 2 / float64(b) * sinTheta[j] * vec.Dot(sines, invOdd)
		w[j+n] = w[j] * sinTheta[j]
	}

	return w, nil
}
