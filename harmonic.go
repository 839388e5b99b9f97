package algosht

import (
	"fmt"
	"math/cmplx"

	mathx "github.com/cwbudde/algo-sht/internal/math"
)

// SphericalHarmonic returns Y_l^m(θ, φ) = P̃_l^m(cos θ)·e^{imφ}/√(2π) for
// m ≥ 0 and Y_l^m = (-1)^m·conj(Y_l^{|m|}) for m < 0. These are the basis
// functions the transform projects onto: sampling Y_l^m on the grid of any
// bandwidth B > l and transforming it yields 1 at Index(m, l, B) and 0
// elsewhere.
func SphericalHarmonic(l, m int, theta, phi float64) complex128 {
	am := m
	if am < 0 {
		am = -am
	}

	p := Legendre(l, am, theta) / mathx.SqrtTwoPi
	y := cmplx.Rect(p, float64(am)*phi)

	if m < 0 {
		y = cmplx.Conj(y)
		if am%2 == 1 {
			y = -y
		}
	}

	return y
}

// SynthesizeHarmonic samples a single Y_l^m on the bandwidth-b grid.
func SynthesizeHarmonic(b, l, m int) (re, im []float64, err error) {
	if l < 0 || l >= b || m < -l || m > l {
		return nil, nil, fmt.Errorf("%w: degree %d order %d outside bandwidth %d", ErrInvalidDegree, l, m, b)
	}

	return SampleGrid(b, func(theta, phi float64) complex128 {
		return SphericalHarmonic(l, m, theta, phi)
	})
}
