package algosht

import (
	"math"

	mathx "github.com/cwbudde/algo-sht/internal/math"
	"github.com/cwbudde/algo-sht/internal/vec"
	"github.com/cwbudde/algo-sht/spectral"
)

// Legendre returns the associated Legendre function P̃_l^m(cos θ),
// normalised so that ∫_{-1}^{1} P̃_l^m(x)² dx = 1 and without the
// Condon-Shortley phase. Negative m is treated as |m|; l < |m| gives 0.
func Legendre(l, m int, theta float64) float64 {
	if m < 0 {
		m = -m
	}

	if l < m {
		return 0
	}

	x := math.Cos(theta)
	prev := 0.0
	cur := startNorm(m) * math.Pow(math.Sin(theta), float64(m))

	for k := m; k < l; k++ {
		a, b := recurrence(k, m)
		prev, cur = cur, a*x*cur-b*prev
	}

	return cur
}

// startNorm returns c_m in P̃_m^m(cos θ) = c_m·sin^m θ.
func startNorm(m int) float64 {
	c := mathx.InvSqrt2
	for i := 1; i <= m; i++ {
		c *= math.Sqrt(float64(2*i+1) / float64(2*i))
	}

	return c
}

// recurrence returns a and b in P̃_{l+1}^m = a·x·P̃_l^m − b·P̃_{l-1}^m.
// b is 0 at l == m, where P̃_{l-1}^m does not exist.
func recurrence(l, m int) (a, b float64) {
	den := float64(l+1-m) * float64(l+1+m)
	a = math.Sqrt(float64(2*l+1) * float64(2*l+3) / den)

	if l == m {
		return a, 0
	}

	b = math.Sqrt(float64(2*l+3) * float64(l-m) * float64(l+m) / (float64(2*l-1) * den))

	return a, b
}

// legendreSeries builds, for one order m, the cosine series of
//
//	Q_l^m(θ) = P̃_l^m(cos θ)            (m even)
//	Q_l^m(θ) = P̃_l^m(cos θ) / sin θ    (m odd)
//
// for l = m … B-1. Each Q_l^m is a cosine polynomial of degree ≤ l, so a
// length-2B series represents it exactly and the projection of a REDFT10
// spectrum onto it needs only the first l+1 terms.
type legendreSeries struct {
	n      int
	cosine spectral.Cosine
	sin    []float64 // sin θ_j
	sample []float64
	shift  []float64
}

// table writes the series of Q_m^m … Q_{b-1}^m into consecutive rows of
// length n of dst. dst must hold (b-m)·n values.
func (g *legendreSeries) table(dst []float64, m, b int) error {
	n := g.n

	// sin^m θ for even m, sin^(m-1) θ for odd m.
	power := float64(m - m%2)
	c := startNorm(m)
	for j, s := range g.sin {
		g.sample[j] = c * math.Pow(s, power)
	}

	first := dst[:n]
	if err := g.cosine.Forward(first, g.sample); err != nil {
		return err
	}

	first[0] /= float64(2 * n)
	for k := 1; k < n; k++ {
		first[k] /= float64(n)
	}

	for l := m; l < b-1; l++ {
		row := l - m
		cur := dst[row*n : (row+1)*n]
		next := dst[(row+1)*n : (row+2)*n]

		mulCos(g.shift, cur)

		a, bl := recurrence(l, m)
		if l == m {
			vec.Axpby(next, a, g.shift, 0, g.shift)
			continue
		}

		prev := dst[(row-1)*n : row*n]
		vec.Axpby(next, a, g.shift, -bl, prev)
	}

	return nil
}

// mulCos multiplies the cosine series c by cos θ:
// cos θ·cos kθ = (cos (k-1)θ + cos (k+1)θ)/2.
func mulCos(dst, c []float64) {
	n := len(c)
	clear(dst[:n])

	if n > 1 {
		dst[1] += c[0]
	}

	for k := 1; k < n; k++ {
		half := 0.5 * c[k]
		dst[k-1] += half

		if k+1 < n {
			dst[k+1] += half
		}
	}
}
