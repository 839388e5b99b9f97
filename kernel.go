package algosht

import (
	"fmt"

	mathx "github.com/cwbudde/algo-sht/internal/math"
	"github.com/cwbudde/algo-sht/internal/vec"
)

// project runs the semi-naive projection over the staged longitude
// spectra and writes every (l, m) coefficient into dst.
//
// For order m the staged series of FFT bin m (or 2B-|m| for m < 0) is
// scaled by √(2π)/2B, weighted by the parity-matched half of the
// quadrature weights and cosine transformed. Coefficient (l, m) is then
// half the inner product of that spectrum with the cosine series of
// Q_l^|m| over its first l+1 terms.
func (t *Transformer) project(dst *Coefficients, format DataFormat) error {
	b := t.bandwidth
	n := GridSize(b)
	scale := mathx.SqrtTwoPi / float64(n)

	for m := range b {
		if err := t.series.table(t.table, m, b); err != nil {
			return fmt.Errorf("algosht: legendre series for order %d: %w", m, err)
		}

		w := t.weights[:n]
		if m%2 == 1 {
			w = t.weights[n : 2*n]
		}

		if err := t.projectOrder(dst, m, m, w, scale); err != nil {
			return err
		}

		if m == 0 || format == Real {
			continue
		}

		if err := t.projectOrder(dst, -m, n-m, w, scale); err != nil {
			return err
		}
	}

	if format == Real {
		mirrorNegativeOrders(dst)
	}

	return nil
}

// projectOrder projects staged FFT bin row onto Q_l^|m|, l = |m| … B-1.
func (t *Transformer) projectOrder(dst *Coefficients, m, row int, w []float64, scale float64) error {
	b := t.bandwidth
	n := GridSize(b)

	vec.ScaledMul(t.weightedRe, t.stagedRe[row*n:(row+1)*n], w, scale)
	vec.ScaledMul(t.weightedIm, t.stagedIm[row*n:(row+1)*n], w, scale)

	if err := t.plan.cosine.Forward(t.projRe, t.weightedRe); err != nil {
		return fmt.Errorf("algosht: colatitude transform of order %d: %w", m, err)
	}

	if err := t.plan.cosine.Forward(t.projIm, t.weightedIm); err != nil {
		return fmt.Errorf("algosht: colatitude transform of order %d: %w", m, err)
	}

	am := m
	half := 0.5

	if m < 0 {
		am = -m
		if am%2 == 1 {
			half = -half
		}
	}

	for l := am; l < b; l++ {
		series := t.table[(l-am)*n : (l-am)*n+l+1]
		i := Index(m, l, b)
		dst.Re[i] = half * vec.Dot(series, t.projRe[:l+1])
		dst.Im[i] = half * vec.Dot(series, t.projIm[:l+1])
	}

	return nil
}

// mirrorNegativeOrders fills the negative orders of a real function's
// coefficients from f(l, -m) = (-1)^m·conj(f(l, m)).
func mirrorNegativeOrders(c *Coefficients) {
	b := c.Bandwidth

	for m := 1; m < b; m++ {
		sign := 1.0
		if m%2 == 1 {
			sign = -1
		}

		for l := m; l < b; l++ {
			pos := Index(m, l, b)
			neg := Index(-m, l, b)
			c.Re[neg] = sign * c.Re[pos]
			c.Im[neg] = -sign * c.Im[pos]
		}
	}
}
