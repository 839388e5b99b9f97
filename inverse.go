package algosht

import (
	"fmt"

	mathx "github.com/cwbudde/algo-sht/internal/math"
	"github.com/cwbudde/algo-sht/internal/vec"
)

// Inverse synthesises the 2B×2B grid (re, im) from the packed
// coefficients c, the inverse of Forward for band-limited functions.
//
// For each order m the Legendre sum Σ_l f(l, m)·P̃_l^|m|(cos θ_j) is
// accumulated as a cosine series, evaluated at the grid colatitudes by
// REDFT01 and multiplied by sin θ_j for odd m. An unnormalised inverse DFT
// along each row then restores the longitude dependence.
func (t *Transformer) Inverse(re, im []float64, c *Coefficients) error {
	b := t.bandwidth
	n := GridSize(b)

	if err := c.validate(b); err != nil {
		return err
	}

	if re == nil || im == nil {
		return ErrNilSlice
	}

	if len(re) != n*n || len(im) != n*n {
		return fmt.Errorf("%w: grid planes %d/%d, want %d", ErrLengthMismatch, len(re), len(im), n*n)
	}

	// Bin B (the Nyquist order) carries nothing for a bandwidth-B function.
	clear(t.stagedRe)
	clear(t.stagedIm)

	for m := range b {
		if err := t.series.table(t.table, m, b); err != nil {
			return fmt.Errorf("algosht: legendre series for order %d: %w", m, err)
		}

		if err := t.synthesizeOrder(c, m, m); err != nil {
			return err
		}

		if m == 0 {
			continue
		}

		if err := t.synthesizeOrder(c, -m, n-m); err != nil {
			return err
		}
	}

	return t.plan.inverseLongitude(re, im, t.stagedRe, t.stagedIm)
}

// synthesizeOrder writes the colatitude samples of order m into staged
// FFT bin row.
func (t *Transformer) synthesizeOrder(c *Coefficients, m, row int) error {
	b := t.bandwidth
	n := GridSize(b)

	am := m
	if am < 0 {
		am = -am
	}

	accRe := t.weightedRe
	accIm := t.weightedIm
	clear(accRe)
	clear(accIm)

	for l := am; l < b; l++ {
		series := t.table[(l-am)*n : (l-am+1)*n]
		i := Index(m, l, b)
		vec.Axpby(accRe, 1, accRe, c.Re[i], series)
		vec.Axpby(accIm, 1, accIm, c.Im[i], series)
	}

	// REDFT01 doubles every term but the first.
	for k := 1; k < n; k++ {
		accRe[k] *= 0.5
		accIm[k] *= 0.5
	}

	outRe := t.stagedRe[row*n : (row+1)*n]
	outIm := t.stagedIm[row*n : (row+1)*n]

	if err := t.plan.cosine.Inverse(outRe, accRe); err != nil {
		return fmt.Errorf("algosht: colatitude synthesis of order %d: %w", m, err)
	}

	if err := t.plan.cosine.Inverse(outIm, accIm); err != nil {
		return fmt.Errorf("algosht: colatitude synthesis of order %d: %w", m, err)
	}

	scale := 1 / mathx.SqrtTwoPi
	if m < 0 && am%2 == 1 {
		scale = -scale
	}

	if am%2 == 1 {
		vec.ScaledMul(outRe, outRe, t.series.sin, scale)
		vec.ScaledMul(outIm, outIm, t.series.sin, scale)

		return nil
	}

	for j := range outRe {
		outRe[j] *= scale
		outIm[j] *= scale
	}

	return nil
}
