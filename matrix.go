package algosht

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FST computes the forward transform of a grid held in gonum matrices.
// Row j of re is colatitude θ_j and column k is longitude φ_k. A nil im
// marks the samples as real.
//
// The grid must be square (ErrNotSquare) with an even side 2B
// (ErrOddSize) and B ≥ 1 (ErrInvalidBandwidth). A non-nil im must have the
// same shape as re (ErrShapeMismatch). Validation happens before any
// buffer is allocated.
func FST(re, im mat.Matrix) (*Coefficients, error) {
	if re == nil {
		return nil, ErrNilSlice
	}

	b, err := gridBandwidth(re)
	if err != nil {
		return nil, err
	}

	if im != nil {
		r, c := im.Dims()
		side := GridSize(b)

		if r != side || c != side {
			return nil, fmt.Errorf("%w: real %dx%d, imaginary %dx%d", ErrShapeMismatch, side, side, r, c)
		}
	}

	t, err := NewTransformer(b)
	if err != nil {
		return nil, err
	}

	coeffs, err := NewCoefficients(b)
	if err != nil {
		return nil, err
	}

	var imData []float64
	if im != nil {
		imData = denseData(im)
	}

	if err := t.Forward(coeffs, denseData(re), imData); err != nil {
		return nil, err
	}

	return coeffs, nil
}

// InvFST synthesises the grid of c as a pair of 2B×2B matrices.
func InvFST(c *Coefficients) (re, im *mat.Dense, err error) {
	if c == nil {
		return nil, nil, ErrNilSlice
	}

	t, err := NewTransformer(c.Bandwidth)
	if err != nil {
		return nil, nil, err
	}

	side := GridSize(c.Bandwidth)
	reData := make([]float64, side*side)
	imData := make([]float64, side*side)

	if err := t.Inverse(reData, imData, c); err != nil {
		return nil, nil, err
	}

	return mat.NewDense(side, side, reData), mat.NewDense(side, side, imData), nil
}

// gridBandwidth derives B from the shape of a 2B×2B grid.
func gridBandwidth(m mat.Matrix) (int, error) {
	r, c := m.Dims()

	if r != c {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}

	if r%2 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrOddSize, r)
	}

	b := r / 2
	if err := checkBandwidth(b); err != nil {
		return 0, err
	}

	return b, nil
}

// denseData returns the row-major samples of m.
func denseData(m mat.Matrix) []float64 {
	r, c := m.Dims()
	data := make([]float64, r*c)
	mat.NewDense(r, c, data).Copy(m)

	return data
}
