package spectral

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

type algofftBackend struct{}

// AlgoFFT returns the backend built on github.com/cwbudde/algo-fft.
//
// Cosine plans run a length-2n complex FFT over the even extension
// [x0 … x(n-1) x(n-1) … x0]; the quarter-sample phase shift turns its
// first n bins into the REDFT10 outputs.
func AlgoFFT() Backend {
	return algofftBackend{}
}

func (algofftBackend) Name() string { return "algofft" }

func (algofftBackend) NewFourier(n int) (Fourier, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	plan, err := algofft.NewPlanT[complex128](n)
	if err != nil {
		return nil, err
	}

	return &algofftFourier{
		n:    n,
		plan: plan,
		buf:  make([]complex128, n),
	}, nil
}

func (algofftBackend) NewCosine(n int) (Cosine, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	plan, err := algofft.NewPlanT[complex128](2 * n)
	if err != nil {
		return nil, err
	}

	shift := make([]complex128, n)
	for k := range shift {
		shift[k] = cmplx.Rect(1, -math.Pi*float64(k)/float64(2*n))
	}

	return &algofftCosine{
		n:     n,
		plan:  plan,
		shift: shift,
		buf:   make([]complex128, 2*n),
		out:   make([]complex128, 2*n),
	}, nil
}

type algofftFourier struct {
	n    int
	plan *algofft.Plan[complex128]
	buf  []complex128
}

func (f *algofftFourier) Len() int { return f.n }

func (f *algofftFourier) Forward(dst, src []complex128) error {
	if err := validatePair(dst, src, f.n); err != nil {
		return err
	}

	return f.plan.Forward(dst[:f.n], src[:f.n])
}

// Inverse uses conj(DFT(conj(x))) so the result is unnormalised whatever
// scaling the library applies in its own inverse.
func (f *algofftFourier) Inverse(dst, src []complex128) error {
	if err := validatePair(dst, src, f.n); err != nil {
		return err
	}

	for i := range f.n {
		f.buf[i] = cmplx.Conj(src[i])
	}

	if err := f.plan.Forward(f.buf, f.buf); err != nil {
		return err
	}

	for i := range f.n {
		dst[i] = cmplx.Conj(f.buf[i])
	}

	return nil
}

type algofftCosine struct {
	n     int
	plan  *algofft.Plan[complex128]
	shift []complex128 // e^{-iπk/(2n)}
	buf   []complex128
	out   []complex128
}

func (c *algofftCosine) Len() int { return c.n }

func (c *algofftCosine) Forward(dst, src []float64) error {
	if err := validatePair(dst, src, c.n); err != nil {
		return err
	}

	n := c.n
	for j := range n {
		c.buf[j] = complex(src[j], 0)
		c.buf[2*n-1-j] = complex(src[j], 0)
	}

	if err := c.plan.Forward(c.out, c.buf); err != nil {
		return err
	}

	for k := range n {
		dst[k] = real(c.shift[k] * c.out[k])
	}

	return nil
}

// Inverse evaluates the cosine series at the half-sample points as the real
// part of a zero-padded length-2n DFT of v[k]·e^{-iπk/(2n)}.
func (c *algofftCosine) Inverse(dst, src []float64) error {
	if err := validatePair(dst, src, c.n); err != nil {
		return err
	}

	n := c.n
	c.buf[0] = complex(src[0], 0)
	for k := 1; k < n; k++ {
		c.buf[k] = complex(2*src[k], 0) * c.shift[k]
	}

	for k := n; k < 2*n; k++ {
		c.buf[k] = 0
	}

	if err := c.plan.Forward(c.out, c.buf); err != nil {
		return err
	}

	for j := range n {
		dst[j] = real(c.out[j])
	}

	return nil
}
