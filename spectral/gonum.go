package spectral

import "gonum.org/v1/gonum/dsp/fourier"

type gonumBackend struct{}

// Gonum returns the backend built on gonum.org/v1/gonum/dsp/fourier.
//
// FFTPACK's quarter-wave pair maps onto the FFTW names as
// CosSequence = 2·REDFT10 and CosCoefficients = REDFT01.
func Gonum() Backend {
	return gonumBackend{}
}

func (gonumBackend) Name() string { return "gonum" }

func (gonumBackend) NewFourier(n int) (Fourier, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	return &gonumFourier{n: n, fft: fourier.NewCmplxFFT(n)}, nil
}

func (gonumBackend) NewCosine(n int) (Cosine, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	return &gonumCosine{n: n, fft: fourier.NewQuarterWaveFFT(n)}, nil
}

type gonumFourier struct {
	n   int
	fft *fourier.CmplxFFT
}

func (f *gonumFourier) Len() int { return f.n }

func (f *gonumFourier) Forward(dst, src []complex128) error {
	if err := validatePair(dst, src, f.n); err != nil {
		return err
	}

	f.fft.Coefficients(dst[:f.n], src[:f.n])

	return nil
}

func (f *gonumFourier) Inverse(dst, src []complex128) error {
	if err := validatePair(dst, src, f.n); err != nil {
		return err
	}

	f.fft.Sequence(dst[:f.n], src[:f.n])

	return nil
}

type gonumCosine struct {
	n   int
	fft *fourier.QuarterWaveFFT
}

func (c *gonumCosine) Len() int { return c.n }

func (c *gonumCosine) Forward(dst, src []float64) error {
	if err := validatePair(dst, src, c.n); err != nil {
		return err
	}

	out := c.fft.CosSequence(dst[:c.n], src[:c.n])
	for k := range out {
		out[k] *= 0.5
	}

	return nil
}

func (c *gonumCosine) Inverse(dst, src []float64) error {
	if err := validatePair(dst, src, c.n); err != nil {
		return err
	}

	c.fft.CosCoefficients(dst[:c.n], src[:c.n])

	return nil
}
