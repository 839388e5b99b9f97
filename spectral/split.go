package spectral

// Split executes a Fourier plan over split real/imaginary planes with
// independent input and output strides, the layout FFTW calls a guru split
// DFT. Element i of the input is (srcRe[i*is], srcIm[i*is]); element k of
// the output goes to (dstRe[k*os], dstIm[k*os]).
type Split struct {
	plan Fourier
	in   []complex128
	out  []complex128
}

// NewSplit wraps plan with the gather/scatter buffers it needs.
func NewSplit(plan Fourier) *Split {
	n := plan.Len()

	return &Split{
		plan: plan,
		in:   make([]complex128, n),
		out:  make([]complex128, n),
	}
}

// Len returns the transform length.
func (s *Split) Len() int {
	return s.plan.Len()
}

// Forward computes the forward DFT of the strided input planes.
//
// Returns ErrNilSlice if any plane is nil.
// Returns ErrInvalidStride if a stride is < 1 or overflows index computation.
// Returns ErrLengthMismatch if a plane is too short for its stride.
func (s *Split) Forward(dstRe, dstIm []float64, os int, srcRe, srcIm []float64, is int) error {
	return s.transform(dstRe, dstIm, os, srcRe, srcIm, is, false)
}

// Inverse computes the unnormalised inverse DFT of the strided input planes.
func (s *Split) Inverse(dstRe, dstIm []float64, os int, srcRe, srcIm []float64, is int) error {
	return s.transform(dstRe, dstIm, os, srcRe, srcIm, is, true)
}

func (s *Split) transform(dstRe, dstIm []float64, os int, srcRe, srcIm []float64, is int, inverse bool) error {
	n := s.plan.Len()

	if err := validateStrided(n, is, srcRe, srcIm); err != nil {
		return err
	}

	if err := validateStrided(n, os, dstRe, dstIm); err != nil {
		return err
	}

	for i := range n {
		s.in[i] = complex(srcRe[i*is], srcIm[i*is])
	}

	var err error
	if inverse {
		err = s.plan.Inverse(s.out, s.in)
	} else {
		err = s.plan.Forward(s.out, s.in)
	}

	if err != nil {
		return err
	}

	for k, v := range s.out {
		dstRe[k*os] = real(v)
		dstIm[k*os] = imag(v)
	}

	return nil
}

func validateStrided(n, stride int, re, im []float64) error {
	if re == nil || im == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := n - 1
	if maxIndex > 0 && maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(re) < required || len(im) < required {
		return ErrLengthMismatch
	}

	return nil
}
