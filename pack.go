package algosht

import "fmt"

// Index returns the position of coefficient (l, m) in a packed
// bandwidth-b coefficient vector, using the S2Kit ordering:
//
//	m = 0, 1, …, B-1, then m = -(B-1), …, -1
//
// with the degrees l = |m| … B-1 of each order stored contiguously.
// With L = B-1:
//
//	m ≥ 0: m·B − m(m−1)/2 + (l − m)
//	m < 0: L(L+3)/2 + 1 + (L+m)(L+m+1)/2 + (l − |m|)
//
// The arguments must satisfy |m| ≤ l < b; Index does not check them.
func Index(m, l, b int) int {
	if m >= 0 {
		return m*b - m*(m-1)/2 + (l - m)
	}

	last := b - 1

	return last*(last+3)/2 + 1 + (last+m)*(last+m+1)/2 + (l + m)
}

// DegreeOrder inverts Index: it returns the (l, m) stored at position i of
// a packed bandwidth-b vector. i must be in [0, b²).
func DegreeOrder(i, b int) (l, m int) {
	positive := b * (b + 1) / 2

	if i < positive {
		start := 0
		for m = 0; m < b; m++ {
			size := b - m
			if i < start+size {
				return m + (i - start), m
			}

			start += size
		}
	}

	// Negative orders: block s = 0 … B-2 holds m = s-(B-1) with s+1 degrees.
	start := positive
	for s := 0; s < b-1; s++ {
		size := s + 1
		if i < start+size {
			m = s - (b - 1)
			return -m + (i - start), m
		}

		start += size
	}

	return -1, 0
}

// Coefficients is a packed spherical harmonic coefficient vector with
// split real and imaginary parts, indexed as described by Index.
type Coefficients struct {
	Bandwidth int
	Re        []float64
	Im        []float64
}

// NewCoefficients returns a zeroed coefficient vector for bandwidth b.
func NewCoefficients(b int) (*Coefficients, error) {
	if b < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBandwidth, b)
	}

	n := NumCoefficients(b)

	return &Coefficients{
		Bandwidth: b,
		Re:        make([]float64, n),
		Im:        make([]float64, n),
	}, nil
}

// Len returns the number of coefficients, B².
func (c *Coefficients) Len() int {
	return NumCoefficients(c.Bandwidth)
}

// At returns coefficient (l, m). It panics if |m| > l or l ≥ B.
func (c *Coefficients) At(l, m int) complex128 {
	i := c.index(l, m)
	return complex(c.Re[i], c.Im[i])
}

// Set stores v as coefficient (l, m). It panics if |m| > l or l ≥ B.
func (c *Coefficients) Set(l, m int, v complex128) {
	i := c.index(l, m)
	c.Re[i] = real(v)
	c.Im[i] = imag(v)
}

// Complex returns the coefficients as a packed complex slice.
func (c *Coefficients) Complex() []complex128 {
	out := make([]complex128, len(c.Re))
	for i := range out {
		out[i] = complex(c.Re[i], c.Im[i])
	}

	return out
}

func (c *Coefficients) index(l, m int) int {
	if l < 0 || l >= c.Bandwidth || m < -l || m > l {
		panic(fmt.Sprintf("algosht: coefficient (%d, %d) outside bandwidth %d", l, m, c.Bandwidth))
	}

	return Index(m, l, c.Bandwidth)
}

// validate checks that c holds a full vector for bandwidth b.
func (c *Coefficients) validate(b int) error {
	if c == nil || c.Re == nil || c.Im == nil {
		return ErrNilSlice
	}

	if c.Bandwidth != b {
		return fmt.Errorf("%w: coefficients for bandwidth %d, want %d", ErrLengthMismatch, c.Bandwidth, b)
	}

	n := NumCoefficients(b)
	if len(c.Re) != n || len(c.Im) != n {
		return fmt.Errorf("%w: coefficient planes %d/%d, want %d", ErrLengthMismatch, len(c.Re), len(c.Im), n)
	}

	return nil
}

// reset sizes c for bandwidth b, reusing its storage where possible.
func (c *Coefficients) reset(b int) {
	n := NumCoefficients(b)

	c.Bandwidth = b
	c.Re = resize(c.Re, n)
	c.Im = resize(c.Im, n)
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}

	return s[:n]
}
