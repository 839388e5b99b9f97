package algosht

import "fmt"

// DataFormat tells the transform whether the imaginary sample plane
// carries data.
type DataFormat int

const (
	// Complex samples: both planes are used and every order is projected.
	Complex DataFormat = iota
	// Real samples: the imaginary plane is zero and negative orders are
	// derived from conjugate symmetry.
	Real
)

func (f DataFormat) String() string {
	switch f {
	case Complex:
		return "complex"
	case Real:
		return "real"
	default:
		return fmt.Sprintf("DataFormat(%d)", int(f))
	}
}

// MaxBandwidth is the largest bandwidth a Transformer will allocate for.
// Its workspace is 10·B² + 24·B float64 values, about 1.3 GiB at this limit.
const MaxBandwidth = 4096

// GridSize returns the side length 2B of a bandwidth-B sample grid.
func GridSize(b int) int { return 2 * b }

// NumCoefficients returns the number of (l, m) pairs with |m| ≤ l < B.
func NumCoefficients(b int) int { return b * b }

// NumWeights returns the length of the quadrature weight table.
func NumWeights(b int) int { return 4 * b }

// WorkspaceSize returns the number of float64 scratch values a forward
// or inverse transform of bandwidth b uses.
func WorkspaceSize(b int) int { return 10*b*b + 24*b }

func checkBandwidth(b int) error {
	if b < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBandwidth, b)
	}

	if b > MaxBandwidth {
		return fmt.Errorf("%w: bandwidth %d exceeds %d", ErrAllocation, b, MaxBandwidth)
	}

	return nil
}
