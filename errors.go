package algosht

import "errors"

// Sentinel errors returned by transform construction and execution.
var (
	// ErrInvalidBandwidth is returned when a bandwidth is < 1.
	ErrInvalidBandwidth = errors.New("algosht: invalid bandwidth")

	// ErrInvalidDegree is returned when a degree/order pair does not
	// satisfy |m| ≤ l < B.
	ErrInvalidDegree = errors.New("algosht: degree or order outside bandwidth")

	// ErrNotSquare is returned when a sample grid is not square.
	ErrNotSquare = errors.New("algosht: grid is not square")

	// ErrOddSize is returned when a sample grid has an odd side length.
	// The side of a bandwidth-B grid is always 2B.
	ErrOddSize = errors.New("algosht: grid side length is odd")

	// ErrLengthMismatch is returned when a sample plane or coefficient
	// slice does not have the length the bandwidth requires.
	ErrLengthMismatch = errors.New("algosht: slice length mismatch")

	// ErrNilSlice is returned when a required slice or output is nil.
	ErrNilSlice = errors.New("algosht: nil slice")

	// ErrShapeMismatch is returned when the real and imaginary grids
	// have different dimensions.
	ErrShapeMismatch = errors.New("algosht: real and imaginary grids differ in shape")

	// ErrAllocation is returned when the buffers for a bandwidth would
	// exceed MaxBandwidth. Nothing is allocated in that case.
	ErrAllocation = errors.New("algosht: workspace allocation too large")
)
