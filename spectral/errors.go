package spectral

import "errors"

// Sentinel errors returned by plan construction and execution.
var (
	// ErrInvalidLength is returned when a transform length is < 1.
	ErrInvalidLength = errors.New("spectral: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("spectral: nil slice")

	// ErrLengthMismatch is returned when input/output slices are shorter
	// than the plan length (or than the strided extent).
	ErrLengthMismatch = errors.New("spectral: slice length mismatch")

	// ErrInvalidStride is returned when a stride is < 1 or overflows
	// index computation.
	ErrInvalidStride = errors.New("spectral: invalid stride")

	// ErrUnknownBackend is returned by Lookup for unregistered names.
	ErrUnknownBackend = errors.New("spectral: unknown backend")
)
