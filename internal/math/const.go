package math

import "math"

// Mathematical constants for spherical harmonic transforms.

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// SqrtTwoPi is the L2 norm of e^{imφ} over [0, 2π).
const SqrtTwoPi = 2.5066282746310002

// InvSqrt2 is the L2-normalised degree-0 Legendre function P~_0^0.
const InvSqrt2 = 1 / math.Sqrt2

// SqrtFourPi is the coefficient of a unit constant field: f^(0,0) = c·√(4π).
const SqrtFourPi = 3.5449077018110318
