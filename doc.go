// Package algosht computes spherical harmonic transforms of band-limited
// functions sampled on the equiangular Driscoll-Healy grid.
//
// A bandwidth-B grid has 2B colatitudes θ_j = π(2j+1)/(4B) and 2B
// longitudes φ_k = 2πk/(2B). Grids are row-major with the real and
// imaginary parts in separate slices: sample (θ_j, φ_k) is at index
// j·2B + k.
//
// The forward transform is semi-naive: an FFT along each colatitude row
// separates the orders, then for each order m a cosine transform of the
// quadrature-weighted series is projected onto the associated Legendre
// functions P_l^m, l = |m| … B-1. The Legendre functions are generated on
// the fly by a three-term recurrence applied to their cosine series.
//
// Coefficients are packed in S2Kit order (see Index): non-negative orders
// 0 … B-1 first, then -(B-1) … -1, each order a contiguous block of
// degrees. A function equal to Y_l^m on the grid transforms to a single
// unit coefficient at Index(m, l, B).
//
// Basic usage:
//
//	t, err := algosht.NewTransformer(16)
//	if err != nil {
//		// handle error
//	}
//	coeffs, _ := algosht.NewCoefficients(16)
//	err = t.Forward(coeffs, re, im) // im == nil for real samples
//
// A Transformer owns its workspace and is not safe for concurrent use.
// Clone it, or use ForwardBatch, to transform several grids in parallel;
// clones share one read-only weight table.
package algosht
