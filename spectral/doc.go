// Package spectral is the boundary between the spherical harmonic transform
// and the FFT libraries it stages data with.
//
// A Backend creates two kinds of plans for a fixed length n:
//
//   - Cosine: the real-to-real cosine pair REDFT10 (forward) and REDFT01
//     (inverse), both unnormalised as in FFTW.
//   - Fourier: the complex DFT pair with e^{-2πijk/n} (forward) and
//     e^{+2πijk/n} (inverse), both unnormalised.
//
// Two backends are registered: "algofft" (the default, built on
// github.com/cwbudde/algo-fft) and "gonum" (built on gonum's FFTPACK port).
// Plans hold scratch buffers and are not safe for concurrent use; create
// one plan per goroutine.
package spectral
