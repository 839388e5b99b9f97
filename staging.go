package algosht

import (
	"fmt"

	"github.com/cwbudde/algo-sht/spectral"
)

// Plan holds the spectral plans of one bandwidth: a length-2B complex
// DFT for the longitude axis and a length-2B cosine transform for the
// colatitude axis, both from the same backend.
//
// A Plan owns scratch buffers and is not safe for concurrent use.
type Plan struct {
	bandwidth int
	backend   string
	longitude *spectral.Split
	cosine    spectral.Cosine
}

// NewPlan creates the plans for bandwidth b on the named spectral
// backend. The empty name selects spectral.DefaultBackend.
func NewPlan(b int, backend string) (*Plan, error) {
	if err := checkBandwidth(b); err != nil {
		return nil, err
	}

	be, err := spectral.Lookup(backend)
	if err != nil {
		return nil, err
	}

	n := GridSize(b)

	fourier, err := be.NewFourier(n)
	if err != nil {
		return nil, fmt.Errorf("algosht: %s fourier plan of length %d: %w", be.Name(), n, err)
	}

	cosine, err := be.NewCosine(n)
	if err != nil {
		return nil, fmt.Errorf("algosht: %s cosine plan of length %d: %w", be.Name(), n, err)
	}

	return &Plan{
		bandwidth: b,
		backend:   be.Name(),
		longitude: spectral.NewSplit(fourier),
		cosine:    cosine,
	}, nil
}

// Bandwidth returns the bandwidth the plan was created for.
func (p *Plan) Bandwidth() int { return p.bandwidth }

// Backend returns the name of the spectral backend.
func (p *Plan) Backend() string { return p.backend }

// forwardLongitude transforms every colatitude row of (re, im) along
// longitude and writes the spectra transposed, so that stagedRe[m*2B+j]
// holds FFT bin m of row j. No scaling is applied.
func (p *Plan) forwardLongitude(stagedRe, stagedIm, re, im []float64) error {
	n := GridSize(p.bandwidth)

	for j := range n {
		err := p.longitude.Forward(stagedRe[j:], stagedIm[j:], n, re[j*n:], im[j*n:], 1)
		if err != nil {
			return fmt.Errorf("algosht: longitude transform of row %d: %w", j, err)
		}
	}

	return nil
}

// inverseLongitude undoes the transpose of forwardLongitude: column j of
// the order-major staged planes is inverse transformed into row j of
// (re, im). No scaling is applied.
func (p *Plan) inverseLongitude(re, im, stagedRe, stagedIm []float64) error {
	n := GridSize(p.bandwidth)

	for j := range n {
		err := p.longitude.Inverse(re[j*n:], im[j*n:], 1, stagedRe[j:], stagedIm[j:], n)
		if err != nil {
			return fmt.Errorf("algosht: inverse longitude transform of row %d: %w", j, err)
		}
	}

	return nil
}
