package algosht

import (
	"fmt"
	"log/slog"
)

// TransformOptions configures a Transformer.
type TransformOptions struct {
	// Backend names the spectral backend. Empty selects
	// spectral.DefaultBackend.
	Backend string

	// Weights supplies the quadrature weight tables. Nil uses
	// DefaultWeights.
	Weights *WeightCache

	// Logger receives debug records about plan and workspace setup.
	// Nil discards them.
	Logger *slog.Logger
}

// Transformer computes forward and inverse transforms of one bandwidth.
//
// All buffers are allocated by the constructor; Forward and Inverse do
// not allocate except for the zero imaginary plane of the first real-input
// call. A Transformer is not safe for concurrent use. Use Clone to get an
// independent one that shares the weight table.
type Transformer struct {
	bandwidth int
	plan      *Plan
	weights   []float64
	logger    *slog.Logger
	series    legendreSeries

	// work is the single scratch allocation of WorkspaceSize(B) values.
	work []float64

	stagedRe []float64 // 4B², order-major after the longitude FFT
	stagedIm []float64 // 4B²
	table    []float64 // 2B², cosine series of Q_l^m for one order

	weightedRe []float64 // 2B, weighted colatitude series
	weightedIm []float64
	projRe     []float64 // 2B, REDFT10 of the weighted series
	projIm     []float64

	zeros []float64 // imaginary plane for real input
}

// NewTransformer creates a transformer for bandwidth b with default
// options.
func NewTransformer(b int) (*Transformer, error) {
	return NewTransformerWithOptions(b, TransformOptions{})
}

// NewTransformerWithOptions creates a transformer for bandwidth b.
//
// Returns ErrInvalidBandwidth if b < 1 and ErrAllocation if b exceeds
// MaxBandwidth; both are checked before anything is allocated.
func NewTransformerWithOptions(b int, opts TransformOptions) (*Transformer, error) {
	if err := checkBandwidth(b); err != nil {
		return nil, err
	}

	cache := opts.Weights
	if cache == nil {
		cache = DefaultWeights
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	weights, err := cache.Weights(b)
	if err != nil {
		return nil, err
	}

	plan, err := NewPlan(b, opts.Backend)
	if err != nil {
		return nil, err
	}

	t := newTransformer(plan, weights, logger)

	logger.Debug("transformer created",
		"bandwidth", b,
		"backend", plan.Backend(),
		"workspace", len(t.work),
	)

	return t, nil
}

func newTransformer(plan *Plan, weights []float64, logger *slog.Logger) *Transformer {
	b := plan.Bandwidth()
	n := GridSize(b)

	work := make([]float64, WorkspaceSize(b))

	t := &Transformer{
		bandwidth: b,
		plan:      plan,
		weights:   weights,
		logger:    logger,
		work:      work,
	}

	next := func(size int) []float64 {
		s := work[:size:size]
		work = work[size:]

		return s
	}

	t.stagedRe = next(n * n)
	t.stagedIm = next(n * n)
	t.table = next(b * n)
	t.weightedRe = next(n)
	t.weightedIm = next(n)
	t.projRe = next(n)
	t.projIm = next(n)

	t.series = legendreSeries{
		n:      n,
		cosine: plan.cosine,
		sin:    gridSines(b),
		sample: next(n),
		shift:  next(n),
	}

	return t
}

// Clone returns a transformer with its own plans and workspace that
// shares the receiver's weight table and logger.
func (t *Transformer) Clone() (*Transformer, error) {
	plan, err := NewPlan(t.bandwidth, t.plan.Backend())
	if err != nil {
		return nil, err
	}

	return newTransformer(plan, t.weights, t.logger), nil
}

// Bandwidth returns the transformer's bandwidth.
func (t *Transformer) Bandwidth() int { return t.bandwidth }

// Backend returns the name of the spectral backend in use.
func (t *Transformer) Backend() string { return t.plan.Backend() }

// Weights returns the shared quadrature weight table. It must not be
// modified.
func (t *Transformer) Weights() []float64 { return t.weights }

// Forward transforms the 2B×2B grid (re, im) into dst. A nil im selects
// the Real data format; otherwise both planes are used.
//
// dst is resized to B² coefficients if needed. On error dst is left
// zeroed or untouched, never partially filled.
func (t *Transformer) Forward(dst *Coefficients, re, im []float64) error {
	format := Complex
	if im == nil {
		format = Real
	}

	return t.ForwardFormat(dst, re, im, format)
}

// ForwardFormat is Forward with an explicit data format. With Real, im is
// ignored and the imaginary plane is taken as zero.
func (t *Transformer) ForwardFormat(dst *Coefficients, re, im []float64, format DataFormat) error {
	if dst == nil {
		return ErrNilSlice
	}

	im, err := t.checkGrid(re, im, format)
	if err != nil {
		return err
	}

	dst.reset(t.bandwidth)

	if err := t.forward(dst, re, im, format); err != nil {
		clear(dst.Re)
		clear(dst.Im)

		return err
	}

	return nil
}

// checkGrid validates the sample planes and returns the imaginary plane
// to stage.
func (t *Transformer) checkGrid(re, im []float64, format DataFormat) ([]float64, error) {
	n := GridSize(t.bandwidth)

	if re == nil {
		return nil, ErrNilSlice
	}

	if len(re) != n*n {
		return nil, fmt.Errorf("%w: real plane has %d samples, want %d", ErrLengthMismatch, len(re), n*n)
	}

	switch format {
	case Real:
		if t.zeros == nil {
			t.zeros = make([]float64, n*n)
		}

		return t.zeros, nil
	case Complex:
		if im == nil {
			return nil, ErrNilSlice
		}

		if len(im) != n*n {
			return nil, fmt.Errorf("%w: imaginary plane has %d samples, want %d", ErrLengthMismatch, len(im), n*n)
		}

		return im, nil
	default:
		return nil, fmt.Errorf("algosht: unknown data format %v", format)
	}
}

func (t *Transformer) forward(dst *Coefficients, re, im []float64, format DataFormat) error {
	if err := t.plan.forwardLongitude(t.stagedRe, t.stagedIm, re, im); err != nil {
		return err
	}

	return t.project(dst, format)
}
