package algosht

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Grid is one pair of sample planes for ForwardBatch. A nil Im marks the
// samples as real.
type Grid struct {
	Re []float64
	Im []float64
}

// BatchOptions configures ForwardBatch.
type BatchOptions struct {
	// Workers bounds the number of concurrent transforms. Zero or less
	// uses runtime.GOMAXPROCS(0).
	Workers int

	// Transform configures the transformer each worker clones.
	Transform TransformOptions
}

// ForwardBatch transforms independent grids of bandwidth b in parallel.
// Each worker owns a cloned Transformer; all share one weight table.
//
// Results are returned in the order of grids. The first failing grid or a
// cancelled ctx stops scheduling and its error is returned.
func ForwardBatch(ctx context.Context, b int, grids []Grid, opts BatchOptions) ([]*Coefficients, error) {
	base, err := NewTransformerWithOptions(b, opts.Transform)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	workers = max(1, min(workers, len(grids)))

	pool := make(chan *Transformer, workers)
	pool <- base

	for range workers - 1 {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}

		pool <- clone
	}

	results := make([]*Coefficients, len(grids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, grid := range grids {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			t := <-pool
			defer func() { pool <- t }()

			out, err := NewCoefficients(b)
			if err != nil {
				return err
			}

			if err := t.Forward(out, grid.Re, grid.Im); err != nil {
				return fmt.Errorf("algosht: batch grid %d: %w", i, err)
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
