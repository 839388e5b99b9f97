package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	algosht "github.com/cwbudde/algo-sht"
	"github.com/cwbudde/algo-sht/internal/cpu"
	"github.com/cwbudde/algo-sht/spectral"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundTrip = "roundtrip"
	modeBatch     = "batch"
)

type benchResult struct {
	bandwidth int
	backend   string
	mode      string
	nsPerOp   float64
}

type benchConfig struct {
	bandwidths string
	iters      int
	warmup     int
	mode       string
	seed       int64
	generic    bool
}

func newBenchCommand(a *app) *cobra.Command {
	var cfg benchConfig

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time transforms per bandwidth and backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout(), a, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.bandwidths, "bandwidths", "8,16,32,64", "comma-separated bandwidths")
	flags.IntVar(&cfg.iters, "iters", 20, "benchmark iterations")
	flags.IntVar(&cfg.warmup, "warmup", 2, "warmup iterations")
	flags.StringVar(&cfg.mode, "mode", modeForward, "forward, inverse, roundtrip, batch or all")
	flags.Int64Var(&cfg.seed, "seed", 1, "rng seed")
	flags.BoolVar(&cfg.generic, "generic", false, "disable SIMD inner loops")

	return cmd
}

func runBench(ctx context.Context, w io.Writer, a *app, cfg benchConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}

	bandwidths := parseBandwidths(cfg.bandwidths)
	if len(bandwidths) == 0 {
		return fmt.Errorf("no bandwidths in %q", cfg.bandwidths)
	}

	backends := spectral.Names()
	if name := a.v.GetString("backend"); name != "" {
		backends = []string{name}
	}

	if cfg.generic {
		cpu.SetForceGeneric(true)
		defer cpu.SetForceGeneric(false)
	}

	rnd := rand.New(rand.NewSource(cfg.seed))

	fmt.Fprintf(w, "cpu=%s iters=%d warmup=%d\n", cpu.DetectFeatures(), cfg.iters, cfg.warmup)
	fmt.Fprintf(w, "%9s  %8s  %10s  %14s\n", "bandwidth", "backend", "mode", "ns/op")

	for _, b := range bandwidths {
		var results []benchResult

		for _, backend := range backends {
			for _, mode := range resolveModes(cfg.mode) {
				res, err := benchmarkBandwidth(ctx, rnd, a, b, backend, mode, cfg)
				if err != nil {
					return err
				}

				results = append(results, res)
			}
		}

		sort.Slice(results, func(i, j int) bool {
			if results[i].mode != results[j].mode {
				return results[i].mode < results[j].mode
			}

			return results[i].nsPerOp < results[j].nsPerOp
		})

		for _, res := range results {
			fmt.Fprintf(w, "%9d  %8s  %10s  %14.1f\n", res.bandwidth, res.backend, res.mode, res.nsPerOp)
		}
	}

	return nil
}

func benchmarkBandwidth(ctx context.Context, rnd *rand.Rand, a *app, b int, backend, mode string, cfg benchConfig) (benchResult, error) {
	opts := a.transformOptions()
	opts.Backend = backend

	t, err := algosht.NewTransformerWithOptions(b, opts)
	if err != nil {
		return benchResult{}, err
	}

	n := algosht.GridSize(b)
	re := randomPlane(rnd, n*n)
	im := randomPlane(rnd, n*n)

	coeffs, err := algosht.NewCoefficients(b)
	if err != nil {
		return benchResult{}, err
	}

	copy(coeffs.Re, randomPlane(rnd, len(coeffs.Re)))
	copy(coeffs.Im, randomPlane(rnd, len(coeffs.Im)))

	var grids []algosht.Grid
	if mode == modeBatch {
		grids = make([]algosht.Grid, max(1, runtime.GOMAXPROCS(0)))
		for i := range grids {
			grids[i] = algosht.Grid{Re: randomPlane(rnd, n*n), Im: randomPlane(rnd, n*n)}
		}
	}

	run := func() error {
		switch mode {
		case modeInverse:
			return t.Inverse(re, im, coeffs)
		case modeRoundTrip:
			if err := t.Forward(coeffs, re, im); err != nil {
				return err
			}

			return t.Inverse(re, im, coeffs)
		case modeBatch:
			_, err := algosht.ForwardBatch(ctx, b, grids, algosht.BatchOptions{
				Workers:   a.v.GetInt("workers"),
				Transform: opts,
			})

			return err
		default:
			return t.Forward(coeffs, re, im)
		}
	}

	for range cfg.warmup {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}

	runtime.GC()

	iters := max(1, cfg.iters)
	start := time.Now()

	for range iters {
		if err := run(); err != nil {
			return benchResult{}, err
		}
	}

	elapsed := time.Since(start)

	a.logger.Debug("benchmark done", "bandwidth", b, "backend", backend, "mode", mode, "elapsed", elapsed)

	return benchResult{
		bandwidth: b,
		backend:   backend,
		mode:      mode,
		nsPerOp:   float64(elapsed.Nanoseconds()) / float64(iters),
	}, nil
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundTrip, modeBatch}
	case modeInverse, modeRoundTrip, modeBatch, modeForward:
		return []string{mode}
	default:
		return []string{modeForward}
	}
}

func parseBandwidths(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var b int

		_, err := fmt.Sscanf(part, "%d", &b)
		if err != nil || b <= 0 || b > algosht.MaxBandwidth {
			continue
		}

		out = append(out, b)
	}

	return out
}

func randomPlane(rnd *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rnd.Float64() - 1
	}

	return out
}
