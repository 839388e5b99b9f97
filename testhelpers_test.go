package algosht

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertMaxDiff(t *testing.T, got, want []float64, tol float64, format string, args ...any) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf(format+": length %d, want %d", append(args, len(got), len(want))...)
	}

	worst, at := 0.0, -1
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > worst {
			worst, at = d, i
		}
	}

	if worst > tol {
		t.Fatalf(format+": max diff %g at %d (got %v want %v)", append(args, worst, at, got[at], want[at])...)
	}
}

func assertCoefficientsClose(t *testing.T, got, want *Coefficients, tol float64, format string, args ...any) {
	t.Helper()

	assertMaxDiff(t, got.Re, want.Re, tol, format+" (real)", args...)
	assertMaxDiff(t, got.Im, want.Im, tol, format+" (imag)", args...)
}

func randomCoefficients(t *testing.T, b int, rnd *rand.Rand) *Coefficients {
	t.Helper()

	c, err := NewCoefficients(b)
	if err != nil {
		t.Fatalf("NewCoefficients(%d) failed: %v", b, err)
	}

	for i := range c.Re {
		c.Re[i] = 2*rnd.Float64() - 1
		c.Im[i] = 2*rnd.Float64() - 1
	}

	return c
}

// bandLimitedGrid synthesises a random bandwidth-b function on its grid.
func bandLimitedGrid(t *testing.T, tr *Transformer, rnd *rand.Rand) (re, im []float64, c *Coefficients) {
	t.Helper()

	b := tr.Bandwidth()
	n := GridSize(b)
	c = randomCoefficients(t, b, rnd)

	re = make([]float64, n*n)
	im = make([]float64, n*n)

	if err := tr.Inverse(re, im, c); err != nil {
		t.Fatalf("Inverse(B=%d) failed: %v", b, err)
	}

	return re, im, c
}

func randomPlane(n int, rnd *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rnd.Float64() - 1
	}

	return out
}

func benchName(b int) string {
	return fmt.Sprintf("B=%d", b)
}
