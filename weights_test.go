package algosht

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMakeWeights_Bandwidth1(t *testing.T) {
	t.Parallel()

	w, err := MakeWeights(1)
	if err != nil {
		t.Fatalf("MakeWeights(1) failed: %v", err)
	}

	want := []float64{1, 1, math.Sqrt2 / 2, math.Sqrt2 / 2}
	if diff := cmp.Diff(want, w, cmpopts.EquateApprox(0, 1e-14)); diff != "" {
		t.Fatalf("MakeWeights(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeWeights_Properties(t *testing.T) {
	t.Parallel()

	for _, b := range []int{1, 2, 3, 4, 8, 16, 33, 64} {
		w, err := MakeWeights(b)
		if err != nil {
			t.Fatalf("MakeWeights(%d) failed: %v", b, err)
		}

		if len(w) != NumWeights(b) {
			t.Fatalf("MakeWeights(%d) length = %d, want %d", b, len(w), NumWeights(b))
		}

		n := GridSize(b)

		// The even-order weights integrate 1 over [-1, 1].
		sum := 0.0
		for _, v := range w[:n] {
			sum += v
		}

		if math.Abs(sum-2) > 1e-12 {
			t.Errorf("B=%d: sum of even weights = %v, want 2", b, sum)
		}

		// Symmetric about the equator.
		for j := range n / 2 {
			if math.Abs(w[j]-w[n-1-j]) > 1e-13 {
				t.Errorf("B=%d: w[%d]=%v, w[%d]=%v", b, j, w[j], n-1-j, w[n-1-j])
			}
		}

		theta, _ := Colatitudes(b)
		for j := range n {
			if got, want := w[n+j], w[j]*math.Sin(theta[j]); math.Abs(got-want) > 1e-14 {
				t.Errorf("B=%d: odd weight %d = %v, want %v", b, j, got, want)
			}
		}
	}
}

func TestMakeWeights_Deterministic(t *testing.T) {
	t.Parallel()

	a, _ := MakeWeights(24)
	b, _ := MakeWeights(24)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("MakeWeights not bit-identical (-first +second):\n%s", diff)
	}
}

func TestMakeWeights_InvalidBandwidth(t *testing.T) {
	t.Parallel()

	for _, b := range []int{0, -1} {
		w, err := MakeWeights(b)
		if !errors.Is(err, ErrInvalidBandwidth) {
			t.Errorf("MakeWeights(%d) error = %v, want ErrInvalidBandwidth", b, err)
		} else if want := fmt.Sprintf(": %d", b); !strings.HasSuffix(err.Error(), want) {
			t.Errorf("MakeWeights(%d) error = %q, want the bandwidth in the message", b, err)
		}

		if w != nil {
			t.Errorf("MakeWeights(%d) returned %d weights on error", b, len(w))
		}
	}
}

func TestWeightCache(t *testing.T) {
	t.Parallel()

	cache := NewWeightCache()
	if cache.Len() != 0 {
		t.Fatalf("new cache Len() = %d, want 0", cache.Len())
	}

	if _, ok := cache.Lookup(8); ok {
		t.Fatal("Lookup on empty cache succeeded")
	}

	w, err := cache.Weights(8)
	if err != nil {
		t.Fatalf("Weights(8) failed: %v", err)
	}

	again, _ := cache.Weights(8)
	if &w[0] != &again[0] {
		t.Error("Weights(8) returned a different table on the second call")
	}

	if _, err := cache.Weights(4); err != nil {
		t.Fatalf("Weights(4) failed: %v", err)
	}

	if diff := cmp.Diff([]int{4, 8}, cache.Bandwidths()); diff != "" {
		t.Errorf("Bandwidths() mismatch (-want +got):\n%s", diff)
	}

	if _, err := cache.Weights(0); !errors.Is(err, ErrInvalidBandwidth) {
		t.Errorf("Weights(0) error = %v, want ErrInvalidBandwidth", err)
	}

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
}

func TestWeightCache_Concurrent(t *testing.T) {
	t.Parallel()

	cache := NewWeightCache()

	const goroutines = 16

	tables := make([][]float64, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			w, err := cache.Weights(12)
			if err != nil {
				t.Errorf("Weights(12) failed: %v", err)
				return
			}

			tables[i] = w
		}()
	}

	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if &tables[i][0] != &tables[0][0] {
			t.Fatalf("goroutine %d got a different table", i)
		}
	}
}
