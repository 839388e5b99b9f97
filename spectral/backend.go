package spectral

import (
	"fmt"
	"sort"
	"sync"
)

// Cosine is a planned length-n real cosine transform.
type Cosine interface {
	Len() int
	// Forward computes REDFT10: X[k] = 2 Σ_j x[j] cos(πk(2j+1)/(2n)).
	Forward(dst, src []float64) error
	// Inverse computes REDFT01: x[j] = X[0] + 2 Σ_{k≥1} X[k] cos(πk(2j+1)/(2n)).
	Inverse(dst, src []float64) error
}

// Fourier is a planned length-n complex DFT.
type Fourier interface {
	Len() int
	// Forward computes X[k] = Σ_j x[j] e^{-2πijk/n}.
	Forward(dst, src []complex128) error
	// Inverse computes x[j] = Σ_k X[k] e^{+2πijk/n}, without the 1/n factor.
	Inverse(dst, src []complex128) error
}

// Backend creates plans for one FFT library.
type Backend interface {
	Name() string
	NewCosine(n int) (Cosine, error)
	NewFourier(n int) (Fourier, error)
}

// DefaultBackend is the name of the backend used when none is requested.
const DefaultBackend = "algofft"

var (
	registryMu sync.RWMutex
	registry   = map[string]Backend{}
)

func init() {
	Register(AlgoFFT())
	Register(Gonum())
}

// Register adds b under b.Name(), replacing any backend of that name.
// Passing nil is a no-op.
func Register(b Backend) {
	if b == nil {
		return
	}

	registryMu.Lock()
	registry[b.Name()] = b
	registryMu.Unlock()
}

// Lookup returns the backend registered under name. The empty name selects
// DefaultBackend.
func Lookup(name string) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}

	registryMu.RLock()
	b, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}

	return b, nil
}

// Default returns the default backend.
func Default() Backend {
	b, err := Lookup(DefaultBackend)
	if err != nil {
		return AlgoFFT()
	}

	return b
}

// Names lists the registered backends in sorted order.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()

	sort.Strings(names)

	return names
}

func validatePair[T any](dst, src []T, n int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < n || len(src) < n {
		return ErrLengthMismatch
	}

	return nil
}
