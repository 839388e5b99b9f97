package algosht

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFST_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, b := range []int{1, 3, 8} {
		want := randomCoefficients(t, b, rand.New(rand.NewSource(int64(40+b))))

		re, im, err := InvFST(want)
		if err != nil {
			t.Fatalf("InvFST(B=%d) failed: %v", b, err)
		}

		if r, c := re.Dims(); r != 2*b || c != 2*b {
			t.Fatalf("InvFST(B=%d) dims %dx%d", b, r, c)
		}

		got, err := FST(re, im)
		if err != nil {
			t.Fatalf("FST(B=%d) failed: %v", b, err)
		}

		assertCoefficientsClose(t, got, want, 1e-10, "FST(InvFST(c)) B=%d", b)
	}
}

func TestFST_RealInput(t *testing.T) {
	t.Parallel()

	const b = 4

	n := GridSize(b)
	data := randomPlane(n*n, rand.New(rand.NewSource(6)))

	got, err := FST(mat.NewDense(n, n, data), nil)
	if err != nil {
		t.Fatalf("FST(real) failed: %v", err)
	}

	tr, _ := NewTransformer(b)
	want, _ := NewCoefficients(b)

	if err := tr.Forward(want, data, nil); err != nil {
		t.Fatal(err)
	}

	assertCoefficientsClose(t, got, want, 0, "FST vs Transformer")
}

func TestFST_Transposed(t *testing.T) {
	t.Parallel()

	// Any mat.Matrix is accepted, including views.
	const b = 2

	n := GridSize(b)
	data := randomPlane(n*n, rand.New(rand.NewSource(7)))
	m := mat.NewDense(n, n, data)

	got, err := FST(m.T(), nil)
	if err != nil {
		t.Fatalf("FST(T) failed: %v", err)
	}

	var transposed mat.Dense
	transposed.CloneFrom(m.T())

	want, _ := FST(&transposed, nil)
	assertCoefficientsClose(t, got, want, 0, "view vs dense")
}

func TestFST_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		re, im mat.Matrix
		want   error
	}{
		{"nil", nil, nil, ErrNilSlice},
		{"not square", mat.NewDense(4, 6, nil), nil, ErrNotSquare},
		{"odd side", mat.NewDense(3, 3, nil), nil, ErrOddSize},
		{"shape mismatch", mat.NewDense(4, 4, nil), mat.NewDense(4, 2, nil), ErrShapeMismatch},
		{"empty", &mat.Dense{}, nil, ErrInvalidBandwidth},
	}

	for _, tt := range tests {
		got, err := FST(tt.re, tt.im)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}

		if got != nil {
			t.Errorf("%s: returned coefficients on error", tt.name)
		}
	}
}

func TestInvFST_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := InvFST(nil); !errors.Is(err, ErrNilSlice) {
		t.Errorf("InvFST(nil) error = %v", err)
	}

	if _, _, err := InvFST(&Coefficients{Bandwidth: 2, Re: make([]float64, 3), Im: make([]float64, 4)}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("InvFST(short) error = %v", err)
	}

	if _, _, err := InvFST(&Coefficients{}); !errors.Is(err, ErrInvalidBandwidth) {
		t.Errorf("InvFST(empty) error = %v", err)
	}
}
