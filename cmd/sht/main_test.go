package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	algosht "github.com/cwbudde/algo-sht"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestWeightsCommand(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "weights", "--bandwidth", "1")
	if err != nil {
		t.Fatalf("weights failed: %v", err)
	}

	lines := strings.Fields(out)
	if len(lines) != 4 {
		t.Fatalf("weights printed %d values, want 4:\n%s", len(lines), out)
	}

	want := []float64{1, 1, math.Sqrt2 / 2, math.Sqrt2 / 2}
	for i, line := range lines {
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}

		if math.Abs(v-want[i]) > 1e-14 {
			t.Errorf("weight %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestGridForwardInverse(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	gridPath := filepath.Join(dir, "grid.csv")
	imagPath := filepath.Join(dir, "imag.csv")
	coeffPath := filepath.Join(dir, "coeffs.csv")

	out, err := runCLI(t, "grid", "-b", "4", "-l", "2", "--order=-1", "--imag", imagPath)
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}

	if err := os.WriteFile(gridPath, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err = runCLI(t, "forward", gridPath, "--imag", imagPath)
	if err != nil {
		t.Fatalf("forward failed: %v", err)
	}

	coeffs, err := readCoefficients(strings.NewReader(out))
	if err != nil {
		t.Fatalf("readCoefficients: %v", err)
	}

	if coeffs.Bandwidth != 4 {
		t.Fatalf("bandwidth %d, want 4", coeffs.Bandwidth)
	}

	for i := range coeffs.Len() {
		l, m := algosht.DegreeOrder(i, 4)

		want := 0.0
		if l == 2 && m == -1 {
			want = 1
		}

		if math.Abs(coeffs.Re[i]-want) > 1e-11 || math.Abs(coeffs.Im[i]) > 1e-11 {
			t.Errorf("coefficient (%d, %d) = (%v, %v), want %v", l, m, coeffs.Re[i], coeffs.Im[i], want)
		}
	}

	if err := os.WriteFile(coeffPath, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err = runCLI(t, "inverse", coeffPath, "--backend", "gonum")
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}

	got, n, err := readGrid(strings.NewReader(out))
	if err != nil {
		t.Fatalf("readGrid: %v", err)
	}

	want, _, err := readGridFile(gridPath)
	if err != nil {
		t.Fatal(err)
	}

	if n != 8 {
		t.Fatalf("inverse grid side %d, want 8", n)
	}

	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-11 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestForwardCommand_Arity(t *testing.T) {
	t.Parallel()

	if _, err := runCLI(t, "forward"); err == nil {
		t.Error("forward without arguments succeeded")
	}

	if _, err := runCLI(t, "forward", "a.csv", "b.csv"); err == nil {
		t.Error("forward with two arguments succeeded")
	}
}

func TestForwardCommand_OddGrid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "odd.csv")
	if err := os.WriteFile(path, []byte("1,2,3\n4,5,6\n7,8,9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "forward", path); !errors.Is(err, algosht.ErrOddSize) {
		t.Fatalf("forward(3x3) error = %v, want ErrOddSize", err)
	}
}

func TestUnknownBackend(t *testing.T) {
	t.Setenv("SHT_BACKEND", "fftw")

	if _, err := runCLI(t, "bench", "--bandwidths", "2", "--iters", "1", "--warmup", "0"); err == nil {
		t.Fatal("bench with SHT_BACKEND=fftw succeeded")
	}
}

func TestBenchCommand(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, "bench", "--bandwidths", "2,4", "--iters", "1", "--warmup", "0", "--mode", "all")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}

	// Two bandwidths, two backends, four modes.
	rows := 0
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[2:] {
		if strings.TrimSpace(line) != "" {
			rows++
		}
	}

	if rows != 16 {
		t.Fatalf("bench printed %d rows, want 16:\n%s", rows, out)
	}
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	if _, err := runCLI(t, "weights", "--log-level", "loud"); err == nil {
		t.Fatal("invalid log level accepted")
	}
}

func TestParseBandwidths(t *testing.T) {
	t.Parallel()

	got := parseBandwidths("8, 16,,x,-2,0,32")
	if diff := cmp.Diff([]int{8, 16, 32}, got); diff != "" {
		t.Fatalf("parseBandwidths mismatch (-want +got):\n%s", diff)
	}
}

func TestReadGrid_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1,2\n3\n", "1,2,3\n4,5,6\n"} {
		if _, _, err := readGrid(strings.NewReader(in)); !errors.Is(err, algosht.ErrNotSquare) {
			t.Errorf("readGrid(%q) error = %v, want ErrNotSquare", in, err)
		}
	}

	if _, _, err := readGrid(strings.NewReader("1,x\n3,4\n")); err == nil {
		t.Error("non-numeric grid accepted")
	}
}

func TestReadCoefficients_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not square":  "l,m,re,im\n0,0,1,0\n1,0,1,0\n",
		"bad degree":  "l,m,re,im\n0,0,1,0\n1,0,0,0\n1,1,0,0\n1,2,0,0\n",
		"short row":   "0,0,1\n",
		"non-numeric": "0,0,1,x\n",
	}

	for name, input := range tests {
		if _, err := readCoefficients(strings.NewReader(input)); err == nil {
			t.Errorf("%s: accepted %q", name, input)
		}
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sht.yaml")
	if err := os.WriteFile(path, []byte("backend: gonum\nlog-level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "bench", "--config", path, "--bandwidths", "2", "--iters", "1", "--warmup", "0")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}

	if !strings.Contains(out, "gonum") || strings.Contains(out, "algofft") {
		t.Fatalf("config backend not applied:\n%s", out)
	}
}
