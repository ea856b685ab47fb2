package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-optics/internal/testutil"
)

const arrSize = 32

func TestIsOdd(t *testing.T) {
	odd := []int64{1, 3, 5, 7, 9, 11, 13, 15, 991, 100000000000001}
	for _, n := range odd {
		if !IsOdd(n) {
			t.Fatalf("IsOdd(%d)=false, want true", n)
		}
	}

	even := []int64{0, 2, 4, 6, 8, 10, 12, 14, 1000, 100000000000000}
	for _, n := range even {
		if IsOdd(n) {
			t.Fatalf("IsOdd(%d)=true, want false", n)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for n := int64(1); n <= 1<<20; n <<= 1 {
		if !IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d)=false, want true", n)
		}
	}

	for _, n := range []int64{0, -2, 3, 5, 7, 1000} {
		if IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d)=true, want false", n)
		}
	}
}

func TestRMSOfConstantArray(t *testing.T) {
	data := testutil.Constant(1, arrSize*arrSize)
	testutil.RequireNearlyEqual(t, RMS(data), 1, 1e-12)

	data = testutil.Constant(2.5, arrSize)
	testutil.RequireNearlyEqual(t, RMS(data), 2.5, 1e-12)
}

func TestPV(t *testing.T) {
	testutil.RequireNearlyEqual(t, PV([]float64{1, 1, 1}), 0, 0)
	testutil.RequireNearlyEqual(t, PV([]float64{-2, 0, 3}), 5, 0)
}

func TestECDFBinaryDistribution(t *testing.T) {
	values, cumulative, err := ECDF([]float64{0, 0, 0, 1, 1, 1})
	if err != nil {
		t.Fatalf("ECDF: %v", err)
	}

	if diff := cmp.Diff([]float64{0, 1}, values); diff != "" {
		t.Fatalf("unique values mismatch (-want +got):\n%s", diff)
	}

	testutil.RequireSliceNearlyEqual(t, cumulative, []float64{0.5, 1}, 1e-12)
}

func TestECDFRejectsEmpty(t *testing.T) {
	if _, _, err := ECDF(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err=%v, want ErrEmptyInput", err)
	}
}

func TestGammaCorrectUnity(t *testing.T) {
	data := testutil.Constant(0.75, arrSize)

	out, err := GammaCorrect(data, 1)
	if err != nil {
		t.Fatalf("GammaCorrect: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out, data, 1e-12)
}

func TestGammaCorrectGeneralCase(t *testing.T) {
	data := testutil.Constant(0.5, arrSize)

	out, err := GammaCorrect(data, 0.5)
	if err != nil {
		t.Fatalf("GammaCorrect: %v", err)
	}

	want := make([]float64, len(data))
	for i, v := range data {
		want[i] = v * v
	}

	testutil.RequireSliceNearlyEqual(t, out, want, 1e-12)
}

func TestGammaCorrectRejectsBadEncoding(t *testing.T) {
	if _, err := GammaCorrect([]float64{1}, 0); err == nil {
		t.Fatal("expected error for zero encoding")
	}

	if _, err := GammaCorrect([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative encoding")
	}
}

func TestGuaranteeArray(t *testing.T) {
	for _, in := range []any{5.0, float32(5), 10, int64(10), []float64{1, 2}} {
		out, err := GuaranteeArray(in)
		if err != nil {
			t.Fatalf("GuaranteeArray(%v): %v", in, err)
		}

		if len(out) == 0 {
			t.Fatalf("GuaranteeArray(%v) returned empty slice", in)
		}
	}

	if _, err := GuaranteeArray("foo"); !errors.Is(err, ErrNonNumeric) {
		t.Fatalf("err=%v, want ErrNonNumeric", err)
	}
}

func TestSortXY(t *testing.T) {
	x := Linspace(10, 0, 10)
	y := Linspace(1, 10, 10)

	xs, ys, err := SortXY(x, y)
	if err != nil {
		t.Fatalf("SortXY: %v", err)
	}

	wantX := make([]float64, len(x))
	wantY := make([]float64, len(y))
	for i := range x {
		wantX[i] = x[len(x)-1-i]
		wantY[i] = y[len(y)-1-i]
	}

	if diff := cmp.Diff(wantX, xs); diff != "" {
		t.Fatalf("x mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantY, ys); diff != "" {
		t.Fatalf("y mismatch (-want +got):\n%s", diff)
	}
}

func TestSortXYRejectsMismatchedLengths(t *testing.T) {
	if _, _, err := SortXY([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err=%v, want ErrLengthMismatch", err)
	}
}

func TestFiniteFiltersNaNAndInf(t *testing.T) {
	in := []float64{1, math.NaN(), 2, math.Inf(1), 3, math.Inf(-1)}

	out := Finite(in)
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, 2, 3}, 0)
}

func TestLinspace(t *testing.T) {
	out := Linspace(0, 1, 5)
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0.25, 0.5, 0.75, 1}, 1e-12)

	out = Linspace(2, 2, 1)
	testutil.RequireSliceNearlyEqual(t, out, []float64{2}, 0)
}

func TestResample(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 20}

	out, err := Resample(xs, ys, []float64{-1, 0.5, 1, 1.5, 3})
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 5, 10, 15, 0}, 1e-12)
}
