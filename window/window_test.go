package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			w, err := Generate(typ, 64)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	if _, err := Generate(TypeHanning, 0); err == nil {
		t.Fatal("expected error for zero length")
	}

	if _, err := Generate(Type(99), 8); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		want Type
	}{
		{"flat", TypeFlat},
		{"hanning", TypeHanning},
		{"Hamming", TypeHamming},
		{"BARTLETT", TypeBartlett},
		{" blackman ", TypeBlackman},
	}

	for _, tc := range cases {
		got, err := Parse(tc.name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.name, err)
		}

		if got != tc.want {
			t.Fatalf("Parse(%q)=%v, want %v", tc.name, got, tc.want)
		}
	}

	if _, err := Parse("foo"); err == nil {
		t.Fatal("expected error for unknown name")
	}
}

func TestEndpointValues(t *testing.T) {
	// Hanning, Bartlett, and Blackman are (near-)zero at the edges and peak
	// at the center in symmetric form.
	for _, typ := range []Type{TypeHanning, TypeBartlett, TypeBlackman} {
		w, err := Generate(typ, 9)
		if err != nil {
			t.Fatalf("Generate(%v): %v", typ, err)
		}

		if math.Abs(w[0]) > 1e-12 || math.Abs(w[8]) > 1e-12 {
			t.Fatalf("%v: edges %v %v, want 0", typ, w[0], w[8])
		}

		if math.Abs(w[4]-1) > 1e-12 {
			t.Fatalf("%v: center %v, want 1", typ, w[4])
		}
	}
}

func TestFlatIsUnity(t *testing.T) {
	w, err := Flat(16)
	if err != nil {
		t.Fatalf("Flat: %v", err)
	}

	for i, v := range w {
		if v != 1 {
			t.Fatalf("coefficient[%d]=%v, want 1", i, v)
		}
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	coeffs := []float64{2, 2, 2, 2}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}

	want := []float64{2, 4, 6, 8}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestApplyInPlace(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1}
	if err := Apply(TypeBartlett, buf); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if buf[0] != 0 || buf[2] != 1 || buf[4] != 0 {
		t.Fatalf("unexpected bartlett application: %v", buf)
	}
}
