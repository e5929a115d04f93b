package risib

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// syntheticGamma builds the expected-count matrix an expectation step would
// produce for recombination fraction r, scaled by n.
func syntheticGamma(r, n float64) *mat.Dense {
	R := 4.0 * r / (1.0 + 6.0*r)
	return mat.NewDense(2, 2, []float64{
		n * (1 - R) / 2, n * R / 2,
		n * R / 2, n * (1 - R) / 2,
	})
}

func TestEstRecFracRoundTrip(t *testing.T) {
	for _, r := range recFracGrid() {
		for _, n := range []float64{1, 17.5, 1e6} {
			gamma := syntheticGamma(r, n)

			for _, isXChr := range []bool{false, true} {
				if got := EstRecFrac(gamma, isXChr); !scalar.EqualWithinAbs(got, r, tol) {
					t.Fatalf("\nr=%.2f n=%v x=%v\nEstimate: %.12f\n", r, n, isXChr, got)
				}
			}

			// Orientation does not matter: the estimate only uses the trace and total.
			if got := EstRecFrac(gamma.T(), false); !scalar.EqualWithinAbs(got, r, tol) {
				t.Fatalf("Transposed gamma for r=%.2f: %.12f", r, got)
			}
		}
	}
}

func TestEstRecFracAsymmetric(t *testing.T) {
	// R = 1 - 6/8 = 0.25 => r = 0.25/(4-1.5) = 0.1
	gamma := mat.NewDense(2, 2, []float64{4, 2, 0, 2})
	if got := EstRecFrac(gamma, false); !scalar.EqualWithinAbs(got, 0.1, tol) {
		t.Fatalf("got %.12f, expected 0.1", got)
	}
}

func TestEstRecFracDegenerate(t *testing.T) {
	if got := EstRecFrac(mat.NewDense(2, 2, nil), false); !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Fatalf("All-zero gamma: got %v, expected a non-finite value", got)
	}

	// All weight off the diagonal is outside [0, 0.5] and is not clamped.
	if got := EstRecFrac(mat.NewDense(2, 2, []float64{0, 3, 1, 0}), false); !scalar.EqualWithinAbs(got, -0.5, tol) {
		t.Fatalf("Off-diagonal gamma: got %v, expected -0.5", got)
	}
}

func TestCrossMatchesFunctions(t *testing.T) {
	var c Cross

	if c.CrossType() != "risib" || c.NGen(true) != 2 {
		t.Fatalf("unexpected cross metadata")
	}
	if c.Step(AA, BB, 0.3, true, false, reverse) != Step(AA, BB, 0.3, true, false, reverse) {
		t.Fatalf("Cross.Step differs from Step")
	}
	if c.Init(BB, true, false, reverse) != Init(BB, true, false, reverse) {
		t.Fatalf("Cross.Init differs from Init")
	}
	gamma := syntheticGamma(0.2, 10)
	if c.EstRecFrac(gamma, false) != EstRecFrac(gamma, false) {
		t.Fatalf("Cross.EstRecFrac differs from EstRecFrac")
	}
}
