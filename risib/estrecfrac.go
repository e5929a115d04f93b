package risib

import "gonum.org/v1/gonum/mat"

// EstRecFrac re-estimates the recombination fraction for one interval from
// gamma, the square matrix of expected counts of (left, right) true genotype
// pairs summed over individuals.
//
// The observed switch rate R = 1 - trace/sum is mapped back through the
// autosomal relation R = 4r/(1+6r). isXChr is accepted but the autosomal
// relation is used for both chromosome types.
//
// No clamping is applied. An all-zero gamma yields NaN, and a gamma with all
// of its weight off the diagonal yields a negative value. EstRecFrac panics
// if gamma is not square.
func EstRecFrac(gamma mat.Matrix, isXChr bool) float64 {
	denom := mat.Sum(gamma)
	diagsum := mat.Trace(gamma)

	R := 1.0 - diagsum/denom

	return R / (4.0 - 6.0*R)
}
