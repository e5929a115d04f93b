package risib

import "gonum.org/v1/gonum/mat"

// Cross bundles the RISIB model functions as methods, for HMM engines that
// dispatch over cross types through their own interface.
type Cross struct{}

func (Cross) CrossType() string { return "risib" }

func (Cross) NGen(isX bool) int { return NGen(isX) }

func (Cross) PossibleGen(isXChr, isFemale bool, crossInfo []int) []Genotype {
	return PossibleGen(isXChr, isFemale, crossInfo)
}

func (Cross) CheckGeno(gen Genotype, isObserved, isXChr, isFemale bool, crossInfo []int) error {
	return CheckGeno(gen, isObserved, isXChr, isFemale, crossInfo)
}

func (Cross) Init(trueGen Genotype, isXChr, isFemale bool, crossInfo []int) float64 {
	return Init(trueGen, isXChr, isFemale, crossInfo)
}

func (Cross) Emit(obsGen, trueGen Genotype, errorProb float64, isXChr, isFemale bool, crossInfo []int) float64 {
	return Emit(obsGen, trueGen, errorProb, isXChr, isFemale, crossInfo)
}

func (Cross) Step(genLeft, genRight Genotype, recFrac float64, isXChr, isFemale bool, crossInfo []int) float64 {
	return Step(genLeft, genRight, recFrac, isXChr, isFemale, crossInfo)
}

func (Cross) NRec(genLeft, genRight Genotype, isXChr, isFemale bool, crossInfo []int) int {
	return NRec(genLeft, genRight, isXChr, isFemale, crossInfo)
}

func (Cross) EstRecFrac(gamma mat.Matrix, isXChr bool) float64 {
	return EstRecFrac(gamma, isXChr)
}
