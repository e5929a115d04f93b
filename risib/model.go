package risib

import "math"

// Init returns the log prior probability of trueGen at the first position on
// a chromosome. On autosomes both genotypes have probability 1/2. On the X
// chromosome the genotype of the founding female has probability 2/3.
//
// The result is NaN if trueGen is not a valid genotype.
func Init(trueGen Genotype, isXChr, isFemale bool, crossInfo []int) float64 {
	mustCheckGeno(false, isXChr, isFemale, crossInfo, trueGen)

	if !isXChr {
		switch trueGen {
		case AA, BB:
			return -math.Log(2.0)
		}
		return math.NaN()
	}

	// Genotype inherited from the founding female
	female, male := AA, BB
	if DirectionOf(crossInfo) == Reverse {
		female, male = BB, AA
	}

	switch trueGen {
	case female:
		return math.Log(2.0) - math.Log(3.0)
	case male:
		return -math.Log(3.0)
	}

	return math.NaN()
}

// Step returns the log probability of genRight at the next position given
// genLeft, for positions separated by recombination fraction recFrac.
//
// The autosomal chain switches genotype with probability 4r/(1+6r). On the X
// chromosome the chain is asymmetric: leaving the founding female's genotype
// has probability 2r/(1+4r), entering it 4r/(1+4r).
//
// The result is NaN if either genotype is not valid.
func Step(genLeft, genRight Genotype, recFrac float64, isXChr, isFemale bool, crossInfo []int) float64 {
	mustCheckGeno(false, isXChr, isFemale, crossInfo, genLeft, genRight)

	if !isXChr {
		if !valid(genLeft) || !valid(genRight) {
			return math.NaN()
		}

		R := 4.0 * recFrac / (1.0 + 6.0*recFrac)
		if genLeft == genRight {
			return math.Log(1.0 - R)
		}
		return math.Log(R)
	}

	female, male := AA, BB
	if DirectionOf(crossInfo) == Reverse {
		female, male = BB, AA
	}

	logDenom := math.Log(1.0 + 4.0*recFrac)

	switch {
	case genLeft == female && genRight == female:
		return math.Log(1.0+2.0*recFrac) - logDenom
	case genLeft == female && genRight == male:
		return math.Log(2.0*recFrac) - logDenom
	case genLeft == male && genRight == male:
		return -logDenom
	case genLeft == male && genRight == female:
		return math.Log(4.0*recFrac) - logDenom
	}

	return math.NaN()
}

// NRec returns the number of recombination events between two adjacent true
// genotypes: 0 if they match, 1 otherwise.
func NRec(genLeft, genRight Genotype, isXChr, isFemale bool, crossInfo []int) int {
	if genLeft == genRight {
		return 0
	}
	return 1
}

// Emit returns the log probability of observing obsGen when the true genotype
// is trueGen, with genotyping error rate errorProb. A Missing observation
// carries no information and returns 0.
func Emit(obsGen, trueGen Genotype, errorProb float64, isXChr, isFemale bool, crossInfo []int) float64 {
	mustCheckGeno(true, isXChr, isFemale, crossInfo, obsGen)
	mustCheckGeno(false, isXChr, isFemale, crossInfo, trueGen)

	if obsGen == Missing {
		return 0.0
	}

	if obsGen == trueGen {
		return math.Log(1.0 - errorProb)
	}
	return math.Log(errorProb)
}

func valid(g Genotype) bool {
	return g == AA || g == BB
}
