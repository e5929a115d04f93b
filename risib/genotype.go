// Package risib computes the hidden Markov model probabilities for
// recombinant inbred lines formed by sib mating. Initial and transition
// probabilities are derived analytically from the breeding design rather than
// estimated, and EstRecFrac re-estimates the recombination fraction from the
// expected genotype-pair counts of an expectation step.
//
// All functions are pure and safe to call from concurrent goroutines.
package risib

import "fmt"

// Genotype is a true (hidden) genotype code. RISIB lines are fully inbred, so
// only the two homozygous classes exist.
type Genotype int

const (
	// Missing is only meaningful for observed genotypes.
	Missing Genotype = 0
	AA      Genotype = 1
	BB      Genotype = 2
)

func (g Genotype) String() string {
	switch g {
	case Missing:
		return "-"
	case AA:
		return "AA"
	case BB:
		return "BB"
	}

	return fmt.Sprintf("Genotype(%d)", int(g))
}

// Direction is the direction of the founding cross. It only affects the X
// chromosome.
type Direction uint8

const (
	Forward Direction = iota // AA female x BB male
	Reverse                  // BB female x AA male
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// DirectionOf reads the cross direction from an individual's cross
// information. The first element is 0 for the forward cross. An empty slice is
// treated as forward.
func DirectionOf(crossInfo []int) Direction {
	if len(crossInfo) == 0 || crossInfo[0] == 0 {
		return Forward
	}

	return Reverse
}

// NGen is the number of true genotype states.
func NGen(isX bool) int {
	return 2
}

// PossibleGen lists the true genotypes an individual may carry. Sex and cross
// direction do not change the list for this design.
func PossibleGen(isXChr, isFemale bool, crossInfo []int) []Genotype {
	return []Genotype{AA, BB}
}
