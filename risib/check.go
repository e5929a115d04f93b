package risib

import (
	"errors"
	"fmt"
)

// ErrInvalidGenotype is returned (and, in risibdebug builds, panicked) when a
// genotype code is outside the set allowed for this design.
var ErrInvalidGenotype = errors.New("genotype value not allowed")

// CheckGeno reports whether gen is a valid genotype. Observed genotypes may
// also be Missing.
func CheckGeno(gen Genotype, isObserved, isXChr, isFemale bool, crossInfo []int) error {
	if isObserved && gen == Missing {
		return nil
	}

	if gen == AA || gen == BB {
		return nil
	}

	chrType := "autosome"
	if isXChr {
		chrType = "X chromosome"
	}

	return fmt.Errorf("%w: %d on %s", ErrInvalidGenotype, int(gen), chrType)
}

// mustCheckGeno is the assertion layer; it compiles away unless built with
// the risibdebug tag.
func mustCheckGeno(isObserved, isXChr, isFemale bool, crossInfo []int, gens ...Genotype) {
	if !debugChecks {
		return
	}

	for _, gen := range gens {
		if err := CheckGeno(gen, isObserved, isXChr, isFemale, crossInfo); err != nil {
			panic(err)
		}
	}
}
