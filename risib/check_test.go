package risib

import (
	"errors"
	"testing"
)

func TestCheckGeno(t *testing.T) {
	for _, v := range []struct {
		Gen        Genotype
		IsObserved bool
		Valid      bool
	}{
		{AA, false, true},
		{BB, false, true},
		{Missing, false, false},
		{Missing, true, true},
		{AA, true, true},
		{Genotype(3), true, false},
		{Genotype(-1), false, false},
	} {
		for _, isXChr := range []bool{false, true} {
			err := CheckGeno(v.Gen, v.IsObserved, isXChr, true, forward)
			if v.Valid && err != nil {
				t.Fatalf("%+v (x=%v): unexpected error %v", v, isXChr, err)
			}
			if !v.Valid && !errors.Is(err, ErrInvalidGenotype) {
				t.Fatalf("%+v (x=%v): expected ErrInvalidGenotype, got %v", v, isXChr, err)
			}
		}
	}
}

func TestDirectionOf(t *testing.T) {
	for _, v := range []struct {
		CrossInfo []int
		Expected  Direction
	}{
		{nil, Forward},
		{[]int{0}, Forward},
		{[]int{0, 1}, Forward},
		{[]int{1}, Reverse},
		{[]int{2}, Reverse},
	} {
		if got := DirectionOf(v.CrossInfo); got != v.Expected {
			t.Fatalf("DirectionOf(%v): got %v, expected %v", v.CrossInfo, got, v.Expected)
		}
	}
}

func TestGenotypeString(t *testing.T) {
	if AA.String() != "AA" || BB.String() != "BB" || Genotype(7).String() != "Genotype(7)" {
		t.Fatalf("unexpected names: %v %v %v", AA, BB, Genotype(7))
	}
}
