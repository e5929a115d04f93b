package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/carbocation/rihmm/compileinfo"
	"github.com/carbocation/rihmm/risib"
)

// Prints the RISIB initial and transition log-probabilities over a grid of
// recombination fractions.
func main() {
	var minRF, maxRF, by float64
	var female bool
	flag.Float64Var(&minRF, "min", 0.0, "Smallest recombination fraction in the grid.")
	flag.Float64Var(&maxRF, "max", 0.5, "Largest recombination fraction in the grid.")
	flag.Float64Var(&by, "by", 0.05, "Grid spacing.")
	flag.BoolVar(&female, "female", false, "Tabulate for a female individual. Does not change RISIB probabilities.")
	flag.Parse()

	log.Println(compileinfo.Get("risibtable"))

	if by <= 0 || minRF < 0 || maxRF < minRF {
		log.Println("Need 0 <= min <= max and by > 0")
		flag.PrintDefaults()
		os.Exit(1)
	}

	sentinels := 0

	fmt.Println("TABLE\tCHR_TYPE\tDIRECTION\tREC_FRAC\tGEN_LEFT\tGEN_RIGHT\tLOGP\tP")

	for _, tc := range tableContexts() {
		for _, gen := range risib.PossibleGen(tc.isXChr, female, tc.crossInfo) {
			logp := risib.Init(gen, tc.isXChr, female, tc.crossInfo)
			sentinels += countNaN(logp)
			fmt.Printf("init\t%s\t%s\tNA\tNA\t%s\t%.9f\t%.9f\n", tc.chrType(), risib.DirectionOf(tc.crossInfo), gen, logp, math.Exp(logp))
		}
	}

	for _, tc := range tableContexts() {
		for _, r := range recFracGrid(minRF, maxRF, by) {
			for _, left := range risib.PossibleGen(tc.isXChr, female, tc.crossInfo) {
				for _, right := range risib.PossibleGen(tc.isXChr, female, tc.crossInfo) {
					logp := risib.Step(left, right, r, tc.isXChr, female, tc.crossInfo)
					sentinels += countNaN(logp)
					fmt.Printf("step\t%s\t%s\t%.6f\t%s\t%s\t%.9f\t%.9f\n", tc.chrType(), risib.DirectionOf(tc.crossInfo), r, left, right, logp, math.Exp(logp))
				}
			}
		}
	}

	if sentinels > 0 {
		log.Fatalf("%d probabilities were NaN; this indicates a defect in the model\n", sentinels)
	}
}

type tableContext struct {
	isXChr    bool
	crossInfo []int
}

func (c tableContext) chrType() string {
	if c.isXChr {
		return "X"
	}
	return "A"
}

// Cross direction is ignored on autosomes, so only the forward autosome is
// tabulated.
func tableContexts() []tableContext {
	return []tableContext{
		{false, []int{0}},
		{true, []int{0}},
		{true, []int{1}},
	}
}

func countNaN(x float64) int {
	if math.IsNaN(x) {
		return 1
	}
	return 0
}

// recFracGrid returns minRF, minRF+by, ... up to maxRF inclusive. Points are
// computed by counting steps so floating point error does not accumulate.
func recFracGrid(minRF, maxRF, by float64) []float64 {
	out := make([]float64, 0)
	for i := 0; minRF+float64(i)*by <= maxRF+1e-12; i++ {
		out = append(out, minRF+float64(i)*by)
	}
	return out
}
