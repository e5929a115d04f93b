package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/carbocation/rihmm"
	"github.com/carbocation/rihmm/compileinfo"
	"github.com/carbocation/rihmm/risib"
)

func main() {
	var gammaPath string
	var clamp bool
	flag.StringVar(&gammaPath, "gamma", "", "Delimited file (optionally compressed, local or gs://) with columns interval, chr_type (A or X), g11, g12, g21, g22.")
	flag.BoolVar(&clamp, "clamp", false, "Clamp estimates to [0, 0.5] before printing.")
	flag.Parse()

	log.Println(compileinfo.Get("risibestrf"))

	if gammaPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx := context.Background()

	var client *storage.Client
	if strings.HasPrefix(gammaPath, "gs://") {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
		defer client.Close()
	}

	rc, err := rihmm.OpenInput(ctx, gammaPath, client)
	if err != nil {
		log.Fatalln(err)
	}
	defer rc.Close()

	intervals, err := rihmm.ReadGammas(rc)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Println("INTERVAL\tCHR_TYPE\tREC_FRAC")

	for _, interval := range intervals {
		line, finite := formatEstimate(interval, clamp)
		if !finite {
			log.Printf("Interval %s: expected counts carry no information\n", interval.Name)
		}
		fmt.Println(line)
	}
}

// formatEstimate renders one output row. Non-finite estimates are printed as
// NA and reported as not finite so the caller can flag the upstream data.
func formatEstimate(interval rihmm.Interval, clamp bool) (line string, finite bool) {
	chrType := "A"
	if interval.IsXChr {
		chrType = "X"
	}

	r := risib.EstRecFrac(interval.Gamma, interval.IsXChr)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Sprintf("%s\t%s\tNA", interval.Name, chrType), false
	}

	if clamp {
		r = math.Max(0, math.Min(0.5, r))
	}

	return fmt.Sprintf("%s\t%s\t%.9f", interval.Name, chrType, r), true
}
