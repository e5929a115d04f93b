package rihmm

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"

	"github.com/carbocation/rihmm/risib"
)

// Columns required in a gamma table. gIJ is the expected count of genotype I
// on the left of the interval and genotype J on the right.
var gammaColumns = []string{"interval", "chr_type", "g11", "g12", "g21", "g22"}

// Interval is one row of a gamma table: the expected genotype-pair counts for
// one marker interval, summed over individuals.
type Interval struct {
	Name   string
	IsXChr bool
	Gamma  *mat.Dense
}

// ReadGammas reads a delimited gamma table with a header row. The delimiter
// is detected from the first few kilobytes. chr_type is A for autosomes and
// X for the X chromosome. Negative counts are rejected.
func ReadGammas(r io.Reader) ([]Interval, error) {
	br := bufio.NewReaderSize(r, 8192)
	sample, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, pfx.Err(err)
	}

	cr := csv.NewReader(br)
	cr.Comma = DetermineDelimiter(sample)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	entries, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("gamma table is empty")
	}

	header := make(map[string]int)
	for key, name := range entries[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = key
	}
	for _, col := range gammaColumns {
		if _, exists := header[col]; !exists {
			return nil, fmt.Errorf("gamma table is missing column %q (found %v)", col, entries[0])
		}
	}

	n := risib.NGen(false)
	out := make([]Interval, 0, len(entries)-1)

	for i, v := range entries {
		if i == 0 {
			continue
		}

		interval := Interval{
			Name:  v[header["interval"]],
			Gamma: mat.NewDense(n, n, nil),
		}

		switch strings.ToUpper(v[header["chr_type"]]) {
		case "A":
		case "X":
			interval.IsXChr = true
		default:
			return nil, fmt.Errorf("line %d: chr_type must be A or X, got %q", i+1, v[header["chr_type"]])
		}

		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				name := fmt.Sprintf("g%d%d", row+1, col+1)
				val, err := strconv.ParseFloat(v[header[name]], 64)
				if err != nil {
					return nil, pfx.Err(fmt.Errorf("line %d, %s: %w", i+1, name, err))
				}
				if val < 0 {
					return nil, fmt.Errorf("line %d, %s: expected counts must be non-negative, got %v", i+1, name, val)
				}
				interval.Gamma.Set(row, col, val)
			}
		}

		out = append(out, interval)
	}

	return out, nil
}
