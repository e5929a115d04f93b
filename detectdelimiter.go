package rihmm

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in sample, assuming a CSV-like file with a header line. A detected
// delimiter that does not occur in the header is ignored in favor of tab,
// then comma.
func DetermineDelimiter(sample []byte) rune {
	header := sample
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		header = sample[:i]
	}

	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(sample), '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 && bytes.IndexByte(header, delimiters[0][0]) >= 0 {
		return rune(delimiters[0][0])
	}

	for _, c := range []byte{'\t', ','} {
		if bytes.IndexByte(header, c) >= 0 {
			return rune(c)
		}
	}

	return '\t'
}
