// Package rihmm reads the inputs of the RISIB recombination fraction
// re-estimation: gamma tables of expected genotype-pair counts, from local or
// Google Storage paths, compressed or not.
package rihmm
