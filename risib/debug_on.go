//go:build risibdebug

package risib

const debugChecks = true
