// Package core defines sentinel errors.
package core

import "errors"

// Sentinel errors, wrapped with context via fmt.Errorf("...: %w").
var (
	// Domain errors
	ErrDSCPOutOfRange       = errors.New("dscptos: dscp out of range")
	ErrPrecedenceOutOfRange = errors.New("dscptos: precedence out of range")

	// Verification errors
	ErrVerifyMismatch = errors.New("dscptos: ip header round-trip mismatch")

	// Configuration errors
	ErrConfigInvalid = errors.New("dscptos: invalid configuration")
)
