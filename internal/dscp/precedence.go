package dscp

import (
	"fmt"

	"firestige.xyz/dscptos/internal/core"
)

// precedenceLabels are the RFC 791 IP precedence names, indexed by value.
var precedenceLabels = [...]string{
	0: "Routine",
	1: "Priority",
	2: "Immediate",
	3: "Flash",
	4: "FlashOverride",
	5: "Critical",
	6: "Internetwork Control",
	7: "Network Control",
}

// PrecedenceLabel returns the descriptive name of a 3-bit precedence value.
func PrecedenceLabel(p uint8) (string, error) {
	if int(p) >= len(precedenceLabels) {
		return "", fmt.Errorf("precedence %d: %w", p, core.ErrPrecedenceOutOfRange)
	}
	return precedenceLabels[p], nil
}
