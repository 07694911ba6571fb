// Package dscp decodes DSCP code points into the legacy IP ToS fields and names
// the per-hop behaviour class they select.
package dscp

// MaxDSCP is the largest 6-bit code point.
const MaxDSCP = 63

// ToS bit positions, counted from the most significant bit (position 0).
const (
	delayBit       = 3
	throughputBit  = 4
	reliabilityBit = 5
)

// Fields holds a DSCP code and the ToS byte fields derived from it.
type Fields struct {
	DSCP        uint8
	ToS         uint8 // DSCP << 2, ECN bits zero
	Precedence  uint8 // ToS bits 0-2
	Delay       uint8
	Throughput  uint8
	Reliability uint8
}

// BitAt returns the value of bit k of b, where bit 0 is the most significant.
// k must be in 0..7; larger positions always read as 0.
func BitAt(b uint8, k uint) uint8 {
	if b&(0x80>>k) != 0 {
		return 1
	}
	return 0
}

// Decode derives the ToS byte and its sub-fields from a DSCP code.
// The caller guarantees dscp <= MaxDSCP.
func Decode(dscp uint8) Fields {
	tos := dscp << 2
	return Fields{
		DSCP:        dscp,
		ToS:         tos,
		Precedence:  tos >> 5,
		Delay:       BitAt(tos, delayBit),
		Throughput:  BitAt(tos, throughputBit),
		Reliability: BitAt(tos, reliabilityBit),
	}
}

// Class classifies the decoded fields.
func (f Fields) Class() Class {
	return Classify(f.Precedence, f.Delay, f.Throughput)
}
