// Package table assembles the DSCP to ToS conversion table and writes it as CSV.
package table

import (
	"fmt"
	"strconv"

	"firestige.xyz/dscptos/internal/core"
	"firestige.xyz/dscptos/internal/dscp"
)

// Columns is the CSV header, in Row field order.
var Columns = []string{
	"DSCP Class",
	"DSCP (bin)",
	"DSCP (hex)",
	"DSCP (dec)",
	"ToS (dec)",
	"ToS (hex)",
	"ToS (bin)",
	"ToS Prec. (bin)",
	"ToS Prec. (dec)",
	"ToS Delay Flag",
	"ToS Throughput Flag",
	"ToS Reliability Flag",
	"TOS String Format",
}

// Codes are the DSCP code points the table covers: default, class selectors,
// the AF classes and EF.
var Codes = []uint8{
	0,
	8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36, 38, 40,
	46, 48, 56,
}

// Row is one line of the conversion table.
type Row struct {
	Class          string
	DSCPBin        string
	DSCPHex        string
	DSCPDec        uint8
	ToSDec         uint8
	ToSHex         string
	ToSBin         string
	PrecedenceBin  string
	PrecedenceDec  uint8
	DelayFlag      uint8
	ThroughputFlag uint8
	Reliability    uint8
	PrecedenceName string
}

// BuildRow computes every representation of a single DSCP code.
func BuildRow(code uint8) (Row, error) {
	if code > dscp.MaxDSCP {
		return Row{}, fmt.Errorf("dscp %d: %w", code, core.ErrDSCPOutOfRange)
	}

	f := dscp.Decode(code)
	label, err := dscp.PrecedenceLabel(f.Precedence)
	if err != nil {
		return Row{}, err
	}

	return Row{
		Class:          f.Class().String(),
		DSCPBin:        fmt.Sprintf("%06b", f.DSCP),
		DSCPHex:        fmt.Sprintf("0x%02x", f.DSCP),
		DSCPDec:        f.DSCP,
		ToSDec:         f.ToS,
		ToSHex:         fmt.Sprintf("0x%02x", f.ToS),
		ToSBin:         fmt.Sprintf("%08b", f.ToS),
		PrecedenceBin:  fmt.Sprintf("%03b", f.Precedence),
		PrecedenceDec:  f.Precedence,
		DelayFlag:      f.Delay,
		ThroughputFlag: f.Throughput,
		Reliability:    f.Reliability,
		PrecedenceName: label,
	}, nil
}

// Record renders the row as CSV fields in Columns order.
func (r Row) Record() []string {
	return []string{
		r.Class,
		r.DSCPBin,
		r.DSCPHex,
		itoa(r.DSCPDec),
		itoa(r.ToSDec),
		r.ToSHex,
		r.ToSBin,
		r.PrecedenceBin,
		itoa(r.PrecedenceDec),
		itoa(r.DelayFlag),
		itoa(r.ThroughputFlag),
		itoa(r.Reliability),
		r.PrecedenceName,
	}
}

func itoa(v uint8) string {
	return strconv.Itoa(int(v))
}
