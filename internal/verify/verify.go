// Package verify checks generated rows against a real IPv4 header: each ToS
// byte is serialised with gopacket and parsed back with x/net/ipv4.
package verify

import (
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"golang.org/x/net/ipv4"

	"firestige.xyz/dscptos/internal/core"
	"firestige.xyz/dscptos/internal/dscp"
	"firestige.xyz/dscptos/internal/table"
)

// RFC 5737 documentation addresses.
var (
	probeSrc = net.IPv4(192, 0, 2, 1).To4()
	probeDst = net.IPv4(198, 51, 100, 1).To4()
)

// EncodeHeader serialises a minimal IPv4 header carrying tos.
func EncodeHeader(tos uint8) ([]byte, error) {
	ip := &layers.IPv4{
		Version:  4,
		TOS:      tos,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    probeSrc,
		DstIP:    probeDst,
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, ip); err != nil {
		return nil, fmt.Errorf("failed to serialize ipv4 header: %w", err)
	}
	return buf.Bytes(), nil
}

// Row round-trips r's ToS byte through an IPv4 header and checks that the DSCP
// and class recovered from the wire match the row.
func Row(r table.Row) error {
	b, err := EncodeHeader(r.ToSDec)
	if err != nil {
		return err
	}

	h, err := ipv4.ParseHeader(b)
	if err != nil {
		return fmt.Errorf("failed to parse ipv4 header: %w", err)
	}

	switch {
	case h.Version != ipv4.Version:
		return mismatch(r, "version %d", h.Version)
	case h.TOS != int(r.ToSDec):
		return mismatch(r, "tos %#02x on the wire, row has %#02x", h.TOS, r.ToSDec)
	case h.TOS&0x03 != 0:
		return mismatch(r, "ecn bits set in tos %#02x", h.TOS)
	}

	code := uint8(h.TOS >> 2)
	if code != r.DSCPDec {
		return mismatch(r, "dscp %d on the wire", code)
	}
	if class := dscp.Decode(code).Class().String(); class != r.Class {
		return mismatch(r, "class %s on the wire, row has %s", class, r.Class)
	}
	return nil
}

// Table verifies every row and returns how many passed before the first failure.
func Table(t table.Table) (int, error) {
	for i, r := range t {
		if err := Row(r); err != nil {
			return i, err
		}
	}
	return len(t), nil
}

func mismatch(r table.Row, format string, args ...interface{}) error {
	return fmt.Errorf("dscp %d: %s: %w", r.DSCPDec, fmt.Sprintf(format, args...), core.ErrVerifyMismatch)
}
