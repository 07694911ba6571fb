package dscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitAt(t *testing.T) {
	tests := []struct {
		b    uint8
		k    uint
		want uint8
	}{
		{0b1000_0000, 0, 1},
		{0b1110_1111, 3, 0},
		{0b0100_0110, 5, 1},
		{0b0000_0001, 7, 1},
		{0b1111_1110, 7, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BitAt(tt.b, tt.k), "BitAt(%08b, %d)", tt.b, tt.k)
	}
}

func TestBitAtMatchesLSBIndexing(t *testing.T) {
	for b := 0; b <= 0xff; b++ {
		for k := uint(0); k < 8; k++ {
			want := uint8(b>>(7-k)) & 1
			if got := BitAt(uint8(b), k); got != want {
				t.Fatalf("BitAt(%08b, %d) = %d, want %d", b, k, got, want)
			}
		}
	}
}

func TestBitAtBeyondByte(t *testing.T) {
	assert.Equal(t, uint8(0), BitAt(0xff, 8))
}

func TestDecodePrecedenceIsTopThreeBits(t *testing.T) {
	for d := uint8(0); d <= MaxDSCP; d++ {
		f := Decode(d)
		assert.Equal(t, d<<2, f.ToS)
		assert.Equal(t, f.ToS>>5, f.Precedence, "dscp %d", d)
		assert.Equal(t, d>>3, f.Precedence, "dscp %d", d)
		assert.Zero(t, f.ToS&0x03, "ECN bits must be clear for dscp %d", d)
	}
}

func TestDecodeFlags(t *testing.T) {
	tests := []struct {
		name                          string
		dscp                          uint8
		prec, delay, thr, reliability uint8
	}{
		{"cs0", 0, 0, 0, 0, 0},
		{"af12", 12, 1, 1, 0, 0},
		{"af23", 22, 2, 1, 1, 0},
		{"af31", 26, 3, 0, 1, 0},
		{"ef", 46, 5, 1, 1, 0},
		{"cs7", 56, 7, 0, 0, 0},
		{"odd code", 47, 5, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Decode(tt.dscp)
			assert.Equal(t, tt.dscp, f.DSCP)
			assert.Equal(t, tt.prec, f.Precedence)
			assert.Equal(t, tt.delay, f.Delay)
			assert.Equal(t, tt.thr, f.Throughput)
			assert.Equal(t, tt.reliability, f.Reliability)
		})
	}
}
