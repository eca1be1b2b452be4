package codec

import (
	"strings"

	"github.com/lookalike-codec/lookalike"
	"github.com/lookalike-codec/lookalike/errors"
)

// Low-level transform helpers. Encode and Decode are built on these, and
// the trace package reuses them for its stage output so the explanatory
// rendering cannot drift from the real transform.

// BitString returns the MSB-first binary expansion of data as a string of
// '0' and '1' characters, 8 per byte.
func BitString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 8)
	for _, x := range data {
		for i := 7; i >= 0; i-- {
			b.WriteByte('0' + (x>>uint(i))&1)
		}
	}
	return b.String()
}

// Groups splits a binary string into 2-bit groups left to right. An odd
// trailing bit is right-padded with '0'; for whole-byte input the padding
// never fires.
func Groups(bits string) []string {
	if len(bits)%2 == 1 {
		bits += "0"
	}
	groups := make([]string, 0, len(bits)/2)
	for i := 0; i+1 < len(bits); i += 2 {
		groups = append(groups, bits[i:i+2])
	}
	return groups
}

// SymbolsFromBits maps a binary string to symbols, one symbol per 2-bit
// group, applying the same trailing-bit padding as Groups.
func SymbolsFromBits(bits string) string {
	if len(bits)%2 == 1 {
		bits += "0"
	}
	out := make([]byte, 0, len(bits)/2)
	for i := 0; i+1 < len(bits); i += 2 {
		var v byte
		if bits[i] == '1' {
			v |= 0b10
		}
		if bits[i+1] == '1' {
			v |= 0b01
		}
		out = append(out, lookalike.SymbolForBits(v))
	}
	return string(out)
}

// BytesFromSymbols maps symbols back to bytes, four symbols per byte.
// Trailing symbols that do not complete a byte are dropped, not reported;
// this leniency is part of the wire contract. A character outside the
// alphabet fails with its 1-based position.
func BytesFromSymbols(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/lookalike.SymbolsPerByte)
	var acc byte
	n := 0
	for i := 0; i < len(s); i++ {
		bits, ok := lookalike.BitsForSymbol(s[i])
		if !ok {
			return nil, errors.InvalidSymbol(errors.PhaseDecode, i+1, rune(s[i]))
		}
		acc = acc<<2 | bits
		n++
		if n == lookalike.SymbolsPerByte {
			out = append(out, acc)
			acc, n = 0, 0
		}
	}
	return out, nil
}
