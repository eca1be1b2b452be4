package checksum

import (
	"github.com/lookalike-codec/lookalike"
	"github.com/lookalike-codec/lookalike/errors"
)

// IEEE is the reversed IEEE 802.3 polynomial used by the wire format.
const IEEE uint32 = 0xEDB88320

// SymbolLen is the width of the checksum wire form: 4 big-endian bytes,
// 4 symbols each.
const SymbolLen = 16

// Table is a precomputed 256-entry CRC-32 table. It is immutable after
// construction and safe to share across concurrent callers.
type Table [256]uint32

// NewTable builds the CRC-32 table for the IEEE polynomial.
func NewTable() *Table {
	var t Table
	for i := range t {
		crc := uint32(i)
		for k := 0; k < 8; k++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ IEEE
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// Sum computes the CRC-32 of data: register initialized to 0xFFFFFFFF,
// complemented at the end. Matches hash/crc32.ChecksumIEEE bit-for-bit.
func (t *Table) Sum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc = t[byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// Symbols renders sum as its 16-symbol wire form: big-endian byte order,
// each byte split into 2-bit groups most significant first.
func Symbols(sum uint32) string {
	buf := make([]byte, 0, SymbolLen)
	for shift := 24; shift >= 0; shift -= 8 {
		buf = lookalike.AppendByte(buf, byte(sum>>shift))
	}
	return string(buf)
}

// ParseSymbols is the inverse of Symbols. It fails when s is not exactly
// SymbolLen characters or contains a character outside the alphabet.
func ParseSymbols(s string) (uint32, error) {
	if len(s) != SymbolLen {
		return 0, errors.BadLength(SymbolLen, len(s))
	}
	var sum uint32
	for i := 0; i < len(s); i++ {
		bits, ok := lookalike.BitsForSymbol(s[i])
		if !ok {
			return 0, errors.InvalidSymbol(errors.PhaseChecksum, i+1, rune(s[i]))
		}
		sum = sum<<2 | uint32(bits)
	}
	return sum, nil
}
