package lookalike

// The ciphertext alphabet. Each symbol carries two bits:
//
//	00 ↔ O   01 ↔ 0   10 ↔ I   11 ↔ l
//
// The mapping is a total bijection over the four 2-bit values; no other
// character is ever legal ciphertext.
const (
	SymbolO byte = 'O' // 00
	Symbol0 byte = '0' // 01
	SymbolI byte = 'I' // 10
	SymbolL byte = 'l' // 11
)

// Alphabet lists the four symbols in ascending bit order.
const Alphabet = "O0Il"

// SymbolsPerByte is the fixed expansion factor: 8 bits, 2 bits per symbol.
const SymbolsPerByte = 4

// fromBits maps a 2-bit value to its symbol.
var fromBits = [4]byte{SymbolO, Symbol0, SymbolI, SymbolL}

// toBits maps a character to its 2-bit value, -1 for anything outside the
// alphabet. Indexed by byte; all legal symbols are ASCII.
var toBits [256]int8

func init() {
	for i := range toBits {
		toBits[i] = -1
	}
	for bits, c := range []byte(Alphabet) {
		toBits[c] = int8(bits)
	}
}

// SymbolForBits returns the symbol for a 2-bit value. The two high bits of
// the argument are ignored.
func SymbolForBits(bits byte) byte {
	return fromBits[bits&0b11]
}

// BitsForSymbol returns the 2-bit value for c and whether c is a legal
// symbol.
func BitsForSymbol(c byte) (byte, bool) {
	v := toBits[c]
	if v < 0 {
		return 0, false
	}
	return byte(v), true
}

// IsSymbol reports whether c belongs to the ciphertext alphabet.
func IsSymbol(c byte) bool {
	return toBits[c] >= 0
}

// AppendByte appends the four symbols encoding b, most significant 2-bit
// group first.
func AppendByte(dst []byte, b byte) []byte {
	return append(dst,
		fromBits[b>>6],
		fromBits[(b>>4)&0b11],
		fromBits[(b>>2)&0b11],
		fromBits[b&0b11],
	)
}
