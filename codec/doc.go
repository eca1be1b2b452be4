// Package codec implements the reversible bit-packing transform between
// UTF-8 text and the 4-symbol alphabet, plus wire format detection.
//
// # Transform
//
// Encoding runs plaintext → UTF-8 bytes → 8-bit MSB-first expansion →
// 2-bit groups → symbols, then appends the 16-symbol CRC-32 suffix:
//
//	"Hi" → [72 105] → 01001000 01101001 → 01 00 10 00 01 10 10 01
//	     → "0OIO0II0" + checksum symbols
//
// Decoding runs the inverse. Incomplete trailing byte groups (fewer than
// 8 leftover bits) are dropped silently; this historical leniency is part
// of the wire contract. UTF-8 recovery is strict and failures carry the
// raw byte values in decimal and hex.
//
// # Formats
//
// DetectFormat infers v1/v2 from length alone, preferring v2 whenever its
// shape constraint is satisfiable. Encode emits v2 only; v1 is a decode
// target kept for backward compatibility.
//
// # Thread Safety
//
// Codec holds only the immutable CRC-32 table and is safe for concurrent
// use. Each call touches only its own local state.
package codec
